//go:build js && wasm
// +build js,wasm

package gclipboard

import (
	"errors"
	"strings"
	"syscall/js"
)

// await resolves a JS promise on the calling goroutine.
func await(promise js.Value) (js.Value, error) {
	type res struct {
		v   js.Value
		err error
	}
	ch := make(chan res, 1)
	then := js.FuncOf(func(this js.Value, args []js.Value) any {
		var v js.Value
		if len(args) > 0 {
			v = args[0]
		}
		ch <- res{v: v}
		return nil
	})
	catch := js.FuncOf(func(this js.Value, args []js.Value) any {
		msg := "clipboard request rejected"
		if len(args) > 0 {
			msg = args[0].String()
		}
		ch <- res{err: errors.New(msg)}
		return nil
	})
	defer then.Release()
	defer catch.Release()

	promise.Call("then", then).Call("catch", catch)
	r := <-ch
	return r.v, r.err
}

func clipboardAPI(method string) (js.Value, error) {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() {
		return js.Value{}, errors.New("navigator not available")
	}
	cb := nav.Get("clipboard")
	if !cb.Truthy() || !cb.Get(method).Truthy() {
		return js.Value{}, errors.New("navigator.clipboard." + method + " not available")
	}
	return cb, nil
}

func ReadAll() (string, error) {
	cb, err := clipboardAPI("readText")
	if err != nil {
		return "", err
	}
	v, err := await(cb.Call("readText"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v.String()), nil
}

func WriteAll(text string) error {
	cb, err := clipboardAPI("writeText")
	if err != nil {
		return err
	}
	_, err = await(cb.Call("writeText", text))
	return err
}
