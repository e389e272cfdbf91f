//go:build js && wasm
// +build js,wasm

package gos

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"syscall/js"
)

// files live in window.localStorage, keyed by name

func storage() (js.Value, error) {
	ls := js.Global().Get("localStorage")
	if !ls.Truthy() {
		return js.Value{}, errors.New("localStorage not available")
	}
	return ls, nil
}

func ReadFile(name string) ([]byte, error) {
	ls, err := storage()
	if err != nil {
		return nil, err
	}
	v := ls.Call("getItem", name)
	if v.IsNull() || v.IsUndefined() {
		return nil, ErrNotExist
	}
	return base64.StdEncoding.DecodeString(v.String())
}

func WriteFile(name string, data []byte, _ fs.FileMode) error {
	ls, err := storage()
	if err != nil {
		return err
	}
	ls.Call("setItem", name, base64.StdEncoding.EncodeToString(data))
	return nil
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
