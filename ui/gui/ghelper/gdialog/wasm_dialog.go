//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"errors"
	"syscall/js"
)

var ErrCancelled = errors.New("cancelled")

// SaveFile hands data to the browser as a download named name.
func SaveFile(title, name string, data []byte) (string, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return "", errors.New("document not available")
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return "", errors.New("document.body not available")
	}

	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	blob := js.Global().Get("Blob").New([]any{arr}, map[string]any{"type": "image/png"})
	url := js.Global().Get("URL").Call("createObjectURL", blob)
	defer js.Global().Get("URL").Call("revokeObjectURL", url)

	a := doc.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	a.Set("title", title)
	body.Call("appendChild", a)
	a.Call("click")
	body.Call("removeChild", a)
	return name, nil
}

func ShowError(title, msg string) {
	js.Global().Call("alert", title+": "+msg)
}
