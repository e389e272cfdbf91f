//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

var ErrCancelled = dialog.ErrCancelled

// SaveFile asks for a destination and writes data there. The returned path
// always carries the .png extension.
func SaveFile(title, name string, data []byte) (string, error) {
	path, err := dialog.File().
		Title(title).
		Filter("PNG image", "png").
		SetStartFile(name).
		Save()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ShowError reports a host failure in a native message box.
func ShowError(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}
