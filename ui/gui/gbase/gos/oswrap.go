package gos

import "errors"

var ErrNotExist = errors.New("file does not exist (oswrap)")

// ReadFile(name) ([]byte, error)
// WriteFile(name, data, perm) error
// IsNotExist(err) bool
