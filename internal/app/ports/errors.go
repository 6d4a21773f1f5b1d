package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ErrCorruptSave marks a save record that failed to decode; callers
// fall back to a freshly initialized state.
var ErrCorruptSave = errors.New("corrupt save")
