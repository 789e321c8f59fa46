package helpers

import "errors"

var (
	// ErrNilSerializable is returned when Load or Save is given a nil value.
	ErrNilSerializable = errors.New("nil serializable")

	// ErrEmptyPath is returned when Load or Save is given an empty path.
	ErrEmptyPath = errors.New("empty path")
)
