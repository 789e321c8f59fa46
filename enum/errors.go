package enum

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidValue is returned when a label matches no member.
	ErrInvalidValue = errors.New("enum: invalid value")
	// ErrDuplicateName is returned by New when two members share a name.
	ErrDuplicateName = errors.New("enum: duplicate member name")
	// ErrDuplicateValue is returned by New when two members share an ordinal.
	ErrDuplicateValue = errors.New("enum: duplicate member value")
	// ErrEmptyName is returned by New for a member without a name.
	ErrEmptyName = errors.New("enum: empty member name")
	// ErrUnsupportedOperand is returned by Equal for operands that are neither
	// a member nor a string.
	ErrUnsupportedOperand = errors.New("enum: unsupported operand")
)

// InvalidValueError reports a label that matches no member.
//
// It matches ErrInvalidValue via errors.Is.
type InvalidValueError struct {
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("unknown value %q. Needs to be one of %s.", e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }
