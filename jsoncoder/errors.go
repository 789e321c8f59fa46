package jsoncoder

import "errors"

var (
	// ErrMaxDepth is returned when a value or document nests deeper than the
	// configured maximum, which also catches cyclic values.
	ErrMaxDepth = errors.New("jsoncoder: maximum nesting depth exceeded")
	// ErrTrailingData is returned when a document holds more than one value.
	ErrTrailingData = errors.New("jsoncoder: trailing data after JSON value")
)
