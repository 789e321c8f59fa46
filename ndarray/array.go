// Package ndarray provides a minimal dense N-dimensional float64 array.
//
// Arrays are stored row-major. The package exists so numeric arrays have a
// concrete Go type that the jsoncoder extensions can recognize; it is not a
// linear-algebra library.
package ndarray

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrShapeMismatch is returned when data does not fill the requested shape.
	ErrShapeMismatch = errors.New("ndarray: data length does not match shape")
	// ErrInvalidShape is returned for negative dimensions.
	ErrInvalidShape = errors.New("ndarray: invalid shape")
	// ErrRagged is returned by FromList for nested lists of unequal length.
	ErrRagged = errors.New("ndarray: ragged nested list")
	// ErrUnsupportedElement is returned by FromList for non-numeric leaves.
	ErrUnsupportedElement = errors.New("ndarray: unsupported element")
)

// Array is a dense row-major float64 array. A zero-dimensional array holds a
// single scalar.
type Array struct {
	shape []int
	data  []float64
}

// Source supplies uniform random numbers in [0, 1). *rand.Rand and
// testutil.RNG satisfy it.
type Source interface {
	Float64() float64
}

// New creates an array of the given shape backed by a copy of data.
func New(shape []int, data []float64) (*Array, error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrShapeMismatch, shape, n, len(data))
	}
	return &Array{shape: slices.Clone(shape), data: slices.Clone(data)}, nil
}

// Zeros returns a zero-filled array. It panics on negative dimensions.
func Zeros(shape ...int) *Array {
	n, err := size(shape)
	if err != nil {
		panic(err)
	}
	return &Array{shape: slices.Clone(shape), data: make([]float64, n)}
}

// Scalar returns a zero-dimensional array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// FromSlice returns a one-dimensional array holding a copy of values.
func FromSlice(values []float64) *Array {
	return &Array{shape: []int{len(values)}, data: slices.Clone(values)}
}

// Random returns an array filled with values drawn from src.
func Random(src Source, shape ...int) *Array {
	a := Zeros(shape...)
	for i := range a.data {
		a.data[i] = src.Float64()
	}
	return a
}

// FromList builds an array from a number or from (nested) lists of numbers as
// produced by a JSON decoder: []any, []float64, float64, json.Number and the
// Go integer kinds.
func FromList(v any) (*Array, error) {
	shape, err := inferShape(v)
	if err != nil {
		return nil, err
	}
	n, _ := size(shape)
	data, err := fill(v, shape, make([]float64, 0, n))
	if err != nil {
		return nil, err
	}
	return &Array{shape: shape, data: data}, nil
}

func inferShape(v any) ([]int, error) {
	shape := []int{}
	for {
		switch x := v.(type) {
		case []any:
			shape = append(shape, len(x))
			if len(x) == 0 {
				return shape, nil
			}
			v = x[0]
		case []float64:
			return append(shape, len(x)), nil
		default:
			if _, err := toFloat(v); err != nil {
				return nil, err
			}
			return shape, nil
		}
	}
}

func fill(v any, shape []int, data []float64) ([]float64, error) {
	if len(shape) == 0 {
		switch v.(type) {
		case []any, []float64:
			return nil, ErrRagged
		}
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return append(data, f), nil
	}

	switch x := v.(type) {
	case []any:
		if len(x) != shape[0] {
			return nil, fmt.Errorf("%w: expected %d elements, got %d", ErrRagged, shape[0], len(x))
		}
		var err error
		for _, e := range x {
			if data, err = fill(e, shape[1:], data); err != nil {
				return nil, err
			}
		}
		return data, nil
	case []float64:
		if len(shape) != 1 || len(x) != shape[0] {
			return nil, ErrRagged
		}
		return append(data, x...), nil
	default:
		return nil, ErrRagged
	}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedElement, v)
	}
}

func size(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
		}
		n *= d
	}
	return n, nil
}

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data returns a copy of the elements in row-major order.
func (a *Array) Data() []float64 { return slices.Clone(a.data) }

// At returns the element at idx. It panics if idx is out of range.
func (a *Array) At(idx ...int) float64 { return a.data[a.offset(idx)] }

// Set stores v at idx. It panics if idx is out of range.
func (a *Array) Set(v float64, idx ...int) { a.data[a.offset(idx)] = v }

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for %d-dimensional array", len(idx), len(a.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with size %d", i, d, a.shape[d]))
		}
		off = off*a.shape[d] + i
	}
	return off
}

// ToList converts the array into nested []any of float64. A zero-dimensional
// array converts to a bare float64.
func (a *Array) ToList() any {
	if len(a.shape) == 0 {
		return a.data[0]
	}
	return a.toList(0, 0)
}

func (a *Array) toList(dim, off int) []any {
	n := a.shape[dim]
	out := make([]any, n)
	if dim == len(a.shape)-1 {
		for i := range n {
			out[i] = a.data[off+i]
		}
		return out
	}
	stride, _ := size(a.shape[dim+1:])
	for i := range n {
		out[i] = a.toList(dim+1, off+i*stride)
	}
	return out
}

// Equal reports whether both arrays have the same shape and equal elements.
// NaN never compares equal.
func (a *Array) Equal(o *Array) bool {
	if a == nil || o == nil {
		return a == o
	}
	if !slices.Equal(a.shape, o.shape) {
		return false
	}
	for i, v := range a.data {
		if v != o.data[i] || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (a *Array) String() string {
	return fmt.Sprint(a.ToList())
}
