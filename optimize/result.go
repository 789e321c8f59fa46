package optimize

import (
	"reflect"

	"github.com/hupe1980/helpers/ndarray"
)

// Result is the outcome of an optimization run: solution "x", objective "fun",
// "success", "message", evaluation counters and solver-specific fields.
//
// It is a plain map so solvers can attach arbitrary fields, and so it encodes
// as an ordinary JSON object.
type Result map[string]any

// X returns the solution array, or nil if absent.
func (r Result) X() *ndarray.Array {
	x, _ := r["x"].(*ndarray.Array)
	return x
}

// Success reports whether the optimizer exited successfully.
func (r Result) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// Message returns the optimizer's termination message.
func (r Result) Message() string {
	msg, _ := r["message"].(string)
	return msg
}

// Equal reports whether both results hold the same fields. Arrays are
// compared elementwise, everything else with reflect.DeepEqual.
func (r Result) Equal(o Result) bool {
	if len(r) != len(o) {
		return false
	}
	for k, v := range r {
		w, ok := o[k]
		if !ok {
			return false
		}
		if a, isArr := v.(*ndarray.Array); isArr {
			b, isArr := w.(*ndarray.Array)
			if !isArr || !a.Equal(b) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(v, w) {
			return false
		}
	}
	return true
}
