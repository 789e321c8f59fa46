package jsoncoder

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"

	"github.com/hupe1980/helpers/ndarray"
	"github.com/hupe1980/helpers/optimize"
)

// Marker keys emitted by the built-in encoders and matched by the built-in
// decoders. Decoders require the exact keys in this order.
var (
	complexKeys = []string{"complex", "real", "imag"}
	boundsKeys  = []string{"Bounds", "lb", "ub", "keep_feasible"}
)

// Types owned by a built-in extension. Record leaves them alone so that the
// recognition tests of the built-ins stay disjoint.
var extensionTypes = map[reflect.Type]struct{}{
	reflect.TypeFor[ndarray.Array]():   {},
	reflect.TypeFor[optimize.Bounds](): {},
}

// Complex encodes complex64 and complex128 values as
// {"complex": true, "real": r, "imag": i}. Non-finite parts are written as
// the strings "Infinity", "-Infinity" and "NaN".
func Complex() Encoder {
	return NewEncoder("complex", func(v any) (any, bool) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Complex64, reflect.Complex128:
			c := rv.Complex()
			return ObjectOf(
				complexKeys[0], true,
				complexKeys[1], finite(real(c)),
				complexKeys[2], finite(imag(c)),
			), true
		default:
			return nil, false
		}
	})
}

// ComplexDecode restores a complex128 from an object with exactly the keys
// complex, real and imag, in that order.
func ComplexDecode(obj *Object) any {
	if !obj.HasKeys(complexKeys...) {
		return obj
	}
	re, ok := toFloat(obj.values["real"])
	if !ok {
		return obj
	}
	im, ok := toFloat(obj.values["imag"])
	if !ok {
		return obj
	}
	return complex(re, im)
}

// Record encodes structs, and pointers to structs, as objects of their
// exported fields in declaration order. A json tag renames a field and "-"
// drops it. Untagged embedded structs are flattened into the outer object as
// encoding/json does. Field values are left for the rest of the chain, so nested
// records and other extension kinds are expanded too.
//
// Decode a record by feeding the decoded JSON back into the struct with
// encoding/json.
func Record() Encoder {
	return NewEncoder("record", encodeRecord)
}

func encodeRecord(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	if _, owned := extensionTypes[rv.Type()]; owned {
		return nil, false
	}

	obj := NewObject()
	recordFields(rv, 0, obj, map[string]int{})
	return obj, true
}

// recordFields adds the fields of rv to obj. Untagged embedded structs are
// flattened like encoding/json does; on a name clash the shallower field
// wins.
func recordFields(rv reflect.Value, depth int, obj *Object, depths map[string]int) {
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft, fv := f.Type, rv.Field(i)
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
				if ft.Kind() == reflect.Struct && fv.IsNil() {
					continue
				}
			}
			if ft.Kind() == reflect.Struct {
				if _, owned := extensionTypes[ft]; !owned {
					recordFields(reflect.Indirect(fv), depth+1, obj, depths)
					continue
				}
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if d, seen := depths[name]; seen && d <= depth {
			continue
		}
		depths[name] = depth
		obj.Set(name, rv.Field(i).Interface())
	}
}

// Numeric encodes ndarray arrays as nested lists of numbers. A
// zero-dimensional array becomes a bare number.
//
// Decode with ndarray.FromList.
func Numeric() Encoder {
	return NewEncoder("numeric", func(v any) (any, bool) {
		switch a := v.(type) {
		case *ndarray.Array:
			return a.ToList(), true
		case ndarray.Array:
			return a.ToList(), true
		default:
			return nil, false
		}
	})
}

// BoundsEncoder encodes optimize.Bounds as
// {"Bounds": true, "lb": …, "ub": …, "keep_feasible": …}. Single-entry
// fields are written as scalars, others as arrays. Infinite limits are
// written as the strings "Infinity" and "-Infinity".
func BoundsEncoder() Encoder {
	return NewEncoder("bounds", func(v any) (any, bool) {
		var b *optimize.Bounds
		switch x := v.(type) {
		case *optimize.Bounds:
			b = x
		case optimize.Bounds:
			b = &x
		default:
			return nil, false
		}
		return ObjectOf(
			boundsKeys[0], true,
			boundsKeys[1], scalarOrList(finites(b.LB)),
			boundsKeys[2], scalarOrList(finites(b.UB)),
			boundsKeys[3], scalarOrList(b.KeepFeasible),
		), true
	})
}

// Non-finite float tokens. JSON has no literal for them.
const (
	posInf = "Infinity"
	negInf = "-Infinity"
	nan    = "NaN"
)

func finite(f float64) any {
	switch {
	case math.IsInf(f, 1):
		return posInf
	case math.IsInf(f, -1):
		return negInf
	case math.IsNaN(f):
		return nan
	default:
		return f
	}
}

func finites(s []float64) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, f := range s {
		out[i] = finite(f)
	}
	return out
}

func scalarOrList[T any](s []T) any {
	if len(s) == 1 {
		return s[0]
	}
	return s
}

// BoundsDecode restores an *optimize.Bounds from an object with exactly the
// keys Bounds, lb, ub and keep_feasible, in that order.
func BoundsDecode(obj *Object) any {
	if !obj.HasKeys(boundsKeys...) {
		return obj
	}
	lb, ok := toFloats(obj.values["lb"])
	if !ok {
		return obj
	}
	ub, ok := toFloats(obj.values["ub"])
	if !ok {
		return obj
	}
	keep, ok := toBools(obj.values["keep_feasible"])
	if !ok {
		return obj
	}
	return &optimize.Bounds{LB: lb, UB: ub, KeepFeasible: keep}
}

// ResultDecode restores an optimize.Result from obj. List values become
// *ndarray.Array, and a bare number under "x" becomes a zero-dimensional
// array.
//
// ResultDecode does not look at the keys: it assumes obj is a result and
// nothing else. Use it alone, on documents that hold a single result.
func ResultDecode(obj *Object) any {
	res := make(optimize.Result, obj.Len())
	for _, k := range obj.keys {
		v := obj.values[k]
		if _, isList := v.([]any); isList {
			if arr, err := ndarray.FromList(v); err == nil {
				v = arr
			}
		}
		if k == "x" {
			if f, isNum := toNumber(v); isNum {
				v = ndarray.Scalar(f)
			}
		}
		res[k] = v
	}
	return res
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toFloat is toNumber plus the non-finite tokens written by finite.
func toFloat(v any) (float64, bool) {
	switch v {
	case posInf:
		return math.Inf(1), true
	case negInf:
		return math.Inf(-1), true
	case nan:
		return math.NaN(), true
	}
	return toNumber(v)
}

// toFloats accepts a number, a list of numbers, or null.
func toFloats(v any) ([]float64, bool) {
	if v == nil {
		return nil, true
	}
	if f, ok := toFloat(v); ok {
		return []float64{f}, true
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(list))
	for i, e := range list {
		if out[i], ok = toFloat(e); !ok {
			return nil, false
		}
	}
	return out, true
}

func toBools(v any) ([]bool, bool) {
	if v == nil {
		return nil, true
	}
	if b, ok := v.(bool); ok {
		return []bool{b}, true
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]bool, len(list))
	for i, e := range list {
		if out[i], ok = e.(bool); !ok {
			return nil, false
		}
	}
	return out, true
}
