package jsoncoder

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/hupe1980/helpers/codec"
)

// DefaultMaxDepth bounds nesting for encoding and decoding.
const DefaultMaxDepth = 1000

// Encoder is an encoder extension for one value kind.
//
// Encode reports whether v belongs to the extension's kind. If it does, the
// returned replacement must be closer to JSON-native than v (usually an
// *Object or nested []any); it is walked again, so it may contain values that
// other extensions handle.
type Encoder interface {
	Name() string
	Encode(v any) (any, bool)
}

// FuncEncoder adapts a function to the Encoder interface.
type FuncEncoder struct {
	name string
	fn   func(v any) (any, bool)
}

// NewEncoder returns an Encoder named name that delegates to fn.
func NewEncoder(name string, fn func(v any) (any, bool)) *FuncEncoder {
	return &FuncEncoder{name: name, fn: fn}
}

// Name returns the encoder name.
func (e *FuncEncoder) Name() string { return e.name }

// Encode calls the wrapped function.
func (e *FuncEncoder) Encode(v any) (any, bool) { return e.fn(v) }

// Chain is an ordered union of encoders. The first encoder that claims a
// value wins, so the recognition tests of the members should be disjoint.
type Chain struct {
	name     string
	encoders []Encoder
}

// Combine builds a Chain named name from encoders, tried in the given order.
// Nil encoders are skipped and nested chains are flattened.
func Combine(name string, encoders ...Encoder) *Chain {
	c := &Chain{name: name}
	for _, e := range encoders {
		switch x := e.(type) {
		case nil:
		case *Chain:
			if x != nil {
				c.encoders = append(c.encoders, x.encoders...)
			}
		default:
			c.encoders = append(c.encoders, e)
		}
	}
	return c
}

// Name returns the chain name.
func (c *Chain) Name() string { return c.name }

// Encoders returns the flattened member encoders in order.
func (c *Chain) Encoders() []Encoder {
	return append([]Encoder(nil), c.encoders...)
}

// Encode offers v to each member in order.
func (c *Chain) Encode(v any) (any, bool) {
	for _, e := range c.encoders {
		if out, ok := e.Encode(v); ok {
			return out, true
		}
	}
	return nil, false
}

// Marshal encodes v with the extensions in enc layered on codec.Default.
// A nil enc leaves only the base codec.
func Marshal(v any, enc Encoder) ([]byte, error) {
	return New(WithEncoders(enc)).Marshal(v)
}

var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	anyType           = reflect.TypeFor[any]()
)

// walker rewrites a Go value into a JSON-native tree for the base codec.
//
// JSON-native values pass through, containers are rebuilt with walked
// elements, and everything else is offered to the encoder. Values nobody
// claims are left in place for the base codec, which reports its own
// unsupported-type error.
type walker struct {
	enc      Encoder
	maxDepth int
}

func (w *walker) marshal(c codec.Codec, v any) ([]byte, error) {
	tree, err := w.walk(v, 0)
	if err != nil {
		return nil, err
	}
	return c.Marshal(tree)
}

func (w *walker) walk(v any, depth int) (any, error) {
	if depth > w.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, w.maxDepth)
	}

	switch x := v.(type) {
	case nil, bool, string, json.Number,
		float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v, nil
	case *Object:
		if x == nil {
			return nil, nil
		}
		out := NewObject()
		for _, k := range x.keys {
			wv, err := w.walk(x.values[k], depth+1)
			if err != nil {
				return nil, err
			}
			out.Set(k, wv)
		}
		return out, nil
	case []any:
		if x == nil {
			return nil, nil
		}
		return w.walkList(len(x), func(i int) any { return x[i] }, depth)
	case map[string]any:
		if x == nil {
			return nil, nil
		}
		return w.walkMap(x, depth)
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()
	if rt.Implements(jsonMarshalerType) || rt.Implements(textMarshalerType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, nil
		}
		return v, nil
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v, nil
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		if rt.Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			return w.walkMap(m, depth)
		}
		if isKeyKind(rt.Key()) {
			return w.walkKeyedMap(rv, depth)
		}
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		if rt.Elem().Kind() == reflect.Uint8 {
			return v, nil
		}
		return w.walkList(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, depth)
	case reflect.Array:
		return w.walkList(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, depth)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
	}

	if w.enc != nil {
		if out, ok := w.enc.Encode(v); ok {
			return w.walk(out, depth+1)
		}
	}

	if rv.Kind() == reflect.Pointer {
		return w.walk(rv.Elem().Interface(), depth+1)
	}

	return v, nil
}

func (w *walker) walkList(n int, at func(int) any, depth int) (any, error) {
	out := make([]any, n)
	for i := range n {
		wv, err := w.walk(at(i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = wv
	}
	return out, nil
}

// walkKeyedMap walks the values of a map whose keys the base codec turns into
// strings itself. Keys are kept as they are.
func (w *walker) walkKeyedMap(rv reflect.Value, depth int) (any, error) {
	out := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		wv, err := w.walk(iter.Value().Interface(), depth+1)
		if err != nil {
			return nil, err
		}
		if wv == nil {
			out.SetMapIndex(iter.Key(), reflect.Zero(anyType))
			continue
		}
		out.SetMapIndex(iter.Key(), reflect.ValueOf(wv))
	}
	return out.Interface(), nil
}

func isKeyKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return t.Implements(textMarshalerType)
	}
}

func (w *walker) walkMap(m map[string]any, depth int) (any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		wv, err := w.walk(v, depth+1)
		if err != nil {
			return nil, err
		}
		out[k] = wv
	}
	return out, nil
}
