package jsoncoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"slices"
)

// Object is a JSON object that remembers key order.
//
// Decoding produces an *Object for every JSON object so decoders can match
// marker keys exactly and in order. Encoders return *Object to control the
// key order of their output. The zero value is an empty object.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// ObjectOf builds an object from alternating key/value pairs. It panics on an
// odd number of arguments or a non-string key.
func ObjectOf(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("jsoncoder: ObjectOf needs key/value pairs")
	}
	o := NewObject()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("jsoncoder: ObjectOf key must be a string")
		}
		o.Set(k, kv[i+1])
	}
	return o
}

// Set stores v under key. New keys are appended; existing keys keep their
// position.
func (o *Object) Set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in order.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// HasKeys reports whether the object's keys are exactly keys, in order.
func (o *Object) HasKeys(keys ...string) bool {
	return slices.Equal(o.keys, keys)
}

// Map returns the entries as an unordered map. Nested objects are not
// converted.
func (o *Object) Map() map[string]any {
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		m[k] = o.values[k]
	}
	return m
}

// Equal reports whether both objects hold the same keys in the same order.
// Nested objects are compared with Equal, everything else with
// reflect.DeepEqual.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if !slices.Equal(o.keys, other.keys) {
		return false
	}
	for _, k := range o.keys {
		if !valuesEqual(o.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valuesEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// MarshalJSON implements json.Marshaler and preserves key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Nested objects decode as *Object.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := decode(data, nil, false, DefaultMaxDepth)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return errors.New("jsoncoder: JSON value is not an object")
	}
	*o = *obj
	return nil
}
