package jsoncoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decoder is a decoder extension, applied to every decoded JSON object,
// innermost first.
//
// A decoder that recognizes obj returns the reconstructed value. Otherwise it
// must return obj itself, unchanged, so other decoders or the caller can try
// next.
type Decoder func(obj *Object) any

// CombineDecoders returns a Decoder that applies decoders in order. The first
// result that is not an *Object wins; if every decoder passes, obj is
// returned unchanged.
//
// A decoder that legitimately produces an *Object cannot be told apart from
// one that did not recognize its input, so such decoders should come last.
func CombineDecoders(decoders ...Decoder) Decoder {
	fns := make([]Decoder, 0, len(decoders))
	for _, d := range decoders {
		if d != nil {
			fns = append(fns, d)
		}
	}

	return func(obj *Object) any {
		for _, fn := range fns {
			res := fn(obj)
			if _, isObj := res.(*Object); !isObj {
				return res
			}
		}
		return obj
	}
}

// Unmarshal parses a single JSON document, applying hook to every object.
// Objects the hook does not replace stay *Object; arrays become []any and
// numbers float64. A nil hook leaves all objects in place.
//
// Unrecognized shapes never cause an error. Malformed JSON and trailing data
// do.
func Unmarshal(data []byte, hook Decoder) (any, error) {
	return decode(data, hook, false, DefaultMaxDepth)
}

// treeDecoder builds a value tree from the standard token stream. Tokens are
// needed rather than a map because decoders match keys in order.
type treeDecoder struct {
	dec      *json.Decoder
	hook     Decoder
	maxDepth int
}

func decode(data []byte, hook Decoder, useNumber bool, maxDepth int) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if useNumber {
		dec.UseNumber()
	}

	d := &treeDecoder{dec: dec, hook: hook, maxDepth: maxDepth}
	v, err := d.value(0)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w at offset %d", ErrTrailingData, dec.InputOffset())
		}
		return nil, err
	}

	return v, nil
}

func (d *treeDecoder) value(depth int) (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, d.maxDepth)
	}

	switch delim {
	case '{':
		return d.object(depth)
	case '[':
		return d.array(depth)
	default:
		return nil, fmt.Errorf("jsoncoder: unexpected delimiter %q at offset %d", delim, d.dec.InputOffset())
	}
}

func (d *treeDecoder) object(depth int) (any, error) {
	obj := NewObject()
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("jsoncoder: object key %v is not a string", tok)
		}
		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}

	if d.hook == nil {
		return obj, nil
	}
	return d.hook(obj), nil
}

func (d *treeDecoder) array(depth int) (any, error) {
	arr := []any{}
	for d.dec.More() {
		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
