// Package jsoncoder extends a base JSON codec with pluggable encoder and
// decoder extensions for value kinds JSON cannot represent natively.
//
// # Encoding
//
// An Encoder recognizes one value kind and replaces it with a JSON-native
// representation. Encoders are combined into an ordered Chain:
//
//	enc := jsoncoder.Combine("all", jsoncoder.BoundsEncoder(), jsoncoder.Complex(), jsoncoder.Numeric())
//	data, err := jsoncoder.Marshal([]any{optimize.NewBounds(1, 10), complex(1, 4)}, enc)
//
// Built-in extensions and their wire shapes:
//
//	Complex()        {"complex": true, "real": 1, "imag": 4}
//	BoundsEncoder()  {"Bounds": true, "lb": 1, "ub": 10, "keep_feasible": false}
//	Record()         struct fields as an object, no marker
//	Numeric()        ndarray arrays as nested lists, no marker
//
// Complex and BoundsEncoder write non-finite floats as the strings
// "Infinity", "-Infinity" and "NaN", and their decoders read them back.
//
// Maps are walked whether their keys are strings, integers or
// encoding.TextMarshaler values; the keys themselves are left to the base
// codec. A value that no encoder claims goes to the base codec unchanged,
// which fails with its own unsupported-type error.
//
// # Decoding
//
// A Decoder is an object hook. It receives every decoded object as an
// ordered *Object, innermost first, and either returns a reconstructed value
// or the object itself:
//
//	hook := jsoncoder.CombineDecoders(jsoncoder.BoundsDecode, jsoncoder.ComplexDecode)
//	v, err := jsoncoder.Unmarshal(data, hook)
//
// Marker-based decoders match the exact key sequence their encoder writes.
// Key-based dispatch is inherently ambiguous: an application object that
// happens to have exactly those keys is decoded as the extension kind.
//
// # Coder
//
// Coder bundles both directions with a base codec from package codec:
//
//	c := jsoncoder.Default(jsoncoder.WithCodec(codec.JSON{}))
//	data, _ := c.Marshal(v)
//	back, _ := c.Unmarshal(data)
package jsoncoder
