package jsoncoder

import (
	"github.com/hupe1980/helpers/codec"
)

type options struct {
	encoders  []Encoder
	decoders  []Decoder
	codec     codec.Codec
	useNumber bool
	maxDepth  int
}

// Option configures a Coder.
type Option func(*options)

// WithEncoders appends encoder extensions, tried in the given order.
func WithEncoders(encoders ...Encoder) Option {
	return func(o *options) {
		o.encoders = append(o.encoders, encoders...)
	}
}

// WithDecoders appends decoder extensions, tried in the given order.
func WithDecoders(decoders ...Decoder) Option {
	return func(o *options) {
		o.decoders = append(o.decoders, decoders...)
	}
}

// WithCodec configures the base codec.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// UseNumber decodes numbers as json.Number instead of float64.
func UseNumber() Option {
	return func(o *options) {
		o.useNumber = true
	}
}

// WithMaxDepth bounds nesting for both directions. Values <= 0 select
// DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth <= 0 {
			depth = DefaultMaxDepth
		}
		o.maxDepth = depth
	}
}

// Coder bundles an encoder chain, a decoder chain and a base codec.
// It is immutable and safe for concurrent use.
type Coder struct {
	encoder   *Chain
	decoder   Decoder
	codec     codec.Codec
	useNumber bool
	maxDepth  int
}

// New creates a Coder. Without options it behaves like the base codec alone.
func New(optFns ...Option) *Coder {
	o := options{
		codec:    codec.Default,
		maxDepth: DefaultMaxDepth,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Coder{
		encoder:   Combine("coder", o.encoders...),
		codec:     o.codec,
		useNumber: o.useNumber,
		maxDepth:  o.maxDepth,
	}
	if len(o.decoders) > 0 {
		c.decoder = CombineDecoders(o.decoders...)
	}
	return c
}

// Default returns a Coder with every built-in encoder and the complex and
// bounds decoders. ResultDecode is not included because it claims every
// object.
func Default(optFns ...Option) *Coder {
	base := []Option{
		WithEncoders(Record(), Complex(), Numeric(), BoundsEncoder()),
		WithDecoders(BoundsDecode, ComplexDecode),
	}
	return New(append(base, optFns...)...)
}

// Marshal encodes v with the configured extensions and base codec.
func (c *Coder) Marshal(v any) ([]byte, error) {
	w := &walker{enc: c.encoder, maxDepth: c.maxDepth}
	return w.marshal(c.codec, v)
}

// Unmarshal decodes data, applying the configured decoders to every object.
func (c *Coder) Unmarshal(data []byte) (any, error) {
	return decode(data, c.decoder, c.useNumber, c.maxDepth)
}

// Encoder returns the combined encoder chain.
func (c *Coder) Encoder() *Chain { return c.encoder }

// Decoder returns the combined decoder, or nil if none is configured.
func (c *Coder) Decoder() Decoder { return c.decoder }

// Codec returns the base codec.
func (c *Coder) Codec() codec.Codec { return c.codec }
