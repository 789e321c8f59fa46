// Package codec provides the base JSON serializers that jsoncoder layers its
// extensions on.
//
// A Codec only has to handle JSON-native Go values (maps, slices, strings,
// numbers, booleans, nil and json.Marshaler implementations). Values it cannot
// handle are reported with the backend's own error, unmodified.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names returns the stable names accepted by ByName.
func Names() []string { return []string{"json", "go-json"} }

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
