package helpers

import (
	"context"
	"os"
	"reflect"
)

// Serializable is implemented by values that round-trip through JSON text.
//
// FromJSON replaces the receiver's state with the state encoded in data.
// ToJSON returns the JSON text for the receiver. Round-trip fidelity is
// up to the implementation.
type Serializable interface {
	FromJSON(data []byte) error
	ToJSON() ([]byte, error)
}

// Load reads the whole file at path and passes its content to s.FromJSON.
// Errors from os and from FromJSON are returned unchanged.
func Load(path string, s Serializable, optFns ...Option) error {
	o := newOptions(optFns)
	n, err := load(path, s)
	o.logger.WithType(typeName(s)).LogLoad(context.Background(), path, n, err)
	return err
}

func load(path string, s Serializable) (int, error) {
	if isNil(s) {
		return 0, ErrNilSerializable
	}
	if path == "" {
		return 0, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := s.FromJSON(data); err != nil {
		return len(data), err
	}
	return len(data), nil
}

// LoadNew allocates a new T and loads the file at path into it.
//
//	cfg, err := helpers.LoadNew[Config](path)
func LoadNew[T any, P interface {
	*T
	Serializable
}](path string, optFns ...Option) (P, error) {
	p := P(new(T))
	if err := Load(path, p, optFns...); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes s.ToJSON to path, creating the file or truncating its
// existing content. Errors from ToJSON and from os are returned unchanged.
func Save(path string, s Serializable, optFns ...Option) error {
	o := newOptions(optFns)
	n, err := save(path, s, o.perm)
	o.logger.WithType(typeName(s)).LogSave(context.Background(), path, n, err)
	return err
}

func save(path string, s Serializable, perm os.FileMode) (int, error) {
	if isNil(s) {
		return 0, ErrNilSerializable
	}
	if path == "" {
		return 0, ErrEmptyPath
	}
	data, err := s.ToJSON()
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return 0, err
	}
	return len(data), nil
}

func isNil(s Serializable) bool {
	if s == nil {
		return true
	}
	rv := reflect.ValueOf(s)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func typeName(s Serializable) string {
	if s == nil {
		return "<nil>"
	}
	return reflect.TypeOf(s).String()
}
