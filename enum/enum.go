package enum

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Integer is the set of ordinal types an enumeration can be backed by.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Member binds a name to an ordinal.
type Member[T Integer] struct {
	Name  string
	Value T
}

// Enum is a closed, ordered set of named members.
//
// An Enum is immutable after New returns and safe for concurrent use.
type Enum[T Integer] struct {
	members []Member[T]
	byName  map[string]int
	byValue map[T]int
	allowed string
}

// New creates an enumeration from members in declaration order.
func New[T Integer](members ...Member[T]) (*Enum[T], error) {
	e := &Enum[T]{
		members: make([]Member[T], 0, len(members)),
		byName:  make(map[string]int, len(members)),
		byValue: make(map[T]int, len(members)),
	}

	for i, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: member %d", ErrEmptyName, i)
		}
		if _, ok := e.byName[m.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, m.Name)
		}
		if j, ok := e.byValue[m.Value]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateValue, e.members[j].Name, m.Name)
		}
		e.byName[m.Name] = i
		e.byValue[m.Value] = i
		e.members = append(e.members, m)
	}

	e.allowed = strings.Join(e.Names(), ", ")

	return e, nil
}

// MustNew is like New but panics on invalid member definitions.
// It is intended for package-level enumeration variables.
func MustNew[T Integer](members ...Member[T]) *Enum[T] {
	e, err := New(members...)
	if err != nil {
		panic(err)
	}
	return e
}

// AllowedValues returns the member names joined by ", " in declaration order.
func (e *Enum[T]) AllowedValues() string { return e.allowed }

// Names returns the member names in declaration order.
func (e *Enum[T]) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Members returns the member ordinals in declaration order.
func (e *Enum[T]) Members() []T {
	values := make([]T, len(e.members))
	for i, m := range e.members {
		values[i] = m.Value
	}
	return values
}

// Len returns the number of members.
func (e *Enum[T]) Len() int { return len(e.members) }

// Contains reports whether label names a member.
func (e *Enum[T]) Contains(label string) bool {
	_, ok := e.byName[label]
	return ok
}

// FromString returns the member named label. The match is exact and
// case-sensitive. An unknown label yields an *InvalidValueError.
func (e *Enum[T]) FromString(label string) (T, error) {
	if i, ok := e.byName[label]; ok {
		return e.members[i].Value, nil
	}
	var zero T
	return zero, &InvalidValueError{Value: label, Allowed: e.Names()}
}

// String returns the name of v. Ordinals outside the enumeration render as
// "Type(n)".
func (e *Enum[T]) String(v T) string {
	if i, ok := e.byValue[v]; ok {
		return e.members[i].Name
	}
	return fmt.Sprintf("%T(%d)", v, v)
}

// Equal compares two operands, each of which is either a member of type T or
// a label. Labels are resolved with FromString first, so an unknown label
// returns the same error FromString does.
func (e *Enum[T]) Equal(a, b any) (bool, error) {
	x, err := e.resolve(a)
	if err != nil {
		return false, err
	}
	y, err := e.resolve(b)
	if err != nil {
		return false, err
	}
	return x == y, nil
}

func (e *Enum[T]) resolve(operand any) (T, error) {
	switch v := operand.(type) {
	case T:
		return v, nil
	case string:
		return e.FromString(v)
	default:
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedOperand, operand)
	}
}

// Hash returns a hash of the name of v. It is consistent with Equal for
// members, and HashString(name) == Hash(member) for every member.
//
// Hash does not resolve text. Use FromString before mixing labels and members
// as keys of the same map.
func (e *Enum[T]) Hash(v T) uint64 {
	return HashString(e.String(v))
}

// HashString hashes a raw label the same way Hash hashes a member name.
func HashString(label string) uint64 {
	return xxhash.Sum64String(label)
}

// MarshalText returns the name of v. It fails for ordinals outside the
// enumeration.
func (e *Enum[T]) MarshalText(v T) ([]byte, error) {
	i, ok := e.byValue[v]
	if !ok {
		return nil, &InvalidValueError{Value: e.String(v), Allowed: e.Names()}
	}
	return []byte(e.members[i].Name), nil
}

// UnmarshalText resolves text to a member.
func (e *Enum[T]) UnmarshalText(text []byte) (T, error) {
	return e.FromString(string(text))
}
