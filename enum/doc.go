// Package enum provides labeled enumerations: closed, ordered sets of
// integer-backed constants that are constructed from and compared against
// their text labels.
//
// # Defining an enumeration
//
//	type Color int
//
//	const (
//	    Red Color = iota + 1
//	    Green
//	    Blue
//	)
//
//	var colors = enum.MustNew(
//	    enum.Member[Color]{Name: "red", Value: Red},
//	    enum.Member[Color]{Name: "green", Value: Green},
//	    enum.Member[Color]{Name: "blue", Value: Blue},
//	)
//
//	func (c Color) String() string { return colors.String(c) }
//
// # Lookup and comparison
//
//	c, err := colors.FromString("green") // Green, nil
//	ok, err := colors.Equal(c, "green")  // true, nil
//	colors.AllowedValues()               // "red, green, blue"
//
// Only names carry meaning for callers; ordinals just have to be distinct.
//
// # Hashing
//
// Hash is derived from the member name, so a member and its label hash to
// the same value (see HashString). Text is not resolved inside the hash,
// while Equal does resolve text. Callers that mix raw labels and members as
// map keys must normalize labels with FromString first.
package enum
