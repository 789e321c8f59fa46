// Package optimize holds the value types produced and consumed by numerical
// optimizers: variable bounds and optimization results.
package optimize

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidBounds is returned by Validate.
var ErrInvalidBounds = errors.New("optimize: invalid bounds")

// Bounds constrains optimization variables to lb <= x <= ub.
//
// Each field holds one entry per variable, or a single entry that applies to
// every variable.
type Bounds struct {
	LB           []float64
	UB           []float64
	KeepFeasible []bool
}

// NewBounds returns scalar bounds applying to every variable.
func NewBounds(lb, ub float64) *Bounds {
	return &Bounds{
		LB:           []float64{lb},
		UB:           []float64{ub},
		KeepFeasible: []bool{false},
	}
}

// Validate checks that lower and upper bounds broadcast against each other and
// that lb <= ub elementwise.
func (b *Bounds) Validate() error {
	n := max(len(b.LB), len(b.UB), len(b.KeepFeasible))
	for _, l := range []int{len(b.LB), len(b.UB), len(b.KeepFeasible)} {
		if l != 1 && l != n {
			return fmt.Errorf("%w: lengths %d, %d, %d do not broadcast", ErrInvalidBounds, len(b.LB), len(b.UB), len(b.KeepFeasible))
		}
	}
	for i := range n {
		lb, ub := b.LB[min(i, len(b.LB)-1)], b.UB[min(i, len(b.UB)-1)]
		if lb > ub {
			return fmt.Errorf("%w: lb %g > ub %g at %d", ErrInvalidBounds, lb, ub, i)
		}
	}
	return nil
}

// Equal reports whether both bounds hold the same entries.
func (b *Bounds) Equal(o *Bounds) bool {
	if b == nil || o == nil {
		return b == o
	}
	return slices.Equal(b.LB, o.LB) &&
		slices.Equal(b.UB, o.UB) &&
		slices.Equal(b.KeepFeasible, o.KeepFeasible)
}
