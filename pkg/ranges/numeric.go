package ranges

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any point type whose distance is its difference.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the Kind of ranges over numbers, measuring distance by
// subtraction. Float points must not be NaN.
type Numeric[N Number] struct{}

var _ Kind[int, int] = Numeric[int]{}

func (Numeric[N]) Name() string {
	var n N
	return fmt.Sprintf("numeric[%T]", n)
}

func (Numeric[N]) Compare(a, b N) int { return cmp.Compare(a, b) }

func (Numeric[N]) Meter(from, to N) N { return to - from }

func (Numeric[N]) Zero() N { return 0 }

func (Numeric[N]) CompareDistance(a, b N) int { return cmp.Compare(a, b) }

func (Numeric[N]) Format(p N) string { return fmt.Sprint(p) }
