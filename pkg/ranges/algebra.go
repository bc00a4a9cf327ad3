package ranges

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidCombination is returned when two ranges are combined that
// neither meet nor overlap.
var ErrInvalidCombination = errors.New("ranges neither meet nor overlap")

func (r Range[P, D]) lessOrEq(a, b P) bool { return r.kind.Compare(a, b) <= 0 }

func (r Range[P, D]) less(a, b P) bool { return r.kind.Compare(a, b) < 0 }

// Meets reports whether r and other touch at a boundary: one ends exactly
// where the other starts.
func (r Range[P, D]) Meets(other Range[P, D]) bool {
	return r.kind.Compare(r.end, other.start) == 0 ||
		r.kind.Compare(other.end, r.start) == 0
}

// Overlaps reports whether r and other share at least one point. Ranges that
// only meet do not overlap.
func (r Range[P, D]) Overlaps(other Range[P, D]) bool {
	return r.less(r.start, other.end) && r.less(other.start, r.end)
}

// CheckMeetsOrOverlaps returns an error wrapping ErrInvalidCombination unless
// r and other meet or overlap.
func (r Range[P, D]) CheckMeetsOrOverlaps(other Range[P, D]) error {
	if r.Meets(other) || r.Overlaps(other) {
		return nil
	}
	return fmt.Errorf("%s and %s: %w", r, other, ErrInvalidCombination)
}

// Contains reports whether p lies within r. The end of r is not part of it.
func (r Range[P, D]) Contains(p P) bool {
	return r.lessOrEq(r.start, p) && r.less(p, r.end)
}

// ContainsRange reports whether other lies entirely within r. Its bounds may
// coincide with the bounds of r.
func (r Range[P, D]) ContainsRange(other Range[P, D]) bool {
	return r.lessOrEq(r.start, other.start) && r.lessOrEq(other.end, r.end)
}

// Overlap returns the length of the part r and other have in common, zero
// when they do not overlap.
func (r Range[P, D]) Overlap(other Range[P, D]) D {
	if !r.Overlaps(other) {
		return r.kind.Zero()
	}
	return r.kind.Meter(Max(r.kind, r.start, other.start), Min(r.kind, r.end, other.end))
}

// IntersectWith returns the part r and other have in common. The boolean is
// false when the ranges are disjoint, only meet or either of them is empty.
func (r Range[P, D]) IntersectWith(other Range[P, D]) (Range[P, D], bool) {
	// an empty range inside the other overlaps it but shares no points
	if r.IsEmpty() || other.IsEmpty() || !r.Overlaps(other) {
		return Range[P, D]{}, false
	}
	return Between(r.kind, Max(r.kind, r.start, other.start), Min(r.kind, r.end, other.end)), true
}

// JoinWith returns the smallest range covering both r and other. Joining
// ranges that neither meet nor overlap would cover the gap between them and
// fails with ErrInvalidCombination.
func (r Range[P, D]) JoinWith(other Range[P, D]) (Range[P, D], error) {
	if err := r.CheckMeetsOrOverlaps(other); err != nil {
		return Range[P, D]{}, err
	}
	return Between(r.kind, Min(r.kind, r.start, other.start), Max(r.kind, r.end, other.end)), nil
}

// PunchThrough removes punch from r and yields what is left, left to right:
//
//	r untouched by punch       r (also when punch is empty or zero)
//	punch covers r             nothing
//	punch covers the start     [punch.end, r.end)
//	punch covers the end       [r.start, punch.start)
//	punch inside r             [r.start, punch.start) [punch.end, r.end)
//
// The sequence can be ranged over any number of times.
func (r Range[P, D]) PunchThrough(punch Range[P, D]) iter.Seq[Range[P, D]] {
	return func(yield func(Range[P, D]) bool) {
		if r.IsZero() {
			return
		}
		if punch.IsEmpty() || !r.Overlaps(punch) {
			yield(r)
			return
		}
		if r.less(r.start, punch.start) {
			if !yield(Between(r.kind, r.start, punch.start)) {
				return
			}
		}
		if r.less(punch.end, r.end) {
			yield(Between(r.kind, punch.end, r.end))
		}
	}
}
