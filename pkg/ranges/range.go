package ranges

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Range is the half-open interval [start, end) of a range family. Ranges are
// values: every operation returns a new Range and none modifies its receiver.
//
// The zero Range has no family; use Between or a leaf factory to build one.
// It is empty, has the zero length of D and sorts before every other range.
// The remaining methods need a range with a family and panic on the zero
// Range.
type Range[P, D any] struct {
	kind  Kind[P, D]
	start P
	end   P
}

// Between returns the range spanning a and b, whichever order they come in.
func Between[P, D any](k Kind[P, D], a, b P) Range[P, D] {
	start, end := MinMax(k, a, b)
	return Range[P, D]{
		kind:  k,
		start: start,
		end:   end,
	}
}

// Between returns a range of the same family as r spanning a and b.
func (r Range[P, D]) Between(a, b P) Range[P, D] {
	return Between(r.kind, a, b)
}

// Start returns the inclusive lower bound of r.
func (r Range[P, D]) Start() P { return r.start }

// End returns the exclusive upper bound of r.
func (r Range[P, D]) End() P { return r.end }

// Kind returns the family r belongs to.
func (r Range[P, D]) Kind() Kind[P, D] { return r.kind }

// IsZero reports whether r is the zero Range.
func (r Range[P, D]) IsZero() bool { return r.kind == nil }

// IsEmpty reports whether r holds no points, start and end being equal.
func (r Range[P, D]) IsEmpty() bool {
	if r.kind == nil {
		return true
	}
	return r.kind.Compare(r.start, r.end) == 0
}

// Length returns the distance between the bounds of r.
func (r Range[P, D]) Length() D {
	if r.kind == nil {
		var d D
		return d
	}
	if r.IsEmpty() {
		return r.kind.Zero()
	}
	return r.kind.Meter(r.start, r.end)
}

// Compare orders ranges by their start only: two ranges with the same start
// compare as equal even if they end differently. Use Equal to compare both
// bounds.
func (r Range[P, D]) Compare(other Range[P, D]) int {
	if r.kind == nil || other.kind == nil {
		return compareZero(r, other)
	}
	return r.kind.Compare(r.start, other.start)
}

// compareZero orders ranges when at least one of them is the zero Range.
func compareZero[P, D any](a, b Range[P, D]) int {
	switch {
	case a.kind == nil && b.kind == nil:
		return 0
	case a.kind == nil:
		return -1
	}
	return 1
}

// Less reports whether r sorts before other, first by start then by end.
func (r Range[P, D]) Less(other Range[P, D]) bool {
	if r.kind == nil || other.kind == nil {
		return compareZero(r, other) < 0
	}
	if cmp := r.kind.Compare(r.start, other.start); cmp != 0 {
		return cmp < 0
	}
	return r.kind.Compare(r.end, other.end) < 0
}

// Equal reports whether r and other belong to the same family and have the
// same bounds.
func (r Range[P, D]) Equal(other Range[P, D]) bool {
	if r.kind == nil || other.kind == nil {
		return r.kind == nil && other.kind == nil
	}
	return r.kind.Name() == other.kind.Name() &&
		r.kind.Compare(r.start, other.start) == 0 &&
		r.kind.Compare(r.end, other.end) == 0
}

// Hash returns a hash of r consistent with Equal.
func (r Range[P, D]) Hash() uint64 {
	d := xxhash.New()
	if r.kind == nil {
		return d.Sum64()
	}
	// the separators keep "1","23" and "12","3" apart
	_, _ = d.WriteString(r.kind.Name())
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(r.kind.Format(r.start))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(r.kind.Format(r.end))
	return d.Sum64()
}

func (r Range[P, D]) String() string {
	if r.kind == nil {
		return "[)"
	}
	return fmt.Sprintf("[%s, %s)", r.kind.Format(r.start), r.kind.Format(r.end))
}
