// Package ranges implements an algebra over half-open ranges [start, end) of
// any totally ordered point type. A Kind supplies the ordering of the points
// and measures the distance between two of them; Range does the rest.
package ranges

// Kind supplies everything a range family needs beyond its two bounds: the
// ordering of its points and the way the distance between two points is
// measured.
type Kind[P, D any] interface {
	// Name identifies the range family. Ranges of different families are
	// never equal.
	Name() string
	// Compare returns a negative number when a < b, zero when a == b and a
	// positive number when a > b.
	Compare(a, b P) int
	// Meter measures the distance between from and to. It must not be
	// negative when from <= to.
	Meter(from, to P) D
	// Zero returns the distance of an empty range.
	Zero() D
	// CompareDistance orders two distances like Compare orders points.
	CompareDistance(a, b D) int
	// Format returns the canonical text of a point. Points that are equal
	// under Compare format identically.
	Format(p P) string
}

// Min returns the lesser of a and b.
func Min[P, D any](k Kind[P, D], a, b P) P {
	if k.Compare(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the greater of a and b.
func Max[P, D any](k Kind[P, D], a, b P) P {
	if k.Compare(b, a) > 0 {
		return b
	}
	return a
}

// MinMax returns a and b in ascending order.
func MinMax[P, D any](k Kind[P, D], a, b P) (P, P) {
	if k.Compare(b, a) < 0 {
		return b, a
	}
	return a, b
}
