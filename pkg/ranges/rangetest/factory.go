// Package rangetest provides the fixtures used to test range families: named
// points and a compact notation for ranges built from them.
//
// Points are named "a", "b", "c", ... in increasing order. "ac" denotes the
// range [a, c) and "ab|bc" the sequence [a, b), [b, c). The empty string
// denotes the empty sequence.
package rangetest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/henderiw/ranges/pkg/ranges"
	"github.com/stretchr/testify/require"
)

// Factory builds ranges of one family from named points.
type Factory[P, D any] struct {
	kind   ranges.Kind[P, D]
	of     func(a, b P) ranges.Range[P, D]
	names  []string
	points map[string]P
}

// NewFactory returns a factory naming points "a", "b", ... in the order
// given. of is the family's own factory, so that it is exercised too.
func NewFactory[P, D any](k ranges.Kind[P, D], of func(a, b P) ranges.Range[P, D], points ...P) *Factory[P, D] {
	f := &Factory[P, D]{
		kind:   k,
		of:     of,
		points: make(map[string]P, len(points)),
	}
	for i, p := range points {
		name := string(rune('a' + i))
		f.names = append(f.names, name)
		f.points[name] = p
	}
	return f
}

// Kind returns the family of the ranges built by f.
func (f *Factory[P, D]) Kind() ranges.Kind[P, D] { return f.kind }

// Names returns the point names in increasing order.
func (f *Factory[P, D]) Names() []string { return f.names }

// Of builds a range with the family's factory.
func (f *Factory[P, D]) Of(a, b P) ranges.Range[P, D] { return f.of(a, b) }

// Distance measures the distance between two points.
func (f *Factory[P, D]) Distance(a, b P) D { return f.kind.Meter(a, b) }

// LookupPoint returns the point called name.
func (f *Factory[P, D]) LookupPoint(name string) (P, error) {
	p, ok := f.points[strings.TrimSpace(name)]
	if !ok {
		return p, fmt.Errorf("unknown point %q, want one of %v", name, f.names)
	}
	return p, nil
}

// ParseRange parses a two letter range notation such as "ac".
func (f *Factory[P, D]) ParseRange(s string) (ranges.Range[P, D], error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return ranges.Range[P, D]{}, fmt.Errorf("range %q is not a point pair", s)
	}
	start, err := f.LookupPoint(s[:1])
	if err != nil {
		return ranges.Range[P, D]{}, fmt.Errorf("range %q: %w", s, err)
	}
	end, err := f.LookupPoint(s[1:])
	if err != nil {
		return ranges.Range[P, D]{}, fmt.Errorf("range %q: %w", s, err)
	}
	return f.of(start, end), nil
}

// ParseRanges parses a "|" separated sequence of ranges such as "ab|bc".
func (f *Factory[P, D]) ParseRanges(s string) ([]ranges.Range[P, D], error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var rs []ranges.Range[P, D]
	for _, part := range strings.Split(s, "|") {
		r, err := f.ParseRange(part)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// Point is LookupPoint failing t on error.
func (f *Factory[P, D]) Point(t testing.TB, name string) P {
	t.Helper()
	p, err := f.LookupPoint(name)
	require.NoError(t, err)
	return p
}

// Range is ParseRange failing t on error.
func (f *Factory[P, D]) Range(t testing.TB, s string) ranges.Range[P, D] {
	t.Helper()
	r, err := f.ParseRange(s)
	require.NoError(t, err)
	return r
}

// Ranges is ParseRanges failing t on error.
func (f *Factory[P, D]) Ranges(t testing.TB, s string) []ranges.Range[P, D] {
	t.Helper()
	rs, err := f.ParseRanges(s)
	require.NoError(t, err)
	return rs
}
