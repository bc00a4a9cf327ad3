package ranges_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/ranges/pkg/ranges"
	"github.com/henderiw/ranges/pkg/ranges/rangetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intKind ranges.Kind[int, int] = ranges.Numeric[int]{}

func of(a, b int) ranges.Range[int, int] { return ranges.Between(intKind, a, b) }

func TestNumeric(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		rangetest.Run(t, rangetest.NewFactory(intKind, of, 42, 51, 55, 1023, 1610, 2840))
	})
	t.Run("uint8", func(t *testing.T) {
		var k ranges.Kind[uint8, uint8] = ranges.Numeric[uint8]{}
		rangetest.Run(t, rangetest.NewFactory(k, func(a, b uint8) ranges.Range[uint8, uint8] {
			return ranges.Between(k, a, b)
		}, 1, 2, 3, 100, 200, 255))
	})
	t.Run("float64", func(t *testing.T) {
		var k ranges.Kind[float64, float64] = ranges.Numeric[float64]{}
		rangetest.Run(t, rangetest.NewFactory(k, func(a, b float64) ranges.Range[float64, float64] {
			return ranges.Between(k, a, b)
		}, -1.5, 0, 0.25, 3.5, 1e3, 1e9))
	})
}

// words orders strings lexically and measures the characters left after the
// common prefix, so points and distances have different types.
type words struct{}

func (words) Name() string            { return "words" }
func (words) Compare(a, b string) int { return strings.Compare(a, b) }
func (words) Zero() int               { return 0 }
func (words) CompareDistance(a, b int) int {
	return intKind.CompareDistance(a, b)
}
func (words) Format(p string) string { return p }
func (words) Meter(from, to string) int {
	if from == to {
		return 0
	}
	n := 0
	for n < len(from) && n < len(to) && from[n] == to[n] {
		n++
	}
	return max(len(from), len(to)) - n
}

func TestCustomKind(t *testing.T) {
	var k ranges.Kind[string, int] = words{}
	f := rangetest.NewFactory(k, func(a, b string) ranges.Range[string, int] {
		return ranges.Between(k, a, b)
	}, "apple", "banana", "cherry", "date", "elderberry", "fig")
	rangetest.Run(t, f)
}

func TestZeroRange(t *testing.T) {
	var zero ranges.Range[int, int]

	assert.True(t, zero.IsZero())
	assert.False(t, of(1, 1).IsZero())
	assert.True(t, zero.Equal(ranges.Range[int, int]{}))
	assert.False(t, zero.Equal(of(0, 0)))
	assert.Equal(t, "[)", zero.String())

	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0, zero.Length())
	assert.Equal(t, 0, zero.Compare(ranges.Range[int, int]{}))
	assert.Equal(t, -1, zero.Compare(of(1, 2)))
	assert.Equal(t, 1, of(1, 2).Compare(zero))
	assert.True(t, zero.Less(of(-5, -4)))
	assert.False(t, of(-5, -4).Less(zero))

	_, ok := zero.IntersectWith(of(1, 2))
	assert.False(t, ok)
	_, ok = of(1, 2).IntersectWith(zero)
	assert.False(t, ok)

	if diff := cmp.Diff([]ranges.Range[int, int]{of(1, 2)}, slices.Collect(of(1, 2).PunchThrough(zero))); diff != "" {
		t.Errorf("punching the zero range -want, +got:\n%s", diff)
	}
	assert.Empty(t, slices.Collect(zero.PunchThrough(of(1, 2))))
}

func TestIntersectEmpty(t *testing.T) {
	cases := map[string]struct {
		r1, r2 ranges.Range[int, int]
	}{
		"EmptyInside": {r1: of(51, 51), r2: of(42, 55)},
		"EmptyOuter":  {r1: of(42, 55), r2: of(51, 51)},
		"EmptyStart":  {r1: of(42, 42), r2: of(42, 55)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := tc.r1.IntersectWith(tc.r2)
			assert.False(t, ok, "intersection %s present", got)
			assert.True(t, got.IsZero())
		})
	}
}

func TestFamilies(t *testing.T) {
	var other ranges.Kind[int, int] = renamed{}
	a := of(1, 2)
	b := ranges.Between(other, 1, 2)

	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

type renamed struct{ ranges.Numeric[int] }

func (renamed) Name() string { return "renamed" }

func TestString(t *testing.T) {
	assert.Equal(t, "[42, 51)", of(51, 42).String())
}

func TestJoinError(t *testing.T) {
	_, err := of(1, 2).JoinWith(of(3, 4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ranges.ErrInvalidCombination))
	assert.Contains(t, err.Error(), "[1, 2)")
	assert.Contains(t, err.Error(), "[3, 4)")
}

func TestPunchThroughStop(t *testing.T) {
	var got []ranges.Range[int, int]
	for r := range of(0, 10).PunchThrough(of(3, 5)) {
		got = append(got, r)
		break
	}
	if diff := cmp.Diff([]ranges.Range[int, int]{of(0, 3)}, got); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	cases := map[string]struct {
		in       []ranges.Range[int, int]
		expected []ranges.Range[int, int]
	}{
		"Empty": {},
		"Single": {
			in:       []ranges.Range[int, int]{of(1, 2)},
			expected: []ranges.Range[int, int]{of(1, 2)},
		},
		"Meeting": {
			in:       []ranges.Range[int, int]{of(2, 3), of(1, 2)},
			expected: []ranges.Range[int, int]{of(1, 3)},
		},
		"Overlapping": {
			in:       []ranges.Range[int, int]{of(1, 5), of(3, 8), of(2, 4)},
			expected: []ranges.Range[int, int]{of(1, 8)},
		},
		"Gap": {
			in:       []ranges.Range[int, int]{of(5, 6), of(1, 2)},
			expected: []ranges.Range[int, int]{of(1, 2), of(5, 6)},
		},
		"DropsEmpty": {
			in:       []ranges.Range[int, int]{of(3, 3), {}, of(1, 2)},
			expected: []ranges.Range[int, int]{of(1, 2)},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := slices.Clone(tc.in)
			got := ranges.Merge(in)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("-want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.in, in); diff != "" {
				t.Errorf("input modified -want, +got:\n%s", diff)
			}
		})
	}
}

func TestSort(t *testing.T) {
	rs := []ranges.Range[int, int]{of(3, 4), of(1, 5), of(1, 2), of(0, 9)}
	ranges.Sort(rs)

	expected := []ranges.Range[int, int]{of(0, 9), of(1, 2), of(1, 5), of(3, 4)}
	if diff := cmp.Diff(expected, rs); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}
