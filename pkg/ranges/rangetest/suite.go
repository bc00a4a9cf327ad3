package rangetest

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/henderiw/ranges/pkg/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run checks the range algebra against the family built by f. f must name at
// least six increasing points.
func Run[P, D any](t *testing.T, f *Factory[P, D]) {
	require.GreaterOrEqual(t, len(f.Names()), 6, "the suite uses points a to f")
	for i := 1; i < len(f.Names()); i++ {
		prev, cur := f.Point(t, f.Names()[i-1]), f.Point(t, f.Names()[i])
		require.Negative(t, f.Kind().Compare(prev, cur), "points must increase")
	}

	s := &suite[P, D]{f: f}
	t.Run("MinMax", s.testMinMax)
	t.Run("Meets", s.testMeets)
	t.Run("Between", s.testBetween)
	t.Run("EqualHash", s.testEqualHash)
	t.Run("Length", s.testLength)
	t.Run("Overlaps", s.testOverlaps)
	t.Run("Overlap", s.testOverlap)
	t.Run("Normalizes", s.testNormalizes)
	t.Run("ContainsPoint", s.testContainsPoint)
	t.Run("String", s.testString)
	t.Run("CheckMeetsOrOverlaps", s.testCheckMeetsOrOverlaps)
	t.Run("JoinWith", s.testJoinWith)
	t.Run("IntersectWith", s.testIntersectWith)
	t.Run("ContainsRange", s.testContainsRange)
	t.Run("PunchThrough", s.testPunchThrough)
	t.Run("Compare", s.testCompare)
	t.Run("Properties", s.testProperties)
}

type suite[P, D any] struct {
	f *Factory[P, D]
}

func (s *suite[P, D]) diff(want, got []ranges.Range[P, D]) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

func (s *suite[P, D]) assertPoint(t *testing.T, want, got P) {
	t.Helper()
	k := s.f.Kind()
	assert.Zero(t, k.Compare(want, got), "-want %s, +got %s", k.Format(want), k.Format(got))
}

func (s *suite[P, D]) assertDistance(t *testing.T, want, got D) {
	t.Helper()
	assert.Zero(t, s.f.Kind().CompareDistance(want, got), "-want %v, +got %v", want, got)
}

func (s *suite[P, D]) testMinMax(t *testing.T) {
	cases := map[string]struct {
		a, b     string
		min, max string
	}{
		"Ordered":  {a: "a", b: "b", min: "a", max: "b"},
		"Reversed": {a: "c", b: "b", min: "b", max: "c"},
		"Same":     {a: "a", b: "a", min: "a", max: "a"},
		"Apart":    {a: "d", b: "c", min: "c", max: "d"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			k := s.f.Kind()
			a, b := s.f.Point(t, tc.a), s.f.Point(t, tc.b)
			wantMin, wantMax := s.f.Point(t, tc.min), s.f.Point(t, tc.max)

			s.assertPoint(t, wantMin, ranges.Min(k, a, b))
			s.assertPoint(t, wantMax, ranges.Max(k, a, b))
			lo, hi := ranges.MinMax(k, a, b)
			s.assertPoint(t, wantMin, lo)
			s.assertPoint(t, wantMax, hi)
		})
	}
}

func (s *suite[P, D]) testMeets(t *testing.T) {
	cases := map[string]struct {
		r1, r2   string
		expected bool
	}{
		"DisjointBefore": {r1: "ab", r2: "cd", expected: false},
		"DisjointAfter":  {r1: "cd", r2: "ab", expected: false},
		"EndMeetsStart":  {r1: "ab", r2: "bd", expected: true},
		"StartMeetsEnd":  {r1: "cd", r2: "ac", expected: true},
		"Overlapping":    {r1: "ac", r2: "bd", expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			assert.Equal(t, tc.expected, r1.Meets(r2))
			assert.Equal(t, tc.expected, r2.Meets(r1))
		})
	}
}

func (s *suite[P, D]) testBetween(t *testing.T) {
	a, b, c := s.f.Point(t, "a"), s.f.Point(t, "b"), s.f.Point(t, "c")

	helper := s.f.Of(c, c)
	r := helper.Between(a, b)
	s.assertPoint(t, a, r.Start())
	s.assertPoint(t, b, r.End())
	assert.True(t, r.Equal(s.f.Of(a, b)))
	assert.True(t, r.Equal(helper.Between(b, a)))
}

func (s *suite[P, D]) testEqualHash(t *testing.T) {
	a, b, c := s.f.Point(t, "a"), s.f.Point(t, "b"), s.f.Point(t, "c")

	ref := s.f.Of(a, b)
	equ := s.f.Of(a, b)
	flipped := s.f.Of(b, a)
	diffEnd := s.f.Of(a, c)
	diffStart := s.f.Of(c, b)

	assert.True(t, ref.Equal(ref))
	assert.True(t, ref.Equal(equ))
	assert.True(t, equ.Equal(ref))
	assert.True(t, ref.Equal(flipped))
	assert.Equal(t, ref.Hash(), equ.Hash())
	assert.Equal(t, ref.Hash(), flipped.Hash())

	assert.False(t, ref.Equal(diffEnd))
	assert.False(t, ref.Equal(diffStart))
	assert.False(t, ref.Equal(ranges.Range[P, D]{}))
	assert.NotEqual(t, ref.Hash(), diffEnd.Hash())
	assert.NotEqual(t, ref.Hash(), diffStart.Hash())
}

func (s *suite[P, D]) testLength(t *testing.T) {
	a, b := s.f.Point(t, "a"), s.f.Point(t, "b")

	s.assertDistance(t, s.f.Distance(a, b), s.f.Of(a, b).Length())
	s.assertDistance(t, s.f.Kind().Zero(), s.f.Of(a, a).Length())
	assert.True(t, s.f.Of(a, a).IsEmpty())
	assert.False(t, s.f.Of(a, b).IsEmpty())
}

func (s *suite[P, D]) testOverlaps(t *testing.T) {
	cases := map[string]struct {
		r1, r2   string
		expected bool
	}{
		"Disjoint":  {r1: "ab", r2: "cd", expected: false},
		"Meet":      {r1: "ac", r2: "cd", expected: false},
		"Partial":   {r1: "ac", r2: "bd", expected: true},
		"Inside":    {r1: "ad", r2: "bc", expected: true},
		"Reversed":  {r1: "bd", r2: "ac", expected: true},
		"Identical": {r1: "ab", r2: "ab", expected: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			assert.Equal(t, tc.expected, r1.Overlaps(r2))
			assert.Equal(t, tc.expected, r2.Overlaps(r1))
		})
	}
}

func (s *suite[P, D]) testOverlap(t *testing.T) {
	cases := map[string]struct {
		r1, r2   string
		expected string
	}{
		"Disjoint": {r1: "ab", r2: "cd", expected: "aa"},
		"Meet":     {r1: "ab", r2: "bc", expected: "bb"},
		"Partial":  {r1: "ac", r2: "bd", expected: "bc"},
		"Inside":   {r1: "ad", r2: "bc", expected: "bc"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			expected := s.f.Range(t, tc.expected).Length()
			s.assertDistance(t, expected, r1.Overlap(r2))
			s.assertDistance(t, expected, r2.Overlap(r1))
		})
	}
}

func (s *suite[P, D]) testNormalizes(t *testing.T) {
	a, c := s.f.Point(t, "a"), s.f.Point(t, "c")

	r := s.f.Of(c, a)
	assert.LessOrEqual(t, s.f.Kind().Compare(r.Start(), r.End()), 0)
	s.assertPoint(t, a, r.Start())
	s.assertPoint(t, c, r.End())
}

func (s *suite[P, D]) testContainsPoint(t *testing.T) {
	cases := map[string]struct {
		r        string
		point    string
		expected bool
	}{
		"Before": {r: "bc", point: "a", expected: false},
		"After":  {r: "bc", point: "d", expected: false},
		"Inside": {r: "ad", point: "c", expected: true},
		"Start":  {r: "bc", point: "b", expected: true},
		"End":    {r: "bc", point: "c", expected: false},
		"Empty":  {r: "bb", point: "b", expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := s.f.Range(t, tc.r)
			assert.Equal(t, tc.expected, r.Contains(s.f.Point(t, tc.point)))
		})
	}
}

func (s *suite[P, D]) testString(t *testing.T) {
	b, c := s.f.Point(t, "b"), s.f.Point(t, "c")

	str := s.f.Of(c, b).String()
	assert.Contains(t, str, s.f.Kind().Format(b))
	assert.Contains(t, str, s.f.Kind().Format(c))
}

func (s *suite[P, D]) testCheckMeetsOrOverlaps(t *testing.T) {
	cases := map[string]struct {
		r1, r2      string
		expectedErr bool
	}{
		"Meet":     {r1: "ab", r2: "bc"},
		"Overlap":  {r1: "ac", r2: "bd"},
		"Disjoint": {r1: "ab", r2: "cd", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			err := r1.CheckMeetsOrOverlaps(r2)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ranges.ErrInvalidCombination)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func (s *suite[P, D]) testJoinWith(t *testing.T) {
	cases := map[string]struct {
		r1, r2      string
		expected    string
		expectedErr bool
	}{
		"Meet":     {r1: "ab", r2: "bc", expected: "ac"},
		"Overlap":  {r1: "ac", r2: "bd", expected: "ad"},
		"Inside":   {r1: "bc", r2: "ae", expected: "ae"},
		"Disjoint": {r1: "ab", r2: "cd", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			joined, err := r1.JoinWith(r2)
			if tc.expectedErr {
				assert.True(t, errors.Is(err, ranges.ErrInvalidCombination))
				return
			}
			require.NoError(t, err)
			expected := s.f.Range(t, tc.expected)
			assert.True(t, expected.Equal(joined), "-want %s, +got %s", expected, joined)
		})
	}
}

func (s *suite[P, D]) testIntersectWith(t *testing.T) {
	cases := map[string]struct {
		r1, r2   string
		expected string
	}{
		"Partial":     {r1: "ac", r2: "bd", expected: "bc"},
		"PartialWide": {r1: "ae", r2: "cf", expected: "ce"},
		"SameStart":   {r1: "be", r2: "bf", expected: "be"},
		"Reversed":    {r1: "bd", r2: "ac", expected: "bc"},
		"Inside":      {r1: "af", r2: "cd", expected: "cd"},
		"Disjoint":    {r1: "ab", r2: "cd"},
		"DisjointFar": {r1: "ac", r2: "ef"},
		"Meet":        {r1: "ab", r2: "bc"},
		"EmptyInside": {r1: "bb", r2: "ac"},
		"EmptyOuter":  {r1: "ac", r2: "bb"},
		"BothEmpty":   {r1: "bb", r2: "bb"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			got, ok := r1.IntersectWith(r2)
			if tc.expected == "" {
				assert.False(t, ok)
				assert.True(t, got.IsZero())
				return
			}
			require.True(t, ok)
			expected := s.f.Range(t, tc.expected)
			assert.True(t, expected.Equal(got), "-want %s, +got %s", expected, got)
		})
	}
}

func (s *suite[P, D]) testContainsRange(t *testing.T) {
	cases := map[string]struct {
		r1, r2   string
		expected bool
	}{
		"Disjoint":  {r1: "ab", r2: "cd", expected: false},
		"Inside":    {r1: "ae", r2: "cd", expected: true},
		"Middle":    {r1: "ad", r2: "bc", expected: true},
		"After":     {r1: "df", r2: "ab", expected: false},
		"Identical": {r1: "ab", r2: "ab", expected: true},
		"Partial":   {r1: "ac", r2: "bd", expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			assert.Equal(t, tc.expected, r1.ContainsRange(r2))
		})
	}
}

func (s *suite[P, D]) testPunchThrough(t *testing.T) {
	cases := map[string]struct {
		r, punch string
		expected string
	}{
		"FullCover":  {r: "ab", punch: "ab", expected: ""},
		"WiderCover": {r: "bc", punch: "ad", expected: ""},
		"Left":       {r: "ac", punch: "ab", expected: "bc"},
		"LeftWide":   {r: "bd", punch: "ac", expected: "cd"},
		"Right":      {r: "ac", punch: "bc", expected: "ab"},
		"RightWide":  {r: "ac", punch: "bd", expected: "ab"},
		"RightEdge":  {r: "cf", punch: "ef", expected: "ce"},
		"Inside":     {r: "bf", punch: "ce", expected: "bc|ef"},
		"Disjoint":   {r: "ab", punch: "cd", expected: "ab"},
		"Meet":       {r: "ab", punch: "bc", expected: "ab"},
		"EmptyPunch": {r: "ac", punch: "bb", expected: "ac"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, punch := s.f.Range(t, tc.r), s.f.Range(t, tc.punch)
			expected := s.f.Ranges(t, tc.expected)

			pieces := r.PunchThrough(punch)
			if diff := s.diff(expected, slices.Collect(pieces)); diff != "" {
				t.Errorf("-want, +got:\n%s", diff)
			}
			// ranging again yields the same pieces
			if diff := s.diff(expected, slices.Collect(pieces)); diff != "" {
				t.Errorf("second pass -want, +got:\n%s", diff)
			}
		})
	}
}

func (s *suite[P, D]) testCompare(t *testing.T) {
	cases := map[string]struct {
		r1, r2   string
		expected int
	}{
		"SameStart":   {r1: "ab", r2: "ac", expected: 0},
		"StartBefore": {r1: "ac", r2: "bd", expected: -1},
		"StartAfter":  {r1: "bc", r2: "ad", expected: 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r1, r2 := s.f.Range(t, tc.r1), s.f.Range(t, tc.r2)
			assert.Equal(t, tc.expected, sign(r1.Compare(r2)))
			assert.Equal(t, -tc.expected, sign(r2.Compare(r1)))
		})
	}
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}

// testProperties checks the algebraic laws over every pair of ranges built
// from the named points.
func (s *suite[P, D]) testProperties(t *testing.T) {
	k := s.f.Kind()
	var all []ranges.Range[P, D]
	for _, n1 := range s.f.Names() {
		for _, n2 := range s.f.Names() {
			p, q := s.f.Point(t, n1), s.f.Point(t, n2)
			r := s.f.Of(p, q)

			assert.LessOrEqual(t, k.Compare(r.Start(), r.End()), 0)
			s.assertPoint(t, ranges.Min(k, p, q), r.Start())
			s.assertPoint(t, ranges.Max(k, p, q), r.End())
			assert.True(t, r.Equal(s.f.Of(q, p)), "%s", r)
			assert.GreaterOrEqual(t, k.CompareDistance(r.Length(), k.Zero()), 0, "%s", r)
			all = append(all, r)
		}
	}

	for _, r1 := range all {
		for _, r2 := range all {
			assert.False(t, r1.Meets(r2) && r1.Overlaps(r2), "%s and %s both meet and overlap", r1, r2)

			if i, ok := r1.IntersectWith(r2); ok {
				assert.False(t, i.IsEmpty(), "%s and %s intersect in the empty %s", r1, r2, i)
				assert.Positive(t, k.CompareDistance(i.Length(), k.Zero()), "%s has no length", i)
				assert.True(t, r1.ContainsRange(i), "%s does not contain %s", r1, i)
				assert.True(t, r2.ContainsRange(i), "%s does not contain %s", r2, i)
			}

			if j, err := r1.JoinWith(r2); err == nil {
				assert.True(t, j.ContainsRange(r1), "%s does not contain %s", j, r1)
				assert.True(t, j.ContainsRange(r2), "%s does not contain %s", j, r2)
			}

			if r1.Equal(r2) {
				assert.Equal(t, r1.Hash(), r2.Hash())
			}

			// the pieces left and the part punched out reassemble r1
			if i, ok := r1.IntersectWith(r2); ok && !r1.IsEmpty() && !r2.IsEmpty() {
				parts := append(slices.Collect(r1.PunchThrough(r2)), i)
				got := ranges.Merge(parts)
				if diff := s.diff([]ranges.Range[P, D]{r1}, got); diff != "" {
					t.Errorf("punching %s through %s -want, +got:\n%s", r2, r1, diff)
				}
			}
		}
	}
}
