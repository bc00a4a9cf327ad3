package ranges

import (
	"slices"
)

// Sort sorts rs by start, then by end.
func Sort[P, D any](rs []Range[P, D]) {
	slices.SortStableFunc(rs, func(a, b Range[P, D]) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}

// Merge returns the minimal sorted set of ranges covering rs. Ranges that
// meet or overlap are joined, empty ranges are dropped. rs is not modified.
func Merge[P, D any](rs []Range[P, D]) []Range[P, D] {
	sorted := make([]Range[P, D], 0, len(rs))
	for _, r := range rs {
		if !r.IsZero() && !r.IsEmpty() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	Sort(sorted)

	out := make([]Range[P, D], 1, len(sorted))
	out[0] = sorted[0]
	for _, r := range sorted[1:] {
		prev := &out[len(out)-1]
		joined, err := prev.JoinWith(r)
		if err != nil {
			// gap between prev and r, no merging possible
			//
			//   prev       r
			// s------e  s-----e
			out = append(out, r)
			continue
		}
		// r meets, overlaps or lies within prev
		//
		//   prev     r
		// s------es-----e
		*prev = joined
	}
	return out
}
