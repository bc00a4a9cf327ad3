// Package intrange provides ranges of ints measured by subtraction.
package intrange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/ranges/pkg/ranges"
)

// Kind is the family of int ranges.
var Kind ranges.Kind[int, int] = ranges.Numeric[int]{}

type Range = ranges.Range[int, int]

// Of returns the range spanning start and end.
func Of(start, end int) Range {
	return ranges.Between(Kind, start, end)
}

// Parse parses a range written as "start-end", e.g. "42-55" or "-10-10".
func Parse(s string) (Range, error) {
	var r Range
	// a leading minus belongs to start
	h := strings.IndexByte(strings.TrimPrefix(s, "-"), '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	if strings.HasPrefix(s, "-") {
		h++
	}
	from, to := s[:h], s[h+1:]
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return r, fmt.Errorf("invalid start %q in range %q", from, s)
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return r, fmt.Errorf("invalid end %q in range %q", to, s)
	}
	return Of(start, end), nil
}
