// Package instantrange provides ranges of instants in time measured as the
// duration between them.
package instantrange

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/henderiw/ranges/pkg/ranges"
)

type kind struct{}

func (kind) Name() string { return "instant" }

func (kind) Compare(a, b time.Time) int { return a.Compare(b) }

func (kind) Meter(from, to time.Time) time.Duration { return to.Sub(from) }

func (kind) Zero() time.Duration { return 0 }

func (kind) CompareDistance(a, b time.Duration) int { return cmp.Compare(a, b) }

// Format renders t in UTC so that the same instant in different locations
// formats identically.
func (kind) Format(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

// Kind is the family of instant ranges.
var Kind ranges.Kind[time.Time, time.Duration] = kind{}

type Range = ranges.Range[time.Time, time.Duration]

// Of returns the range spanning start and end.
func Of(start, end time.Time) Range {
	return ranges.Between(Kind, start, end)
}

// Parse parses an interval written as "start/end" or "start/duration", with
// RFC 3339 instants and Go durations: "2024-01-01T00:00:00Z/2024-01-02T00:00:00Z"
// or "2024-01-01T00:00:00Z/36h".
func Parse(s string) (Range, error) {
	var r Range
	from, to, ok := strings.Cut(s, "/")
	if !ok {
		return r, fmt.Errorf("no slash in interval %q", s)
	}
	start, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(from))
	if err != nil {
		return r, fmt.Errorf("invalid start %q in interval %q: %w", from, s, err)
	}
	to = strings.TrimSpace(to)
	if end, err := time.Parse(time.RFC3339Nano, to); err == nil {
		return Of(start, end), nil
	}
	d, err := time.ParseDuration(to)
	if err != nil {
		return r, fmt.Errorf("invalid end %q in interval %q, neither instant nor duration", to, s)
	}
	return Of(start, start.Add(d)), nil
}
