// Package rangectl implements the commands of the rangectl tool.
package rangectl

import (
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"strconv"

	"github.com/henderiw/ranges/pkg/ranges"
	"github.com/henderiw/ranges/pkg/ranges/addrrange"
	"github.com/henderiw/ranges/pkg/rangetable"
	"github.com/samber/lo"
)

// Relate prints how the ranges a and b relate to each other.
func Relate(w io.Writer, kind, a, b string) error {
	switch kind {
	case KindInt:
		return relate(w, Ints, a, b)
	case KindInstant:
		return relate(w, Instants, a, b)
	case KindAddr:
		return relate(w, Addrs, a, b)
	}
	return unknownKind(kind)
}

// Punch prints what is left of r once punch is removed from it.
func Punch(w io.Writer, kind, r, punch string) error {
	switch kind {
	case KindInt:
		return punchThrough(w, Ints, r, punch)
	case KindInstant:
		return punchThrough(w, Instants, r, punch)
	case KindAddr:
		return punchThrough(w, Addrs, r, punch)
	}
	return unknownKind(kind)
}

// Merge prints the smallest sorted set of ranges covering args.
func Merge(w io.Writer, kind string, args []string) error {
	switch kind {
	case KindInt:
		return merge(w, Ints, args)
	case KindInstant:
		return merge(w, Instants, args)
	case KindAddr:
		return merge(w, Addrs, args)
	}
	return unknownKind(kind)
}

// Gaps prints the parts of within that none of args cover.
func Gaps(w io.Writer, kind, within string, args []string) error {
	switch kind {
	case KindInt:
		return gaps(w, Ints, within, args)
	case KindInstant:
		return gaps(w, Instants, within, args)
	case KindAddr:
		return gaps(w, Addrs, within, args)
	}
	return unknownKind(kind)
}

// Prefixes prints the prefixes covering the address range s.
func Prefixes(w io.Writer, s string) error {
	r, err := addrrange.Parse(s)
	if err != nil {
		return err
	}
	prefixes := addrrange.Prefixes(r)
	slog.Debug("Decomposed", "range", r, "prefixes", len(prefixes))

	data := lo.Map(prefixes, func(p netip.Prefix, _ int) []string {
		return []string{p.String()}
	})
	return writeTable(w, []string{"Prefix"}, data)
}

func unknownKind(kind string) error {
	return fmt.Errorf("unknown range kind %q, want one of %v", kind, Kinds)
}

func relate[P, D any](w io.Writer, f Family[P, D], as, bs string) error {
	a, err := f.Parse(as)
	if err != nil {
		return err
	}
	b, err := f.Parse(bs)
	if err != nil {
		return err
	}
	slog.Debug("Relating", "a", a, "b", b)

	intersection := "none"
	if i, ok := a.IntersectWith(b); ok {
		intersection = i.String()
	}
	join := "none"
	if j, err := a.JoinWith(b); err == nil {
		join = j.String()
	}

	data := [][]string{
		{"a", a.String(), f.FormatDistance(a.Length())},
		{"b", b.String(), f.FormatDistance(b.Length())},
		{"meets", strconv.FormatBool(a.Meets(b)), ""},
		{"overlaps", strconv.FormatBool(a.Overlaps(b)), f.FormatDistance(a.Overlap(b))},
		{"a contains b", strconv.FormatBool(a.ContainsRange(b)), ""},
		{"b contains a", strconv.FormatBool(b.ContainsRange(a)), ""},
		{"equal", strconv.FormatBool(a.Equal(b)), ""},
		{"compare", strconv.Itoa(a.Compare(b)), ""},
		{"intersection", intersection, ""},
		{"join", join, ""},
	}
	return writeTable(w, []string{"Relation", "Value", "Length"}, data)
}

func punchThrough[P, D any](w io.Writer, f Family[P, D], rs, punchs string) error {
	r, err := f.Parse(rs)
	if err != nil {
		return err
	}
	punch, err := f.Parse(punchs)
	if err != nil {
		return err
	}
	slog.Debug("Punching", "range", r, "punch", punch)

	var data [][]string
	for piece := range r.PunchThrough(punch) {
		data = append(data, []string{piece.String(), f.FormatDistance(piece.Length())})
	}
	return writeTable(w, []string{"Remaining", "Length"}, data)
}

func merge[P, D any](w io.Writer, f Family[P, D], args []string) error {
	rs, err := f.parseAll(args)
	if err != nil {
		return err
	}
	merged := ranges.Merge(rs)
	slog.Debug("Merged", "in", len(rs), "out", len(merged))

	data := lo.Map(merged, func(r ranges.Range[P, D], _ int) []string {
		return []string{r.String(), f.FormatDistance(r.Length())}
	})
	return writeTable(w, []string{"Range", "Length"}, data)
}

func gaps[P, D any](w io.Writer, f Family[P, D], withins string, args []string) error {
	within, err := f.Parse(withins)
	if err != nil {
		return err
	}
	if within.IsEmpty() {
		return fmt.Errorf("range %s is empty", within)
	}
	rs, err := f.parseAll(args)
	if err != nil {
		return err
	}
	t, err := rangetable.New(within, nil)
	if err != nil {
		return err
	}
	// merged ranges never overlap, clipped to within they always claim
	for _, r := range ranges.Merge(rs) {
		clipped, ok := r.IntersectWith(within)
		if !ok {
			slog.Debug("Outside", "range", r, "within", within)
			continue
		}
		if err := t.Claim(clipped, nil); err != nil {
			return fmt.Errorf("claiming %s: %w", clipped, err)
		}
	}
	free := t.Gaps()
	slog.Debug("Found gaps", "within", within, "claimed", t.Count(), "gaps", len(free))

	data := lo.Map(free, func(r ranges.Range[P, D], _ int) []string {
		return []string{r.String(), f.FormatDistance(r.Length())}
	})
	return writeTable(w, []string{"Gap", "Length"}, data)
}
