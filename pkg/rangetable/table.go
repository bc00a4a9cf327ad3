package rangetable

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/henderiw/ranges/pkg/ranges"
	"github.com/samber/lo"
	"k8s.io/apimachinery/pkg/labels"
)

// Table tracks claimed, non-overlapping ranges within a bounding range, each
// carrying a set of labels.
type Table[P, D any] interface {
	Get(p P) (Entry[P, D], error)
	Claim(r ranges.Range[P, D], l labels.Set) error
	Release(r ranges.Range[P, D]) error
	Update(r ranges.Range[P, D], l labels.Set) error
	Compact()

	Iterate() *Iterator[P, D]

	Count() int
	Has(p P) bool

	IsFree(r ranges.Range[P, D]) bool
	Gaps() []ranges.Range[P, D]
	FindFree(size D) (ranges.Range[P, D], error)

	GetAll() Entries[P, D]
	GetByLabel(selector labels.Selector) Entries[P, D]
}

// New returns a table for claims within the range within. initEntries are
// claimed up front; entries that fail are reported together.
func New[P, D any](within ranges.Range[P, D], initEntries Entries[P, D]) (Table[P, D], error) {
	if within.IsZero() {
		return nil, fmt.Errorf("table needs a bounding range")
	}
	r := &table[P, D]{
		m:      new(sync.RWMutex),
		within: within,
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.Range(), e.Labels()); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

type table[P, D any] struct {
	m       *sync.RWMutex
	within  ranges.Range[P, D]
	entries Entries[P, D] // sorted by start
}

func (r *table[P, D]) validate(rng ranges.Range[P, D]) error {
	if rng.IsZero() {
		return fmt.Errorf("zero range")
	}
	if rng.IsEmpty() {
		return fmt.Errorf("range %s is empty", rng)
	}
	if !r.within.ContainsRange(rng) {
		return fmt.Errorf("range %s does not fit in %s", rng, r.within)
	}
	return nil
}

func (r *table[P, D]) Get(p P) (Entry[P, D], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.get(p)
	if !ok {
		return nil, fmt.Errorf("no match found for: %s", r.within.Kind().Format(p))
	}
	return e, nil
}

func (r *table[P, D]) get(p P) (Entry[P, D], bool) {
	for _, e := range r.entries {
		if e.Range().Contains(p) {
			return e, true
		}
	}
	return nil, false
}

func (r *table[P, D]) Claim(rng ranges.Range[P, D], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(rng, l)
}

// Release frees rng. Claimed ranges that rng only partly overlaps shrink or
// split and keep their labels.
func (r *table[P, D]) Release(rng ranges.Range[P, D]) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(rng); err != nil {
		return err
	}
	entries := make(Entries[P, D], 0, len(r.entries)+1)
	for _, e := range r.entries {
		for piece := range e.Range().PunchThrough(rng) {
			entries = append(entries, NewEntry(piece, e.Labels()))
		}
	}
	r.entries = entries
	return nil
}

// Update replaces the labels of the entry claiming exactly rng.
func (r *table[P, D]) Update(rng ranges.Range[P, D], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(rng); err != nil {
		return err
	}
	i := slices.IndexFunc(r.entries, func(e Entry[P, D]) bool { return e.Range().Equal(rng) })
	if i < 0 {
		return fmt.Errorf("entry %s not found", rng)
	}
	r.entries[i] = NewEntry(rng, l)
	return nil
}

// Compact joins entries that meet and carry the same labels.
func (r *table[P, D]) Compact() {
	r.m.Lock()
	defer r.m.Unlock()

	if len(r.entries) < 2 {
		return
	}
	out := make(Entries[P, D], 1, len(r.entries))
	out[0] = r.entries[0]
	for _, e := range r.entries[1:] {
		prev := out[len(out)-1]
		if !labels.Equals(prev.Labels(), e.Labels()) {
			out = append(out, e)
			continue
		}
		joined, err := prev.Range().JoinWith(e.Range())
		if err != nil {
			// gap in between
			out = append(out, e)
			continue
		}
		out[len(out)-1] = NewEntry(joined, prev.Labels())
	}
	r.entries = out
}

func (r *table[P, D]) Iterate() *Iterator[P, D] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[P, D]) iterate() *Iterator[P, D] {
	return &Iterator[P, D]{current: -1, entries: slices.Clone(r.entries)}
}

func (r *table[P, D]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[P, D]) Has(p P) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.get(p)
	return ok
}

// IsFree returns whether no part of rng is claimed.
func (r *table[P, D]) IsFree(rng ranges.Range[P, D]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(rng)
}

func (r *table[P, D]) isFree(rng ranges.Range[P, D]) bool {
	return !slices.ContainsFunc(r.entries, func(e Entry[P, D]) bool {
		return e.Range().Overlaps(rng)
	})
}

// Gaps returns the unclaimed parts of the bounding range in order.
func (r *table[P, D]) Gaps() []ranges.Range[P, D] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.gaps()
}

func (r *table[P, D]) gaps() []ranges.Range[P, D] {
	free := []ranges.Range[P, D]{r.within}
	for _, e := range r.entries {
		var next []ranges.Range[P, D]
		for _, f := range free {
			next = slices.AppendSeq(next, f.PunchThrough(e.Range()))
		}
		free = next
	}
	return free
}

// FindFree returns the first gap at least size long.
func (r *table[P, D]) FindFree(size D) (ranges.Range[P, D], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	k := r.within.Kind()
	gap, ok := lo.Find(r.gaps(), func(g ranges.Range[P, D]) bool {
		return k.CompareDistance(g.Length(), size) >= 0
	})
	if !ok {
		return ranges.Range[P, D]{}, fmt.Errorf("could not find free range that fits %v", size)
	}
	return gap, nil
}

func (r *table[P, D]) add(rng ranges.Range[P, D], l labels.Set) error {
	if err := r.validate(rng); err != nil {
		return err
	}
	if !r.isFree(rng) {
		return fmt.Errorf("range %s overlaps a claimed range", rng)
	}
	r.entries = append(r.entries, NewEntry(rng, l))
	slices.SortFunc(r.entries, func(a, b Entry[P, D]) int {
		return a.Range().Compare(b.Range())
	})
	return nil
}

func (r *table[P, D]) GetAll() Entries[P, D] {
	r.m.RLock()
	defer r.m.RUnlock()

	return slices.Clone(r.entries)
}

func (r *table[P, D]) GetByLabel(selector labels.Selector) Entries[P, D] {
	r.m.RLock()
	defer r.m.RUnlock()

	return lo.Filter(r.entries, func(e Entry[P, D], _ int) bool {
		return selector.Matches(e.Labels())
	})
}
