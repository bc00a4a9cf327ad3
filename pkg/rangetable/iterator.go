package rangetable

type Iterator[P, D any] struct {
	current int
	entries Entries[P, D]
}

func (r *Iterator[P, D]) Value() Entry[P, D] {
	return r.entries[r.current]
}

func (r *Iterator[P, D]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}

// IsConsecutive returns whether the current entry starts where the previous
// one ends.
func (r *Iterator[P, D]) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	prev, cur := r.entries[r.current-1].Range(), r.entries[r.current].Range()
	return prev.Kind().Compare(prev.End(), cur.Start()) == 0
}
