package rangetable

import (
	"fmt"

	"github.com/henderiw/ranges/pkg/ranges"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry[P, D any] interface {
	Range() ranges.Range[P, D]
	Labels() labels.Set
	String() string
	Equal(e2 Entry[P, D]) bool
}

type entry[P, D any] struct {
	r      ranges.Range[P, D]
	labels labels.Set
}

type Entries[P, D any] []Entry[P, D]

func (r entry[P, D]) Range() ranges.Range[P, D] { return r.r }
func (r entry[P, D]) Labels() labels.Set        { return r.labels }
func (r entry[P, D]) String() string {
	return fmt.Sprintf("range: %s, labels: %s", r.r, r.labels.String())
}
func (r entry[P, D]) Equal(e2 Entry[P, D]) bool {
	return r.r.Equal(e2.Range()) && labels.Equals(r.labels, e2.Labels())
}

func NewEntry[P, D any](r ranges.Range[P, D], l labels.Set) Entry[P, D] {
	return entry[P, D]{
		r:      r,
		labels: labels.Merge(nil, l),
	}
}
