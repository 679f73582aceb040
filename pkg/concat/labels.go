// 18 Oct 2026

package concat

import (
	"sort"

	"github.com/andrew-torda/catfasta/pkg/seq"
)

// LabelSet collects labels from many files. The only way to get them
// out is sorted, so nothing downstream ever sees map order.
type LabelSet struct {
	m map[string]struct{}
}

// NewLabelSet
func NewLabelSet() *LabelSet {
	return &LabelSet{m: make(map[string]struct{})}
}

// Add puts labels in the set. Repeats are ignored.
func (ls *LabelSet) Add(labels ...string) {
	for _, l := range labels {
		ls.m[l] = struct{}{}
	}
}

// Len is the number of different labels.
func (ls *LabelSet) Len() int { return len(ls.m) }

// Sorted returns the labels in ascending byte order.
func (ls *LabelSet) Sorted() []string {
	r := make([]string, 0, len(ls.m))
	for l := range ls.m {
		r = append(r, l)
	}
	sort.Strings(r)
	return r
}

// Universe is every label from every group, sorted. The order of
// the groups makes no difference.
func Universe(grps []*seq.SeqGrp) []string {
	ls := NewLabelSet()
	for _, g := range grps {
		ls.Add(g.Labels()...)
	}
	return ls.Sorted()
}
