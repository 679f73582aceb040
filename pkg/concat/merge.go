// 18 Oct 2026

// Package concat joins per-locus alignments into one. Each file is a
// locus and contributes a block of columns. A taxon missing from a
// locus gets that many filler characters instead.
package concat

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/andrew-torda/catfasta/pkg/seq"
)

// Row is one taxon in the merged alignment.
type Row struct {
	Label string
	Seq   []byte
}

// Alignment is the result of a merge. Rows are in label order and all
// have length NChar(). Lens[i] is the number of columns from locus i.
type Alignment struct {
	Rows []Row
	Lens []int
}

// NTax is the number of rows.
func (a *Alignment) NTax() int { return len(a.Rows) }

// NChar is the number of columns.
func (a *Alignment) NChar() int {
	n := 0
	for _, l := range a.Lens {
		n += l
	}
	return n
}

// Seq finds the merged sequence for a label.
func (a *Alignment) Seq(label string) ([]byte, bool) {
	i := sort.Search(len(a.Rows), func(i int) bool { return a.Rows[i].Label >= label })
	if i < len(a.Rows) && a.Rows[i].Label == label {
		return a.Rows[i].Seq, true
	}
	return nil, false
}

// MaxLabel is the length of the longest label, which writers use for
// padding.
func (a *Alignment) MaxLabel() int {
	n := 0
	for _, r := range a.Rows {
		if len(r.Label) > n {
			n = len(r.Label)
		}
	}
	return n
}

// Merge builds the merged alignment. grps are the loci in the order
// their columns should appear, labels is the sorted universe and filler
// is repeated to cover each locus a taxon is missing from.
func Merge(grps []*seq.SeqGrp, labels []string, filler byte) (*Alignment, error) {
	if !sort.StringsAreSorted(labels) {
		return nil, fmt.Errorf("labels for merging are not sorted")
	}
	aln := &Alignment{
		Rows: make([]Row, len(labels)),
		Lens: make([]int, len(grps)),
	}
	nchar := 0
	fill := make([][]byte, len(grps)) // One run of filler per locus, shared by all rows
	for i, g := range grps {
		aln.Lens[i] = g.GetLen()
		fill[i] = bytes.Repeat([]byte{filler}, aln.Lens[i])
		nchar += aln.Lens[i]
	}

	for i, l := range labels {
		b := make([]byte, 0, nchar)
		for j, g := range grps {
			if s, ok := g.Find(l); ok {
				b = append(b, s...)
			} else {
				b = append(b, fill[j]...)
			}
		}
		if len(b) != nchar { // Can only happen if a group was not checked
			return nil, fmt.Errorf("merged %q has length %d, expected %d", l, len(b), nchar)
		}
		aln.Rows[i] = Row{Label: l, Seq: b}
	}
	return aln, nil
}
