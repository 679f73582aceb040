// 18 Oct 2026

package concat

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/catfasta/pkg/seq"
)

// Part is the block of columns from one locus. Columns count from 1
// and End is included.
type Part struct {
	Name  string
	Start int
	End   int
}

// Len is the number of columns in the part.
func (p Part) Len() int { return p.End - p.Start + 1 }

// PartitionCountMismatchError means we were given a different number
// of lengths and files.
type PartitionCountMismatchError struct {
	NLen   int
	NFiles int
}

func (e *PartitionCountMismatchError) Error() string {
	return fmt.Sprintf("not the same number of items: %d lengths, %d files", e.NLen, e.NFiles)
}

// alnExt are the usual endings of alignment files. They are compared
// ignoring case and the longest match wins.
var alnExt = []string{
	".fasta", ".fas", ".fa", ".fna", ".faa", ".ffn", ".fsa", ".fst", ".mfa", ".afa",
	".aln", ".align", ".alignment", ".phy", ".phylip", ".nex", ".nexus",
	".aln.fasta", ".aln.fas", ".aln.fa", ".trim.fasta", ".trim.fas", ".trim.fa",
}

// GroupName makes a partition name from a file name. Directories go.
// Then a known alignment extension goes and if there is none, we cut
// at the first ".". A name that would be empty is left alone.
func GroupName(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	best := 0
	for _, e := range alnExt {
		if len(e) > best && len(e) < len(base) && strings.HasSuffix(lower, e) {
			best = len(e)
		}
	}
	if best > 0 {
		return base[:len(base)-best]
	}
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// Partitions works out the columns each file contributes. lens and
// fnames must be in the same order as the loci were merged.
func Partitions(lens []int, fnames []string) ([]Part, error) {
	if len(lens) != len(fnames) {
		return nil, &PartitionCountMismatchError{NLen: len(lens), NFiles: len(fnames)}
	}
	parts := make([]Part, len(lens))
	cursor := 1
	for i, l := range lens {
		parts[i] = Part{Name: GroupName(fnames[i]), Start: cursor, End: cursor + l - 1}
		cursor += l
	}
	return parts, nil
}

// FileLens pulls the lengths and file names out of a set of groups,
// keeping their order.
func FileLens(grps []*seq.SeqGrp) (lens []int, fnames []string) {
	lens = make([]int, len(grps))
	fnames = make([]string, len(grps))
	for i, g := range grps {
		lens[i] = g.GetLen()
		fnames[i] = g.Fname()
	}
	return lens, fnames
}
