// 18 Oct 2026

package alnwrt

import (
	"bufio"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/andrew-torda/catfasta/pkg/concat"
)

// DefaultWrap is the line length if wrapping is wanted but no length given.
const DefaultWrap = 100

// WriteFasta writes each row as a fasta record. If wrap > 0, sequence
// lines are wrap characters long, except maybe the last. Otherwise each
// sequence is on one line.
func WriteFasta(w io.Writer, aln *concat.Alignment, wrap int) error {
	bw := bufio.NewWriter(w)
	fw := fasta.NewWriter(bw, 1)
	for _, r := range aln.Rows {
		fw.Width = wrap
		if wrap <= 0 {
			fw.Width = len(r.Seq)
		}
		if fw.Width == 0 { // The writer divides by this
			fw.Width = 1
		}
		s := linear.NewSeq(r.Label, alphabet.BytesToLetters(r.Seq), alphabet.DNAgapped)
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return bw.Flush()
}
