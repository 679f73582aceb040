// 18 Oct 2026

package alnwrt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/catfasta/pkg/concat"
)

// WritePhylip writes sequential phylip, a line with the number of taxa
// and columns, then one line per taxon. Labels are padded like nexus,
// not cut to ten characters.
func WritePhylip(w io.Writer, aln *concat.Alignment) error {
	bw := bufio.NewWriter(w)
	maxlen := aln.MaxLabel()
	fmt.Fprintf(bw, "%d %d\n", aln.NTax(), aln.NChar())
	for _, r := range aln.Rows {
		bw.WriteString(padLabel(r.Label, maxlen))
		bw.Write(r.Seq)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
