// 18 Oct 2026

package alnwrt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/catfasta/pkg/concat"
)

// PartFname is where the plain partition table goes.
const PartFname = "part.txt"

// WritePartText writes one "name = start-end;" line per part.
func WritePartText(w io.Writer, parts []concat.Part) error {
	bw := bufio.NewWriter(w)
	for _, p := range parts {
		fmt.Fprintf(bw, "%s = %d-%d;\n", p.Name, p.Start, p.End)
	}
	return bw.Flush()
}

// WriteInfo writes a tab separated table of how complete each taxon is.
// occ comes from concat.Occupancy with rows in the same order as aln.
func WriteInfo(w io.Writer, aln *concat.Alignment, occ *matrix.FMatrix2d, parts []concat.Part, filler byte) error {
	if nrow, ncol := occ.Size(); nrow != aln.NTax() || (nrow > 0 && ncol != len(parts)) {
		return fmt.Errorf("occupancy is %d x %d, but %d taxa and %d loci", nrow, ncol, aln.NTax(), len(parts))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "taxon")
	for _, p := range parts {
		fmt.Fprint(bw, "\t", p.Name)
	}
	fmt.Fprint(bw, "\tloci\tmissing\n")
	for i, r := range aln.Rows {
		fmt.Fprint(bw, r.Label)
		for _, f := range occ.Mat[i] {
			fmt.Fprintf(bw, "\t%.2f", f)
		}
		fmt.Fprintf(bw, "\t%d\t%.2f\n", concat.Present(occ.Mat[i]), concat.Missing(r.Seq, filler))
	}
	return bw.Flush()
}
