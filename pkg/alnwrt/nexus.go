// 18 Oct 2026

package alnwrt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/catfasta/pkg/concat"
)

// padLabel pads a label with spaces to one more than the longest.
func padLabel(l string, maxlen int) string {
	return l + strings.Repeat(" ", maxlen-len(l)+1)
}

// WriteNexus writes a nexus DATA block. filler is declared as the
// missing symbol.
func WriteNexus(w io.Writer, aln *concat.Alignment, filler byte) error {
	bw := bufio.NewWriter(w)
	maxlen := aln.MaxLabel()
	fmt.Fprint(bw, "#NEXUS\n\n")
	fmt.Fprint(bw, "Begin DATA;\n")
	fmt.Fprintf(bw, "\tDimensions ntax=%d nchar=%d;\n", aln.NTax(), aln.NChar())
	fmt.Fprintf(bw, "\tFormat Datatype=DNA gap=- missing=%c;\n\tMatrix\n", filler)
	for _, r := range aln.Rows {
		fmt.Fprint(bw, "\t", padLabel(r.Label, maxlen))
		bw.Write(r.Seq)
		bw.WriteByte('\n')
	}
	fmt.Fprint(bw, ";\nEnd;\n")
	return bw.Flush()
}

// WriteNexusSets writes a Sets block with a charset for each part and
// a partition naming all of them.
func WriteNexusSets(w io.Writer, parts []concat.Part) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "\nBegin Sets;\n")
	names := make([]string, len(parts))
	for i, p := range parts {
		fmt.Fprintf(bw, "\tcharset %s = %d-%d;\n", p.Name, p.Start, p.End)
		names[i] = p.Name
	}
	fmt.Fprintf(bw, "\n\tpartition all = %d:%s;\n", len(parts), strings.Join(names, ","))
	fmt.Fprint(bw, "End;\n")
	return bw.Flush()
}

// AppendNexusSets adds the Sets block to a nexus file we have already
// written.
func AppendNexusSets(fname string, parts []concat.Part) (err error) {
	fp, err := os.OpenFile(fname, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("appending sets block: %w", err)
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteNexusSets(fp, parts)
}
