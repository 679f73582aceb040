// 18 Oct 2026

// Package alnwrt writes merged alignments and their partitions.
package alnwrt

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/catfasta/pkg/concat"
)

// OutputFormat is one of the alignment formats we can write. There is
// only ever one, so a run cannot ask for two at once.
type OutputFormat int

const (
	Fasta OutputFormat = iota
	Nexus
	Phylip
)

var fmtNames = [...]string{Fasta: "fasta", Nexus: "nexus", Phylip: "phylip"}

func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(fmtNames) {
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
	return fmtNames[f]
}

// DefaultName is the output file name when none is given.
func (f OutputFormat) DefaultName() string {
	switch f {
	case Nexus:
		return "concat.nex"
	case Phylip:
		return "concat.phy"
	}
	return "concat.fasta"
}

// ConflictingFormatError is returned when more than one output format
// was asked for.
type ConflictingFormatError struct {
	Formats []string
}

func (e *ConflictingFormatError) Error() string {
	return "pick only one output format, not " + strings.Join(e.Formats, " and ")
}

// FormatOf turns a set of requests into one format. Each argument
// names a format that was asked for. Asking for none gives Fasta.
// Asking twice for the same one is fine.
func FormatOf(asked ...OutputFormat) (OutputFormat, error) {
	if len(asked) == 0 {
		return Fasta, nil
	}
	seen := make(map[OutputFormat]bool)
	var names []string
	for _, f := range asked {
		if !seen[f] {
			seen[f] = true
			names = append(names, f.String())
		}
	}
	if len(names) > 1 {
		return Fasta, &ConflictingFormatError{Formats: names}
	}
	return asked[0], nil
}

// ParseFormat reads a format name, as found in a config file.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fasta", "fa", "fas":
		return Fasta, nil
	case "nexus", "nex":
		return Nexus, nil
	case "phylip", "phy":
		return Phylip, nil
	}
	return Fasta, fmt.Errorf("unknown output format %q", s)
}

// Options says how to write an alignment.
type Options struct {
	Format OutputFormat
	Wrap   int  // Fasta line length. 0 means do not wrap.
	Filler byte // Declared as the missing symbol in nexus
}

// Write sends the alignment to w in the chosen format.
func Write(w io.Writer, aln *concat.Alignment, opts *Options) error {
	switch opts.Format {
	case Nexus:
		return WriteNexus(w, aln, opts.Filler)
	case Phylip:
		return WritePhylip(w, aln)
	case Fasta:
		return WriteFasta(w, aln, opts.Wrap)
	}
	return fmt.Errorf("cannot write format %v", opts.Format)
}
