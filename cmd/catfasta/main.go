// 18 Oct 2026
// Concatenate fasta alignments of several loci into one alignment.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/andrew-torda/catfasta/pkg/alnwrt"
	"github.com/andrew-torda/catfasta/pkg/catfasta"
	. "github.com/andrew-torda/catfasta/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] [file ...]")
	long := `Files can be given one by one with -f (comma separated) or as arguments,
or by naming a directory with -d. In a directory, -s keeps only files whose
names contain the suffix.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags catfasta.CmdFlag
	var files string
	var wrapDflt, nexus, phylip bool

	flag.StringVar(&files, "f", "", "comma separated fasta files to concatenate")
	flag.StringVar(&flags.Dir, "d", ".", "directory with the fasta files")
	flag.StringVar(&flags.Suffix, "s", "", "only read files in the directory whose names contain this")
	flag.StringVar(&flags.Outfile, "o", "", "output file (default concat.fasta, concat.nex or concat.phy)")
	flag.StringVar(&flags.Filler, "m", string(MissChar), "character for missing data")
	flag.StringVar(&flags.Delim, "delim", "", "cut labels at the first occurrence of this")
	flag.BoolVar(&flags.Part, "q", false, "write a partition table")
	flag.BoolVar(&flags.Quiet, "Q", false, "quiet, only report errors")
	flag.BoolVar(&flags.Verbose, "v", false, "verbose")
	flag.IntVar(&flags.Wrap, "w", 0, "wrap fasta sequences every N characters, 0 for no wrapping")
	flag.BoolVar(&wrapDflt, "W", false, fmt.Sprint("wrap fasta sequences every ", alnwrt.DefaultWrap, " characters"))
	flag.BoolVar(&nexus, "n", false, "write NEXUS")
	flag.BoolVar(&phylip, "p", false, "write PHYLIP")
	flag.StringVar(&flags.Info, "i", "", "write a table of taxon occupancy per locus to this file")
	flag.BoolVar(&flags.Yes, "y", false, "do not ask before reading a whole directory")
	flag.StringVar(&flags.Config, "config", "", "toml file with default settings")
	flag.Usage = usage
	flag.Parse()

	flags.Set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { flags.Set[f.Name] = true })
	if files != "" {
		for _, f := range strings.Split(files, ",") {
			if f = strings.TrimSpace(f); f != "" {
				flags.Files = append(flags.Files, f)
			}
		}
	}
	flags.Files = append(flags.Files, flag.Args()...)
	if wrapDflt && !flags.Set["w"] {
		flags.Wrap = alnwrt.DefaultWrap
	}
	if nexus {
		flags.Formats = append(flags.Formats, alnwrt.Nexus)
	}
	if phylip {
		flags.Formats = append(flags.Formats, alnwrt.Phylip)
	}

	if err := catfasta.Mymain(&flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, catfasta.ErrUsage) {
			os.Exit(ExitUsageError)
		}
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
