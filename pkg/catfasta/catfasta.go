// 18 Oct 2026
// Concatenate alignments of different loci. Everything is read and
// checked before anything is written.

package catfasta

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/catfasta/pkg/alnwrt"
	"github.com/andrew-torda/catfasta/pkg/concat"
	"github.com/andrew-torda/catfasta/pkg/seq"
	. "github.com/andrew-torda/catfasta/pkg/seq/common"
)

// ErrUsage marks errors where the command line was wrong.
var ErrUsage = errors.New("usage error")

// CmdFlag has everything from the command line.
type CmdFlag struct {
	Files   []string // explicit input files. If given, Dir is ignored
	Dir     string   // directory to read, if there are no Files
	Suffix  string   // only names in Dir containing this are read
	Outfile string   // "" means a name which depends on the format
	Filler  string   // one character for missing taxa
	Delim   string   // cut labels at this
	Part    bool     // write a partition table
	Quiet   bool
	Verbose bool
	Yes     bool // do not ask before reading a whole directory
	Wrap    int  // fasta line length, 0 for no wrapping
	Formats []alnwrt.OutputFormat
	Info    string // file for the occupancy table
	Config  string // toml file with defaults

	Set    map[string]bool // names of flags given on the command line
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// setDefaults fills in the io and anything else left empty.
func (flags *CmdFlag) setDefaults() {
	if flags.Stdin == nil {
		flags.Stdin = os.Stdin
	}
	if flags.Stdout == nil {
		flags.Stdout = os.Stdout
	}
	if flags.Stderr == nil {
		flags.Stderr = os.Stderr
	}
	if flags.Dir == "" {
		flags.Dir = "."
	}
	if flags.Filler == "" {
		flags.Filler = string(MissChar)
	}
	if flags.Set == nil {
		flags.Set = make(map[string]bool)
	}
}

// newLogger writes to stderr. Quiet only lets errors through.
func newLogger(flags *CmdFlag) *log.Logger {
	logger := log.NewWithOptions(flags.Stderr, log.Options{Prefix: "catfasta"})
	switch {
	case flags.Quiet:
		logger.SetLevel(log.ErrorLevel)
	case flags.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// inputs decides which files to read. Explicit files win over a
// directory. If the user gave neither, we ask.
func inputs(flags *CmdFlag, logger *log.Logger, outfile string) ([]string, error) {
	if len(flags.Files) > 0 {
		if flags.Set["d"] {
			logger.Warn("both files and a directory given, using the files", "dir", flags.Dir)
		}
		return flags.Files, nil
	}
	if !flags.Set["d"] && !flags.Yes {
		ok, err := confirm(flags.Stdin, flags.Stdout, flags.Dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: use either -f or -d", ErrUsage)
		}
	}
	skip := []string{outfile, flags.Info, filepath.Join(filepath.Dir(outfile), alnwrt.PartFname)}
	fnames, err := listDir(flags.Dir, flags.Suffix, skip...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", flags.Dir, err)
	}
	return fnames, nil
}

// readAll reads every file, in order. The first bad file stops everything.
func readAll(fnames []string, s_opts *seq.Options, logger *log.Logger) ([]*seq.SeqGrp, error) {
	grps := make([]*seq.SeqGrp, 0, len(fnames))
	for _, f := range fnames {
		g, err := seq.Readfile(f, s_opts)
		if err != nil {
			return nil, err
		}
		logger.Debug("read", "file", f, "nseq", g.NSeq(), "length", g.GetLen())
		grps = append(grps, g)
	}
	return grps, nil
}

// writeFile creates fname and hands it to wrt. If writing fails, the
// half written file is removed.
func writeFile(fname string, wrt func(io.Writer) error) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err = wrt(fp); err == nil {
		err = fp.Close()
	} else {
		fp.Close()
	}
	if err != nil {
		os.Remove(fname)
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}

// Mymain does the work after the command line has been parsed.
func Mymain(flags *CmdFlag) error {
	flags.setDefaults()
	cfg, err := LoadConfig(flags.Config)
	if err != nil {
		return err
	}
	cfg.apply(flags)
	logger := newLogger(flags)

	format, err := alnwrt.FormatOf(flags.Formats...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(flags.Filler) != 1 {
		return fmt.Errorf("%w: filler must be one character, not %q", ErrUsage, flags.Filler)
	}
	filler := flags.Filler[0]
	if flags.Wrap < 0 {
		return fmt.Errorf("%w: wrap width %d is negative", ErrUsage, flags.Wrap)
	}
	outfile := flags.Outfile
	if outfile == "" {
		outfile = format.DefaultName()
	}

	fnames, err := inputs(flags, logger, outfile)
	if err != nil {
		return err
	}
	if len(fnames) == 0 {
		logger.Warn("no files to concatenate", "dir", flags.Dir, "suffix", flags.Suffix)
		return nil
	}
	grps, err := readAll(fnames, &seq.Options{Delim: flags.Delim}, logger)
	if err != nil {
		return err
	}
	labels := concat.Universe(grps)
	aln, err := concat.Merge(grps, labels, filler)
	if err != nil {
		return err
	}
	parts, err := concat.Partitions(concat.FileLens(grps))
	if err != nil {
		return err
	}
	logger.Info("merged", "files", len(grps), "taxa", aln.NTax(), "columns", aln.NChar())

	w_opts := &alnwrt.Options{Format: format, Wrap: flags.Wrap, Filler: filler}
	if err := writeFile(outfile, func(w io.Writer) error { return alnwrt.Write(w, aln, w_opts) }); err != nil {
		return err
	}
	if !flags.Quiet {
		fmt.Fprintln(flags.Stdout, "Your concatenated file is", outfile)
	}

	if flags.Part {
		if format == alnwrt.Nexus {
			if err := alnwrt.AppendNexusSets(outfile, parts); err != nil {
				return err
			}
			if !flags.Quiet {
				fmt.Fprintln(flags.Stdout, "Partition block added to NEXUS file")
			}
		} else {
			partfile := filepath.Join(filepath.Dir(outfile), alnwrt.PartFname)
			if err := alnwrt.WritePartText(flags.Stdout, parts); err != nil {
				return err
			}
			wrt := func(w io.Writer) error { return alnwrt.WritePartText(w, parts) }
			if err := writeFile(partfile, wrt); err != nil {
				return err
			}
			logger.Debug("wrote partitions", "file", partfile)
		}
	}

	if flags.Info != "" {
		occ := concat.Occupancy(grps, labels, filler)
		wrt := func(w io.Writer) error { return alnwrt.WriteInfo(w, aln, occ, parts, filler) }
		if err := writeFile(flags.Info, wrt); err != nil {
			return err
		}
		logger.Info("wrote occupancy", "file", flags.Info)
	}
	return nil
}
