// 18 Oct 2026

package seq

import "fmt"

// fnameOr gives something printable when we read from a reader with
// no file behind it.
func fnameOr(fname string) string {
	if fname == "" {
		return "input"
	}
	return fname
}

// NotFastaError says we could not find anything that looks like
// sequences in a file.
type NotFastaError struct {
	Fname  string
	Reason string
}

func (e *NotFastaError) Error() string {
	return fmt.Sprintf("%s is not FASTA: %s", fnameOr(e.Fname), e.Reason)
}

// InconsistentLengthError is returned when the sequences in one file
// are not all the same length. Want is the length of the first sequence.
type InconsistentLengthError struct {
	Fname string
	Label string
	Want  int
	Got   int
}

func (e *InconsistentLengthError) Error() string {
	const msg = "%s: sequences are not the same length. First sequence length %d, but %q has length %d"
	return fmt.Sprintf(msg, fnameOr(e.Fname), e.Want, trimStr(e.Label, 40), e.Got)
}

// DupLabelError means a label turned up twice in one file.
type DupLabelError struct {
	Fname string
	Label string
}

func (e *DupLabelError) Error() string {
	return fmt.Sprintf("%s: label %q occurs more than once", fnameOr(e.Fname), trimStr(e.Label, 40))
}

// EmptySeqError is a header with no sequence after it.
type EmptySeqError struct {
	Fname string
	Label string
}

func (e *EmptySeqError) Error() string {
	return fmt.Sprintf("%s: zero length sequence after %q", fnameOr(e.Fname), trimStr(e.Label, 40))
}
