// 29 Apr 2020
// 18 Oct 2026 missing data character for concatenation

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-'  // a minus sign is always used for gaps
const MissChar byte = '?' // default filler for a taxon missing from a locus

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// An optional suffix lets the caller control the extension, since
// partition names are taken from file names.
func WrtTemp(s string, suffix ...string) (string, error) {
	pattern := "_del_me_testing"
	if suffix != nil {
		pattern += "*" + suffix[0]
	}
	f_tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
