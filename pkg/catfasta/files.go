// 18 Oct 2026

package catfasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// sameFile says if two names point to the same place. It works on
// names, since the output may not exist yet.
func sameFile(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return aa == bb
}

// listDir returns the files in dir whose names contain suffix, sorted by
// name. Sub-directories and anything in skip are left out.
func listDir(dir, suffix string, skip ...string) ([]string, error) {
	entries, err := os.ReadDir(dir) // sorted by name
	if err != nil {
		return nil, err
	}
	var fnames []string
outer:
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if suffix != "" && !strings.Contains(e.Name(), suffix) {
			continue
		}
		fname := filepath.Join(dir, e.Name())
		for _, s := range skip {
			if s != "" && sameFile(fname, s) {
				continue outer
			}
		}
		fnames = append(fnames, fname)
	}
	return fnames, nil
}

// interactive says if we can sensibly ask a question on rdr. Only a
// real file has to be a terminal. Anything else is assumed to be
// answering on purpose.
func interactive(rdr io.Reader) bool {
	if f, ok := rdr.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return rdr != nil
}

// confirm asks if we should really eat a whole directory. Only an
// answer starting with y is a yes.
func confirm(rdr io.Reader, w io.Writer, dir string) (bool, error) {
	if !interactive(rdr) {
		return false, fmt.Errorf("%w: no files or directory given and input is not a terminal. Use -f, -d or -y", ErrUsage)
	}
	fmt.Fprintf(w, "Do you wish to run catfasta on all files in %s? [y|n] ", dir)
	line, err := bufio.NewReader(rdr).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	line = strings.TrimSpace(line)
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}
