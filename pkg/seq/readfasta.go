// Reader for fasta format files.
// The whole file is in memory (mapped or read), so we walk over it a
// line at a time. Sequence lines can be wrapped and have white space.

package seq

import (
	"bytes"
	"strings"

	"github.com/andrew-torda/catfasta/pkg/white"
)

const (
	NL       = '\n'
	cmmtChar = '>'
)

// label turns a header line (without the ">") into a label.
// Trailing white space goes. If there is a delimiter, we only keep
// what comes before it.
func label(line []byte, delim string) string {
	s := strings.TrimRight(string(line), " \t\r\v\f")
	if delim != "" {
		if i := strings.Index(s, delim); i != -1 {
			s = s[:i]
		}
	}
	return s
}

// parse splits buf into sequences and adds them to seqgrp.
// Lines before the first header may only be blank.
func parse(buf []byte, seqgrp *SeqGrp, s_opts *Options) error {
	if s_opts == nil {
		s_opts = &Options{}
	}
	var cmmt string
	var cur []byte
	inSeq := false
	flush := func() error {
		if !inSeq {
			return nil
		}
		return seqgrp.add(cmmt, cur)
	}
	for len(buf) > 0 {
		var line []byte
		if i := bytes.IndexByte(buf, NL); i == -1 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:i], buf[i+1:]
		}
		if len(line) > 0 && line[0] == cmmtChar {
			if err := flush(); err != nil {
				return err
			}
			cmmt = label(line[1:], s_opts.Delim)
			if cmmt == "" {
				return &NotFastaError{Fname: seqgrp.fname, Reason: "empty label"}
			}
			cur = nil
			inSeq = true
			continue
		}
		if !inSeq {
			if white.Has(line) {
				line = bytes.TrimSpace(line)
			}
			if len(line) == 0 {
				continue
			}
			return &NotFastaError{Fname: seqgrp.fname, Reason: "text before first header"}
		}
		n := len(cur) //         Append, which copies out of buf,
		cur = append(cur, line...)
		if white.Has(line) { //  then squeeze the new part
			tail := cur[n:]
			white.Remove(&tail)
			cur = cur[:n+len(tail)]
		}
	}
	return flush()
}
