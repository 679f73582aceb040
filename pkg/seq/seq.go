// 20 Dec 2017
// 18 Oct 2026 cut down to what a concatenation needs. A file is one
// locus, so a SeqGrp knows where it came from and can look up
// sequences by label.

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It reads them
// and checks that everything in one file is aligned.
package seq

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// seq is the exported type.
type seq struct {
	cmmt string
	seq  []byte
}

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty int
	Delim string // If set, labels are cut at the first occurrence
}

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// SeqGrp is the set of sequences from one file. They are kept in
// the order they were read, with an index so we can find them by label.
type SeqGrp struct {
	fname string
	seqs  []seq
	ndx   map[string]int
}

// Function GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Function GetCmmt returns the comment, without the leading ">".
// After reading, this is the label.
func (s seq) GetCmmt() string { return s.cmmt }

// Function Len
func (s seq) Len() int { return len(s.seq) }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() (t string) {
	if len(s.cmmt) > 0 {
		t = fmt.Sprintf("%c%s\n", cmmt_char, s.GetCmmt())
	} else {
		t = ">\n"
	}
	t += string(s.GetSeq())
	return
}

// GetLen returns the length of the first sequence.
// Once a file has been read, this is the length of all sequences.
func (seqgrp *SeqGrp) GetLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	return len(seqgrp.seqs[0].GetSeq())
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// Fname is the file the sequences came from, or "" for a reader.
func (seqgrp *SeqGrp) Fname() string { return seqgrp.fname }

// Find returns the sequence with exactly this label.
func (seqgrp *SeqGrp) Find(label string) ([]byte, bool) {
	i, ok := seqgrp.ndx[label]
	if !ok {
		return nil, false
	}
	return seqgrp.seqs[i].seq, true
}

// Labels returns the labels in file order.
func (seqgrp *SeqGrp) Labels() []string {
	r := make([]string, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		r[i] = s.cmmt
	}
	return r
}

// add appends a sequence, refusing a label we have already seen.
func (seqgrp *SeqGrp) add(cmmt string, s []byte) error {
	if seqgrp.ndx == nil {
		seqgrp.ndx = make(map[string]int)
	}
	if _, ok := seqgrp.ndx[cmmt]; ok {
		return &DupLabelError{Fname: seqgrp.fname, Label: cmmt}
	}
	seqgrp.ndx[cmmt] = len(seqgrp.seqs)
	seqgrp.seqs = append(seqgrp.seqs, seq{cmmt: cmmt, seq: s})
	return nil
}

// check_lengths makes sure everything in the group is the same length
// and that there is something there at all.
func (seqgrp *SeqGrp) check_lengths() error {
	if len(seqgrp.seqs) == 0 {
		return &NotFastaError{Fname: seqgrp.fname, Reason: "no sequences found"}
	}
	iwant := len(seqgrp.seqs[0].GetSeq())
	for _, s := range seqgrp.seqs {
		if len(s.seq) == 0 {
			return &EmptySeqError{Fname: seqgrp.fname, Label: s.cmmt}
		}
		if ilen := len(s.seq); ilen != iwant {
			return &InconsistentLengthError{
				Fname: seqgrp.fname, Label: s.cmmt, Want: iwant, Got: ilen}
		}
	}
	return nil
}

// Readfile takes a filename and reads sequences from it.
// The file is mapped rather than read. Everything we keep is copied
// out before the mapping goes away.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	seqgrp := &SeqGrp{fname: fname}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // mmap will not map an empty file
		return nil, &NotFastaError{Fname: fname, Reason: "empty file"}
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()

	if err := parse(mm, seqgrp, s_opts); err != nil {
		return nil, err
	}
	if err := seqgrp.check_lengths(); err != nil {
		return nil, err
	}
	return seqgrp, nil
}

// ReadFasta reads fasta formatted sequences from a reader into seqgrp.
// It applies the same checks as Readfile.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	if err := parse(buf, seqgrp, s_opts); err != nil {
		return err
	}
	return seqgrp.check_lengths()
}

// Str2SeqGrp takes some labels and sequences and returns them as a
// seqgrp which claims to come from fname. It applies the checks we use
// on files, so it is handy for testing.
func Str2SeqGrp(fname string, labels, sIn []string) (*SeqGrp, error) {
	if len(labels) != len(sIn) {
		return nil, fmt.Errorf("Str2SeqGrp: %d labels but %d sequences", len(labels), len(sIn))
	}
	seqgrp := &SeqGrp{fname: fname}
	for i, s := range sIn {
		if err := seqgrp.add(labels[i], []byte(s)); err != nil {
			return nil, err
		}
	}
	if err := seqgrp.check_lengths(); err != nil {
		return nil, err
	}
	return seqgrp, nil
}
