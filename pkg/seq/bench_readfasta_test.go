// Reading a big file, by reader and by mapping it.
// go test -bench Read -memprofile mem.out
package seq_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/andrew-torda/catfasta/pkg/seq"
)

func writeTmpSeqFile(b *testing.B) string {
	fp, err := os.CreateTemp("", "del_me")
	if err != nil {
		b.Fatal(err)
	}
	defer fp.Close()
	nseq := 21465
	nrep := 27
	for i := 0; i < nseq; i++ {
		fmt.Fprintln(fp, "> seq", i)
		for j := 0; j < nrep; j++ {
			fmt.Fprint(fp, "aaaaaaaaaaaaa ")
		}
		fmt.Fprint(fp, "\n")
	}
	b.Cleanup(func() { os.Remove(fp.Name()) })
	return fp.Name()
}

func BenchmarkReadFasta(b *testing.B) {
	fname := writeTmpSeqFile(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fp, err := os.Open(fname)
		if err != nil {
			b.Fatal(err)
		}
		var seqgrp seq.SeqGrp
		if err = seq.ReadFasta(fp, &seqgrp, &seq.Options{}); err != nil {
			b.Fatal("benchmark broke reading sequences", err)
		}
		fp.Close()
	}
}

func BenchmarkReadfileMmap(b *testing.B) {
	fname := writeTmpSeqFile(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Readfile(fname, &seq.Options{}); err != nil {
			b.Fatal("benchmark broke reading sequences", err)
		}
	}
}
