// 18 Oct 2026

package alnwrt_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/catfasta/pkg/alnwrt"
	"github.com/andrew-torda/catfasta/pkg/brokenio"
	"github.com/andrew-torda/catfasta/pkg/concat"
	"github.com/andrew-torda/catfasta/pkg/seq"
)

// abAln is the merge of A (x, y) and B (y, z).
func abAln(t *testing.T) (*concat.Alignment, []concat.Part, []*seq.SeqGrp) {
	t.Helper()
	a, err := seq.Str2SeqGrp("A.fasta", []string{"x", "yy"}, []string{"ACGT", "TTTT"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := seq.Str2SeqGrp("B.fasta", []string{"yy", "zzz"}, []string{"CCC", "GGG"})
	if err != nil {
		t.Fatal(err)
	}
	grps := []*seq.SeqGrp{a, b}
	aln, err := concat.Merge(grps, concat.Universe(grps), '?')
	if err != nil {
		t.Fatal(err)
	}
	parts, err := concat.Partitions(concat.FileLens(grps))
	if err != nil {
		t.Fatal(err)
	}
	return aln, parts, grps
}

func oneRow(label, s string) *concat.Alignment {
	return &concat.Alignment{
		Rows: []concat.Row{{Label: label, Seq: []byte(s)}},
		Lens: []int{len(s)},
	}
}

func TestFastaNoWrap(t *testing.T) {
	aln, _, _ := abAln(t)
	var sb strings.Builder
	if err := WriteFasta(&sb, aln, 0); err != nil {
		t.Fatal(err)
	}
	want := ">x\nACGT???\n>yy\nTTTTCCC\n>zzz\n????GGG\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatal("fasta (-want +got)\n", diff)
	}
}

func TestFastaWrap12(t *testing.T) {
	var sb strings.Builder
	if err := WriteFasta(&sb, oneRow("s1", "ACGTACGTACGT"), 5); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	want := []string{">s1", "ACGTA", "CGTAC", "GT"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatal("wrapped at 5 (-want +got)\n", diff)
	}
}

// TestWrapRoundTrip joins wrapped lines and checks we get back what went in.
func TestWrapRoundTrip(t *testing.T) {
	const alpha = "ACGT-?N"
	for _, n := range []int{1, 3, 7, 10, 100} {
		for _, l := range []int{1, 2, 9, 10, 11, 99, 100, 101, 250} {
			var b strings.Builder
			for i := 0; i < l; i++ {
				b.WriteByte(alpha[(i*5+l)%len(alpha)])
			}
			s := b.String()
			var sb strings.Builder
			if err := WriteFasta(&sb, oneRow("q", s), n); err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
			if lines[0] != ">q" {
				t.Fatal("header is", lines[0])
			}
			for i, line := range lines[1:] {
				if i < len(lines)-2 && len(line) != n {
					t.Fatalf("width %d len %d: line %d has %d chars", n, l, i, len(line))
				}
				if len(line) == 0 || len(line) > n {
					t.Fatalf("width %d len %d: bad last line %q", n, l, line)
				}
			}
			if got := strings.Join(lines[1:], ""); got != s {
				t.Fatalf("width %d len %d: got back %q from %q", n, l, got, s)
			}
		}
	}
}

func TestNexus(t *testing.T) {
	aln, parts, _ := abAln(t)
	var sb strings.Builder
	if err := WriteNexus(&sb, aln, '?'); err != nil {
		t.Fatal(err)
	}
	if err := WriteNexusSets(&sb, parts); err != nil {
		t.Fatal(err)
	}
	want := `#NEXUS

Begin DATA;
	Dimensions ntax=3 nchar=7;
	Format Datatype=DNA gap=- missing=?;
	Matrix
	x   ACGT???
	yy  TTTTCCC
	zzz ????GGG
;
End;

Begin Sets;
	charset A = 1-4;
	charset B = 5-7;

	partition all = 2:A,B;
End;
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatal("nexus (-want +got)\n", diff)
	}
}

func TestAppendNexusSets(t *testing.T) {
	aln, parts, _ := abAln(t)
	fname := filepath.Join(t.TempDir(), "concat.nex")
	fp, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteNexus(fp, aln, '?'); err != nil {
		t.Fatal(err)
	}
	fp.Close()
	if err := AppendNexusSets(fname, parts); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "#NEXUS\n") || !strings.HasSuffix(s, "partition all = 2:A,B;\nEnd;\n") {
		t.Fatal("appended file looks wrong\n", s)
	}
	if err := AppendNexusSets(filepath.Join(t.TempDir(), "nothere.nex"), parts); err == nil {
		t.Fatal("appending to a missing file should fail")
	}
}

func TestPhylip(t *testing.T) {
	aln, _, _ := abAln(t)
	var sb strings.Builder
	if err := WritePhylip(&sb, aln); err != nil {
		t.Fatal(err)
	}
	want := "3 7\nx   ACGT???\nyy  TTTTCCC\nzzz ????GGG\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatal("phylip (-want +got)\n", diff)
	}
}

func TestPartText(t *testing.T) {
	_, parts, _ := abAln(t)
	var sb strings.Builder
	if err := WritePartText(&sb, parts); err != nil {
		t.Fatal(err)
	}
	if want := "A = 1-4;\nB = 5-7;\n"; sb.String() != want {
		t.Fatalf("partition text got %q wanted %q", sb.String(), want)
	}
}

func TestInfo(t *testing.T) {
	aln, parts, grps := abAln(t)
	occ := concat.Occupancy(grps, concat.Universe(grps), '?')
	var sb strings.Builder
	if err := WriteInfo(&sb, aln, occ, parts, '?'); err != nil {
		t.Fatal(err)
	}
	want := "taxon\tA\tB\tloci\tmissing\n" +
		"x\t1.00\t0.00\t1\t0.43\n" +
		"yy\t1.00\t1.00\t2\t0.00\n" +
		"zzz\t0.00\t1.00\t1\t0.57\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatal("info (-want +got)\n", diff)
	}
	if err := WriteInfo(&sb, aln, occ, parts[:1], '?'); err == nil {
		t.Fatal("mismatched occupancy should fail")
	}
}

func TestFormatOf(t *testing.T) {
	if f, err := FormatOf(); err != nil || f != Fasta {
		t.Fatal("no request gave", f, err)
	}
	if f, err := FormatOf(Nexus, Nexus); err != nil || f != Nexus {
		t.Fatal("nexus twice gave", f, err)
	}
	_, err := FormatOf(Nexus, Phylip)
	var e *ConflictingFormatError
	if !errors.As(err, &e) {
		t.Fatal("nexus and phylip should conflict, got", err)
	}
	if diff := cmp.Diff([]string{"nexus", "phylip"}, e.Formats); diff != "" {
		t.Fatal(diff)
	}
	for in, want := range map[string]OutputFormat{"": Fasta, "NEXUS": Nexus, "phy": Phylip} {
		if f, err := ParseFormat(in); err != nil || f != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, f, err)
		}
	}
	if _, err := ParseFormat("clustal"); err == nil {
		t.Fatal("clustal is not a format we write")
	}
	names := []string{Fasta.DefaultName(), Nexus.DefaultName(), Phylip.DefaultName()}
	if diff := cmp.Diff([]string{"concat.fasta", "concat.nex", "concat.phy"}, names); diff != "" {
		t.Fatal(diff)
	}
}

func TestWriteDispatch(t *testing.T) {
	aln, _, _ := abAln(t)
	for _, f := range []OutputFormat{Fasta, Nexus, Phylip} {
		var sb strings.Builder
		if err := Write(&sb, aln, &Options{Format: f, Filler: '?'}); err != nil {
			t.Fatal(f, err)
		}
		if !strings.Contains(sb.String(), "????GGG") {
			t.Fatal(f, "output lacks zzz\n", sb.String())
		}
	}
	if err := Write(&strings.Builder{}, aln, &Options{Format: OutputFormat(7)}); err == nil {
		t.Fatal("unknown format should fail")
	}
}

// TestWriteFails checks that a failing writer is reported by every format.
func TestWriteFails(t *testing.T) {
	aln, parts, _ := abAln(t)
	for _, f := range []OutputFormat{Fasta, Nexus, Phylip} {
		w := brokenio.NewWriter(io.Discard, 10)
		if err := Write(w, aln, &Options{Format: f, Wrap: 2, Filler: '?'}); !errors.Is(err, brokenio.ErrBroken) {
			t.Fatal(f, "did not pass on the write error, got", err)
		}
	}
	if err := WriteNexusSets(brokenio.NewWriter(io.Discard, 3), parts); err == nil {
		t.Fatal("sets block ignored write error")
	}
	if err := WritePartText(brokenio.NewWriter(io.Discard, 3), parts); err == nil {
		t.Fatal("partition text ignored write error")
	}
}
