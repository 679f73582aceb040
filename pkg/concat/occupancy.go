// 18 Oct 2026

package concat

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/catfasta/pkg/seq"
	. "github.com/andrew-torda/catfasta/pkg/seq/common"
)

// Occupancy says how much data each taxon has in each locus.
// Mat.Mat[i][j] is the fraction of locus j's columns where labels[i]
// has a symbol which is neither a gap nor the filler. A taxon missing
// from a locus scores 0.
func Occupancy(grps []*seq.SeqGrp, labels []string, filler byte) *matrix.FMatrix2d {
	mat := matrix.NewFMatrix2d(len(labels), len(grps))
	for i, l := range labels {
		for j, g := range grps {
			s, ok := g.Find(l)
			if !ok || len(s) == 0 {
				continue
			}
			n := 0
			for _, c := range s {
				if c != GapChar && c != filler {
					n++
				}
			}
			mat.Mat[i][j] = float32(n) / float32(len(s))
		}
	}
	return mat
}

// Present counts the loci where a row of an occupancy matrix has any
// data at all.
func Present(row []float32) int {
	n := 0
	for _, f := range row {
		if f > 0 {
			n++
		}
	}
	return n
}

// Missing is the fraction of a merged sequence which is gap or filler.
func Missing(s []byte, filler byte) float32 {
	if len(s) == 0 {
		return 0
	}
	n := 0
	for _, c := range s {
		if c == GapChar || c == filler {
			n++
		}
	}
	return float32(n) / float32(len(s))
}
