// 31 July 2020
// 18 Oct 2026 write aligned loci. Every sequence has the same number
// of symbols, labels are numbered so loci can share taxa.

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Label prefix for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Skip  int       // If > 1, leave out every Skip'th taxon, starting from the first
	NoGap bool      // Do not add gaps
	MkErr bool      // Add an error, by changing a length
}

// Label gives the label that sequence i (from 0) would get. Numbers
// are zero padded, so labels sort in the order they were written.
func Label(args *RandSeqArgs, i int) string {
	width := len(fmt.Sprintf("%d", args.Nseq))
	return fmt.Sprintf("%s%0*d", args.Cmmt, width, i+1)
}

// Skipped says if sequence i is left out.
func Skipped(args *RandSeqArgs, i int) bool {
	return args.Skip > 1 && i%args.Skip == 0
}

// addinner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	coin := spacernd.Int31n(2)
	nNL := 0 // Number of new lines to add
	if coin == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

type numbered struct {
	i int
	s []byte
}

// writeseq takes sequences from the channel, adds a label and white
// space and writes them out. The first write error is kept.
func writeseq(sChan <-chan numbered, args *RandSeqArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()

	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	for n := range sChan {
		if *err != nil {
			continue // drain
		}
		s := addspace(n.s, spacernd)
		tmp := ">" + Label(args, n.i) + "\n"
		if _, e := io.WriteString(args.Wrtr, tmp); e != nil {
			*err = e
			continue
		}
		if _, e := args.Wrtr.Write(append(s, '\n')); e != nil {
			*err = e
		}
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var werr error
	letters := []byte{'a', 'c', 'g', 't'}
	if !args.NoGap {
		letters = append(letters, letters...)
		letters = append(letters, letters...)
		letters = append(letters, '-')
	}
	if args.Len < 1 {
		return fmt.Errorf("sequence length %d, but need at least 1", args.Len)
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan numbered)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &werr)
	last := -1
	for i := 0; i < args.Nseq; i++ {
		if !Skipped(args, i) {
			last = i
		}
	}
	for i := 0; i < args.Nseq; i++ {
		if Skipped(args, i) {
			continue
		}
		n := args.Len
		if args.MkErr && i == last {
			n++
		}
		sChan <- numbered{i: i, s: getseq(n, letters, rnd)}
	}
	close(sChan)
	wg.Wait()
	return werr
}
