// 31 July 2020

/*

Randseq is for making random aligned loci for testing catfasta.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname.

Flags:
	-g
		no gaps in the output sequences
	-e
		provoke errors. The last sequence will be one longer than the
		others, which catfasta must reject.
	-r
		random number seed
	-c
		prefix for labels. Labels are numbered, so -c taxon gives
		taxon01, taxon02, ...
	-k
		leave out every k'th taxon. Run it twice with different -k and
		the two files share only some taxa.

Whitespace should generally be unpredictable, so we generate funny cases.
*/
package main
