// 18 Oct 2026

/*
Catfasta concatenates alignments of different loci into one alignment.

Each input file is one locus in fasta format. Within a file, all sequences
must be the same length. Sequences are matched across files by their label
(the header line without the ">"). A taxon which is missing from a locus gets
a run of the missing data character as long as that locus.
Rows come out sorted by label. Columns come out in the order the files were
given, or in name order for a directory.

Usage:

	catfasta [options] [file ...]

Examples:

	catfasta -f COI.fasta,18S.fasta -q
	catfasta -d loci -s .fas -n -q -o all.nex
	catfasta -y -p -m N

Flags:

	-f
		comma separated files. Files can also just follow the options.
		If files are given, -d is ignored.
	-d
		directory to read. If neither files nor -d are given, catfasta asks
		before reading everything in the current directory.
	-s
		only read files in the directory whose names contain this.
	-o
		output file. The default is concat.fasta, concat.nex or concat.phy.
	-m
		missing data character (default "?").
	-delim
		cut labels at the first occurrence of this, so "COI|taxon1" with
		-delim "|" becomes "COI".
	-q
		write a partition table. For fasta and phylip, it goes to part.txt
		next to the output and to standard output. For nexus, a Sets block is
		added to the output.
	-Q
		quiet.
	-w, -W
		wrap fasta sequences every N characters. -W wraps at 100.
	-n, -p
		write nexus or phylip. Only one may be given.
	-i
		write a tab separated table saying how complete each taxon is in
		each locus.
	-y
		do not ask.
	-config
		toml file with defaults for filler, delim, wrap, format, suffix,
		partition and quiet. Command line flags win.

Partition names come from file names, with the directory and alignment
extension (.fasta, .fas, .aln, ...) removed. If there is no known extension,
the name is cut at the first ".".
*/
package main
