// 18 Oct 2026
// Package white removes white space from byte slices. It only knows
// about ascii white space, which is all we find in sequence files.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func isWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place and removes all the white
// space. The slice comes back with the length adjusted, but the capacity
// unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !isWhite(c) {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// Has reports whether there is any white space at all. The reader uses
// it to avoid touching lines which are already clean.
func Has(s []byte) bool {
	for _, c := range s {
		if isWhite(c) {
			return true
		}
	}
	return false
}
