// core/dna/complement.go
package dna

import "unicode/utf8"

// complement maps each canonical base to its Watson–Crick partner.
// Zero means "not a canonical base".
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// Pair returns the Watson–Crick partner of r and whether r is one of A, C, G, T.
func Pair(r rune) (rune, bool) {
	c, ok := pair(r)
	return rune(c), ok
}

func pair(r rune) (byte, bool) {
	if r >= utf8.RuneSelf || r < 0 {
		return 0, false
	}
	c := complement[r]
	return c, c != 0
}
