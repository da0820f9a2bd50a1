// Package seqops provides small sequence-manipulation primitives:
// complementing and reverse complementing (used by the coordinate
// mapper and the in-memory test provider), plus flanking-window,
// rotation and homopolymer helpers. The mapper's 3' shift
// normalization does its own sliding and does not call the latter.
package seqops

// complementMap holds the IUPAC complement for the four standard bases
// plus the ambiguity code N, in both cases. Anything else complements
// to 'N'.
var complementMap = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
	'N': 'N', 'n': 'n',
}

// Complement returns the complement of a single base, 'N' if base has
// no known complement.
func Complement(base byte) byte {
	if comp, ok := complementMap[base]; ok {
		return comp
	}
	return 'N'
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Used when mapping between a gene's genomic strand and the template
// strand its transcript is read from.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return string(out)
}

// Window extracts up to k bases on either side of [start, end) within
// seq, clamped to the sequence bounds, and returns the flanking left
// and right substrings.
func Window(seq string, start, end, k int) (left, right string) {
	if start < 0 {
		start = 0
	}
	if end > len(seq) {
		end = len(seq)
	}
	leftStart := start - k
	if leftStart < 0 {
		leftStart = 0
	}
	rightEnd := end + k
	if rightEnd > len(seq) {
		rightEnd = len(seq)
	}
	return seq[leftStart:start], seq[end:rightEnd]
}

// RotateLeft returns s with its first n bytes moved to the end; n is
// taken modulo len(s), and a negative n rotates right.
func RotateLeft(s string, n int) string {
	if len(s) == 0 {
		return s
	}
	n = n % len(s)
	if n < 0 {
		n += len(s)
	}
	return s[n:] + s[:n]
}

// IsHomopolymerRun reports whether every base in s is identical.
func IsHomopolymerRun(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
