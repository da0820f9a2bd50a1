package aacode

// SingleToThree maps an amino acid single-letter code to its three-letter
// HGVS display form. '*' (stop) maps to "Ter"; 'X' (unknown residue) maps
// to "Xaa".
var SingleToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'*': "Ter", 'X': "Xaa",
}

// ThreeToSingle is the inverse of SingleToThree, built once at package
// init so the two tables can never drift apart.
var ThreeToSingle = make(map[string]byte, len(SingleToThree))

func init() {
	for single, three := range SingleToThree {
		ThreeToSingle[three] = single
	}
}

// ToThree converts a single-letter amino acid code to its three-letter
// form. The ok result is false for a byte with no mapping.
func ToThree(single byte) (three string, ok bool) {
	three, ok = SingleToThree[single]
	return three, ok
}

// ToSingle converts a three-letter amino acid code to its single-letter
// form. The ok result is false for a string with no mapping.
func ToSingle(three string) (single byte, ok bool) {
	single, ok = ThreeToSingle[three]
	return single, ok
}

// IsTer reports whether single is the stop-codon marker.
func IsTer(single byte) bool { return single == '*' }

// IsUnknown reports whether single is the unknown-residue marker Xaa.
func IsUnknown(single byte) bool { return single == 'X' }
