package equivalence

import (
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvsfmt"
	"github.com/hgvsgo/hgvscore/internal/mapper"
)

// projectableProteinEdit reports whether e's resulting sequence can be
// rendered directly against the reference protein window. Frameshift
// and extension edits describe a consequence downstream of the
// variant itself (the new reading frame, or read-through past the
// native stop); reconstructing that sequence would require the
// transcript's nucleotide context, not just the reference protein, so
// those two kinds are compared structurally instead of by projection.
func projectableProteinEdit(k hgvsast.EditKind) bool {
	switch k {
	case hgvsast.EditSubstitution, hgvsast.EditDeletion, hgvsast.EditInsertion,
		hgvsast.EditDuplication, hgvsast.EditDelins, hgvsast.EditIdentity:
		return true
	default:
		return false
	}
}

// compareProtein implements §4.4.4's p↔p row: observed-vs-predicted
// bracket handling (§4.4.5) first, then projection and unification for
// the edit kinds that support it.
func compareProtein(a, b *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	bodyA, bodyB := withoutBracket(a), withoutBracket(b)
	if hgvsfmt.Format(bodyA) == hgvsfmt.Format(bodyB) {
		if a.UncertainWhole == b.UncertainWhole {
			return Identity, nil
		}
		return Analogous, nil
	}

	if !projectableProteinEdit(a.Edit.Kind) || !projectableProteinEdit(b.Edit.Kind) {
		return Different, nil
	}

	pa, err := projectProtein(a, provider, window)
	if err != nil {
		return Unknown, err
	}
	pb, err := projectProtein(b, provider, window)
	if err != nil {
		return Unknown, err
	}
	if unifyProteinWindows(pa, pb) {
		return Analogous, nil
	}
	return Different, nil
}

func withoutBracket(v *hgvsast.Variant) *hgvsast.Variant {
	out := *v
	out.UncertainWhole = false
	return &out
}

// projectProtein renders the reference protein window around v's edit
// after the edit is applied, the protein analogue of projectNucleic.
func projectProtein(v *hgvsast.Variant, provider dataprovider.Provider, window int) (string, error) {
	lo := v.Location.Start.Protein.ToZeroBased()
	hi := lo
	if v.Location.IsRange {
		hi = v.Location.End.Protein.ToZeroBased()
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	fetchLo := int64(lo) - int64(window)
	if fetchLo < 0 {
		fetchLo = 0
	}
	// See projectNucleic: anchoring fetchHi off lo keeps two
	// differently-spanned descriptions of the same redundant edit
	// directly comparable.
	fetchHi := int64(lo) + int64(window) + 1
	if int64(hi)+1 > fetchHi {
		fetchHi = int64(hi) + 1
	}
	seq, err := provider.GetSeq(v.Accession, fetchLo, fetchHi, dataprovider.AminoAcid)
	if err != nil {
		return "", err
	}

	start := int(int64(lo) - fetchLo)
	end := int(int64(hi) - fetchLo)
	return mapper.ApplyEdit(seq, start, end, v.Edit)
}

// unifyProteinWindows compares two equal-length projected protein
// windows under a ResidueToken unification (§4.4.4): a residue
// rendered as the unknown token `Xaa` binds to whatever the other
// projection carries at that position, so two differently phrased
// descriptions that resolve to the same protein (including a
// redundant duplication boundary inside a homopolymer run) still
// compare equal.
func unifyProteinWindows(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] || a[i] == 'X' || b[i] == 'X' {
			continue
		}
		return false
	}
	return true
}
