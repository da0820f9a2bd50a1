package mapper

import (
	"strings"

	"github.com/hgvsgo/hgvscore/internal/aacode"
	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/transcript"
)

// CToP projects a c. Variant to its protein consequence on t, fetching
// the transcript's nucleotide sequence through provider. observed
// selects whether the result is wrapped in predicted-consequence
// brackets p.(…) (observed=false, the default HGVS convention for a
// c.-derived protein description) or left bare (observed=true).
func CToP(v *hgvsast.Variant, t *transcript.Transcript, provider dataprovider.Provider, observed bool) (*hgvsast.Variant, error) {
	if v.Kind != hgvsast.KindCoding {
		return nil, &hgvserr.MappingError{Reason: "c_to_p requires a c. variant"}
	}
	if !t.IsProteinCoding() {
		return nil, &hgvserr.TranslationError{Reason: "transcript has no CDS"}
	}
	if v.Location.Start.Transcript.IsIntronic() || (v.Location.IsRange && v.Location.End.Transcript.IsIntronic()) {
		return nil, &hgvserr.TranslationError{Reason: "intronic edit has no direct protein consequence"}
	}

	txSeq, err := provider.GetSeq(t.TranscriptAc, 0, int64(t.Length()), dataprovider.NucleicAcid)
	if err != nil {
		return nil, err
	}

	start := int(toTranscriptPos(v.Location.Start.Transcript, t))
	end := start
	if v.Location.IsRange {
		end = int(toTranscriptPos(v.Location.End.Transcript, t))
	}
	if start > end {
		start, end = end, start
	}

	editedTx, err := applyEdit(txSeq, start, end, v.Edit)
	if err != nil {
		return nil, err
	}
	shift := len(editedTx) - len(txSeq)

	cdsStart := int(t.CDSStart)
	editedCDSStart := cdsStart
	if end < cdsStart {
		editedCDSStart += shift
	}
	if editedCDSStart < 0 || editedCDSStart > len(editedTx) {
		return nil, &hgvserr.TranslationError{Reason: "edit shifts CDS start out of bounds"}
	}

	origCDS := txSeq[cdsStart:]
	editedCDS := editedTx[editedCDSStart:]

	refAA := aacode.TranslateSequence(origCDS)
	altAA := aacode.TranslateSequence(editedCDS)

	editCodon := (start - cdsStart) / 3
	if editCodon < 0 {
		editCodon = 0
	}

	loc, edit := diffProtein(refAA, altAA, shift%3 == 0, editCodon)
	out := &hgvsast.Variant{
		Accession:      t.ProteinAc,
		Kind:           hgvsast.KindProtein,
		Location:       loc,
		Edit:           edit,
		UncertainWhole: !observed,
	}
	return out, nil
}

// diffProtein compares two full, untruncated codon-by-codon
// translations and emits the minimal p. description of their
// difference: synonymous, missense, nonsense, in-frame deletion /
// insertion / duplication / delins, or frameshift. inFrame reports
// whether the underlying nucleotide edit's length change is a multiple
// of 3; it is the authoritative frameshift signal, since the difference
// in translated lengths alone conflates "one codon changed" with "one
// residue changed". editCodon is the 0-based index, within the CDS, of
// the codon the nucleotide edit's own coordinates fall in; it anchors
// the synonymous case, where refAA and altAA are identical strings and
// a diff has nothing to locate.
func diffProtein(refAA, altAA string, inFrame bool, editCodon int) (hgvsast.Location, hgvsast.Edit) {
	prefix := commonPrefixLen(refAA, altAA)

	refStop := strings.IndexByte(refAA, '*')
	refEff := refAA
	if refStop >= 0 {
		refEff = refAA[:refStop+1]
	}
	altStop := strings.IndexByte(altAA, '*')
	altEff := altAA
	if altStop >= 0 {
		altEff = altAA[:altStop+1]
	}

	if refEff == altEff {
		// No amino-acid-visible change anywhere a stop could occur: the
		// edit is synonymous. Report it at the codon the nucleotide edit
		// itself landed in, not at wherever refAA and altAA first agree
		// (they're identical strings, so that would always land past the
		// last residue).
		pos := editCodon
		if pos >= len(refAA) {
			pos = len(refAA) - 1
		}
		if pos < 0 {
			pos = 0
		}
		aa := byte('X')
		if pos < len(refAA) {
			aa = refAA[pos]
		}
		p := coord.ProteinPos(pos).ToHgvs()
		loc := hgvsast.Location{Start: hgvsast.Pos{Protein: p, ProteinAa: aa}}
		return loc, hgvsast.Edit{Kind: hgvsast.EditIdentity, Ref: string(aa)}
	}

	if !inFrame {
		return frameshiftDescription(refAA, altAA, prefix)
	}

	suffix := commonSuffixLen(refAA[prefix:], altAA[prefix:])
	refDiff := refAA[prefix : len(refAA)-suffix]
	altDiff := altAA[prefix : len(altAA)-suffix]

	switch {
	case len(refDiff) > 0 && len(altDiff) == 0:
		return inFrameDeletion(refAA, prefix, refDiff)
	case len(refDiff) == 0 && len(altDiff) > 0:
		return inFrameInsertion(refAA, prefix, altDiff)
	case len(refDiff) == 1 && len(altDiff) == 1:
		return singleCodonChange(refAA, prefix, refDiff[0], altDiff[0])
	default:
		return delinsDescription(refAA, prefix, refDiff, altDiff)
	}
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

func aaPos(aa string, idx int) hgvsast.Pos {
	p := coord.ProteinPos(idx).ToHgvs()
	var residue byte = 'X'
	if idx >= 0 && idx < len(aa) {
		residue = aa[idx]
	}
	return hgvsast.Pos{Protein: p, ProteinAa: residue}
}

func singleCodonChange(refAA string, idx int, ref, alt byte) (hgvsast.Location, hgvsast.Edit) {
	loc := hgvsast.Location{Start: aaPos(refAA, idx)}
	if alt == '*' {
		return loc, hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: string(ref), Alt: "*"}
	}
	return loc, hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: string(ref), Alt: string(alt)}
}

func inFrameDeletion(refAA string, prefix int, refDiff string) (hgvsast.Location, hgvsast.Edit) {
	loc := hgvsast.Location{Start: aaPos(refAA, prefix)}
	if len(refDiff) > 1 {
		loc.End = aaPos(refAA, prefix+len(refDiff)-1)
		loc.IsRange = true
	}
	return loc, hgvsast.Edit{Kind: hgvsast.EditDeletion}
}

func inFrameInsertion(refAA string, prefix int, altDiff string) (hgvsast.Location, hgvsast.Edit) {
	// A duplication reads identically to an insertion whose inserted
	// residues equal the residues immediately preceding the insertion
	// point in the reference.
	n := len(altDiff)
	if prefix-n >= 0 && refAA[prefix-n:prefix] == altDiff {
		loc := hgvsast.Location{Start: aaPos(refAA, prefix-n)}
		if n > 1 {
			loc.End = aaPos(refAA, prefix-1)
			loc.IsRange = true
		}
		return loc, hgvsast.Edit{Kind: hgvsast.EditDuplication}
	}
	loc := hgvsast.Location{
		Start:   aaPos(refAA, prefix-1),
		End:     aaPos(refAA, prefix),
		IsRange: true,
	}
	return loc, hgvsast.Edit{Kind: hgvsast.EditInsertion, Seq: altDiff}
}

func delinsDescription(refAA string, prefix int, refDiff, altDiff string) (hgvsast.Location, hgvsast.Edit) {
	loc := hgvsast.Location{Start: aaPos(refAA, prefix)}
	if len(refDiff) > 1 {
		loc.End = aaPos(refAA, prefix+len(refDiff)-1)
		loc.IsRange = true
	}
	return loc, hgvsast.Edit{Kind: hgvsast.EditDelins, Seq: altDiff}
}

func frameshiftDescription(refAA, altAA string, prefix int) (hgvsast.Location, hgvsast.Edit) {
	loc := hgvsast.Location{Start: aaPos(refAA, prefix)}
	var fsAa byte = '*'
	if prefix < len(altAA) {
		fsAa = altAA[prefix]
	}
	stopIdx := strings.IndexByte(altAA[prefix:], '*')
	edit := hgvsast.Edit{Kind: hgvsast.EditProteinFs, FsAa: fsAa}
	if stopIdx >= 0 {
		edit.FsTerDist = stopIdx + 1
	} else {
		edit.FsUnknown = true
	}
	return loc, edit
}
