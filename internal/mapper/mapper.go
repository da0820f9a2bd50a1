package mapper

import (
	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/seqops"
	"github.com/hgvsgo/hgvscore/internal/transcript"
)

// CToG maps a c. or n. Variant to its g. representation on t's reference
// sequence. Edit sequences are reverse-complemented when t is on the
// minus strand, so the emitted edit is always read on the plus strand.
func CToG(v *hgvsast.Variant, t *transcript.Transcript) (*hgvsast.Variant, error) {
	if v.Kind != hgvsast.KindCoding && v.Kind != hgvsast.KindNoncoding {
		return nil, &hgvserr.MappingError{Reason: "c_to_g requires a c. or n. variant"}
	}

	startG, err := cToGPos(v.Location.Start.Transcript, t)
	if err != nil {
		return nil, err
	}
	endG := startG
	if v.Location.IsRange {
		endG, err = cToGPos(v.Location.End.Transcript, t)
		if err != nil {
			return nil, err
		}
	}

	loc := hgvsast.Location{
		Start:          hgvsast.Pos{Genomic: startG.ToHgvs()},
		End:            hgvsast.Pos{Genomic: endG.ToHgvs()},
		IsRange:        v.Location.IsRange,
		StartUncertain: v.Location.StartUncertain,
		EndUncertain:   v.Location.EndUncertain,
	}
	if t.Strand == transcript.Minus {
		loc.Start, loc.End = loc.End, loc.Start
		loc.StartUncertain, loc.EndUncertain = v.Location.EndUncertain, v.Location.StartUncertain
	}

	out := &hgvsast.Variant{
		Accession:   t.ReferenceAc,
		ReferenceAc: "",
		Kind:        hgvsast.KindGenomic,
		Location:    loc,
		Edit:        mapEditStrand(v.Edit, t.Strand),
	}
	return out, nil
}

// GToC maps a g. Variant to its c./n. representation on t.
func GToC(v *hgvsast.Variant, t *transcript.Transcript) (*hgvsast.Variant, error) {
	if v.Kind != hgvsast.KindGenomic && v.Kind != hgvsast.KindMitochondrial {
		return nil, &hgvserr.MappingError{Reason: "g_to_c requires a g. or m. variant"}
	}

	startG := v.Location.Start.Genomic.ToZeroBased()
	endG := startG
	if v.Location.IsRange {
		endG = v.Location.End.Genomic.ToZeroBased()
	}

	startC, err := gToCPos(startG, t)
	if err != nil {
		return nil, err
	}
	endC := startC
	if v.Location.IsRange {
		endC, err = gToCPos(endG, t)
		if err != nil {
			return nil, err
		}
	}

	kind := hgvsast.KindCoding
	if !t.IsProteinCoding() {
		kind = hgvsast.KindNoncoding
	}

	loc := hgvsast.Location{
		Start:          hgvsast.Pos{Transcript: startC},
		End:            hgvsast.Pos{Transcript: endC},
		IsRange:        v.Location.IsRange,
		StartUncertain: v.Location.StartUncertain,
		EndUncertain:   v.Location.EndUncertain,
	}
	if t.Strand == transcript.Minus {
		loc.Start, loc.End = loc.End, loc.Start
		loc.StartUncertain, loc.EndUncertain = v.Location.EndUncertain, v.Location.StartUncertain
	}

	out := &hgvsast.Variant{
		Accession:   t.TranscriptAc,
		ReferenceAc: "",
		Kind:        kind,
		Location:    loc,
		Edit:        mapEditStrand(v.Edit, t.Strand),
	}
	return out, nil
}

// mapEditStrand reverse-complements the nucleic-acid sequences an edit
// carries when crossing a minus-strand transcript, so substitution,
// insertion, deletion, duplication, delins, and repeat edits all read
// correctly on whichever axis they land on.
func mapEditStrand(e hgvsast.Edit, strand transcript.Strand) hgvsast.Edit {
	if strand == transcript.Plus {
		return e
	}
	out := e
	out.Ref = seqops.ReverseComplement(e.Ref)
	out.Alt = seqops.ReverseComplement(e.Alt)
	out.Seq = seqops.ReverseComplement(e.Seq)
	out.RepeatUnit = seqops.ReverseComplement(e.RepeatUnit)
	return out
}

// spanBases returns the 0-based inclusive genomic span [lo, hi] an
// edit's location covers, used by both translation and normalization to
// fetch the reference window around the edit.
func spanBases(loc hgvsast.Location) (lo, hi coord.GenomicPos) {
	lo = loc.Start.Genomic.ToZeroBased()
	hi = lo
	if loc.IsRange {
		hi = loc.End.Genomic.ToZeroBased()
	}
	return lo, hi
}
