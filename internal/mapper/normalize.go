package mapper

import (
	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/transcript"
)

// DefaultWindow is the number of flanking bases fetched on either side
// of an edit for 3' shift normalization and equivalence projection when
// the caller does not override it. The source left this window size
// unspecified; 50 bases is enough to cover any repeat HGVS practice
// considers plausible while staying cheap to fetch.
const DefaultWindow = 50

// Normalize shifts a nucleic-acid Variant to its 3'-most equivalent
// representation within a repetitive run, per §4.3.3. Substitutions and
// identity/uncertain edits are not shiftable and are returned unchanged.
// For c./n. variants the window is drawn from the transcript's own
// dense sequence (3' relative to the transcript); for g./m. the window
// is drawn from the accession's sequence directly (3' relative to the
// plus strand). window <= 0 selects DefaultWindow.
func Normalize(v *hgvsast.Variant, provider dataprovider.Provider, window int) (*hgvsast.Variant, error) {
	if !v.Edit.IsNormalizable() {
		return v, nil
	}
	if window <= 0 {
		window = DefaultWindow
	}

	switch v.Kind {
	case hgvsast.KindGenomic, hgvsast.KindMitochondrial:
		return normalizeGenomic(v, provider, window)
	case hgvsast.KindCoding, hgvsast.KindNoncoding:
		return normalizeTranscript(v, provider, window)
	default:
		return nil, &hgvserr.MappingError{Reason: "normalize only applies to nucleic-acid variants"}
	}
}

func normalizeGenomic(v *hgvsast.Variant, provider dataprovider.Provider, window int) (*hgvsast.Variant, error) {
	lo, hi := spanBases(v.Location)
	fetchLo := int64(lo) - int64(window)
	if fetchLo < 0 {
		fetchLo = 0
	}
	fetchHi := int64(hi) + int64(window) + 1
	seq, err := provider.GetSeq(v.Accession, fetchLo, fetchHi, dataprovider.NucleicAcid)
	if err != nil {
		return nil, err
	}

	start := int(int64(lo) - fetchLo)
	end := int(int64(hi) - fetchLo)
	shiftedStart, shiftedEnd, edit := shiftThreePrime(seq, start, end, v.Edit)

	out := cloneVariant(v)
	out.Edit = edit
	newLo := coord.GenomicPos(int64(shiftedStart) + fetchLo)
	newHi := coord.GenomicPos(int64(shiftedEnd) + fetchLo)
	out.Location.Start.Genomic = newLo.ToHgvs()
	out.Location.End.Genomic = newHi.ToHgvs()
	return out, nil
}

func normalizeTranscript(v *hgvsast.Variant, provider dataprovider.Provider, window int) (*hgvsast.Variant, error) {
	t, err := provider.GetTranscript(v.Accession, v.ReferenceAc)
	if err != nil {
		return nil, err
	}
	if v.Location.Start.Transcript.IsIntronic() || (v.Location.IsRange && v.Location.End.Transcript.IsIntronic()) {
		return nil, &hgvserr.MappingError{Reason: "normalize does not shift intronic positions"}
	}

	lo := int(toTranscriptPos(v.Location.Start.Transcript, t))
	hi := lo
	if v.Location.IsRange {
		hi = int(toTranscriptPos(v.Location.End.Transcript, t))
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	fetchLo := lo - window
	if fetchLo < 0 {
		fetchLo = 0
	}
	fetchHi := hi + window + 1
	if txLen := int(t.Length()); fetchHi > txLen {
		fetchHi = txLen
	}
	seq, err := provider.GetSeq(t.TranscriptAc, int64(fetchLo), int64(fetchHi), dataprovider.NucleicAcid)
	if err != nil {
		return nil, err
	}

	start := lo - fetchLo
	end := hi - fetchLo
	shiftedStart, shiftedEnd, edit := shiftThreePrime(seq, start, end, v.Edit)

	out := cloneVariant(v)
	out.Edit = edit
	out.Location.Start.Transcript = fromTranscriptPos(coord.TranscriptPos(shiftedStart+fetchLo), t)
	out.Location.End.Transcript = fromTranscriptPos(coord.TranscriptPos(shiftedEnd+fetchLo), t)
	return out, nil
}

func cloneVariant(v *hgvsast.Variant) *hgvsast.Variant {
	out := *v
	return &out
}

// shiftThreePrime slides an indel edit anchored at [start, end] (0-based
// inclusive, within window) as far toward the 3' end of window as
// possible while leaving the post-edit sequence identical, per §4.3.3.
// It applies the standard single-base indel normalization rule: a
// deleted or inserted run can move one base toward 3' whenever the base
// being uncovered on that side equals the base being covered up on the
// other, repeated until no further move is equivalent. Delins and
// inversion have no well-defined shift and are returned unchanged.
func shiftThreePrime(window string, start, end int, e hgvsast.Edit) (int, int, hgvsast.Edit) {
	switch e.Kind {
	case hgvsast.EditDeletion:
		for end+1 < len(window) && window[end+1] == window[start] {
			start++
			end++
		}
		out := e
		if e.Seq != "" {
			out.Seq = window[start : end+1]
		}
		return start, end, out

	case hgvsast.EditDuplication:
		unit := e.Seq
		if unit == "" {
			unit = window[start : end+1]
		}
		anchor := end
		for anchor+1 < len(window) && window[anchor+1] == unit[0] {
			unit = unit[1:] + unit[:1]
			anchor++
		}
		newEnd := anchor
		newStart := anchor - len(unit) + 1
		out := e
		if e.Seq != "" {
			out.Seq = unit
		}
		return newStart, newEnd, out

	case hgvsast.EditInsertion:
		unit := e.Seq
		anchor := start
		for anchor+1 < len(window) && window[anchor+1] == unit[0] {
			unit = unit[1:] + unit[:1]
			anchor++
		}
		out := e
		out.Seq = unit
		return anchor, anchor + 1, out

	case hgvsast.EditRepeat:
		unit := e.RepeatUnit
		period := len(unit)
		if period == 0 {
			return start, end, e
		}
		for end+period < len(window) && window[end+1:end+1+period] == unit {
			start += period
			end += period
		}
		return start, end, e

	default:
		return start, end, e
	}
}
