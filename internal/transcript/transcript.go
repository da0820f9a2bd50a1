// Package transcript models a transcript's exon/CDS structure and
// provides an indexed genomic<->transcript position lookup.
package transcript

import (
	"sort"

	"github.com/hgvsgo/hgvscore/internal/coord"
)

// Strand is the orientation of a transcript relative to the reference
// genome's plus strand.
type Strand int8

const (
	Plus  Strand = 1
	Minus Strand = -1
)

// Exon is one exon of a transcript. TranscriptStart is inclusive and
// TranscriptEnd is exclusive in dense transcript coordinates;
// ReferenceStart/ReferenceEnd are both inclusive genomic coordinates,
// always given with ReferenceStart <= ReferenceEnd regardless of
// strand (strand-aware traversal happens in the mapper, not here).
type Exon struct {
	TranscriptStart coord.TranscriptPos
	TranscriptEnd   coord.TranscriptPos
	ReferenceStart  coord.GenomicPos
	ReferenceEnd    coord.GenomicPos
}

// Len reports the exon's length in bases.
func (e Exon) Len() int64 { return int64(e.TranscriptEnd - e.TranscriptStart) }

// Transcript is the portion of §3.3's transcript model the mapper
// needs: identity, strand, CDS bounds, and an ordered, contiguous exon
// list. Exons are ordered by ascending TranscriptStart; genomic order
// depends on Strand.
type Transcript struct {
	TranscriptAc string
	ReferenceAc  string
	ProteinAc    string
	Strand       Strand

	// CDSStart/CDSEnd are 0-based inclusive TranscriptPos bounds of the
	// first base of the start codon and the last base of the stop
	// codon. Both are -1 for a non-coding transcript.
	CDSStart coord.TranscriptPos
	CDSEnd   coord.TranscriptPos

	Exons []Exon

	// exonStarts mirrors Exons[i].TranscriptStart, kept parallel for
	// sort.Search lookups without an extra allocation per query.
	exonStarts []int64
}

// New builds a Transcript and its position index from an ordered exon
// list. Exons must already be sorted by TranscriptStart and must cover
// the transcript contiguously (Exons[i].TranscriptEnd ==
// Exons[i+1].TranscriptStart); New does not re-sort or validate beyond
// building the index, since reordering would silently hide a malformed
// DataProvider response.
func New(transcriptAc, referenceAc, proteinAc string, strand Strand, cdsStart, cdsEnd coord.TranscriptPos, exons []Exon) *Transcript {
	starts := make([]int64, len(exons))
	for i, e := range exons {
		starts[i] = int64(e.TranscriptStart)
	}
	return &Transcript{
		TranscriptAc: transcriptAc,
		ReferenceAc:  referenceAc,
		ProteinAc:    proteinAc,
		Strand:       strand,
		CDSStart:     cdsStart,
		CDSEnd:       cdsEnd,
		Exons:        exons,
		exonStarts:   starts,
	}
}

// IsProteinCoding reports whether the transcript has a CDS.
func (t *Transcript) IsProteinCoding() bool {
	return t.CDSStart >= 0 && t.CDSEnd >= 0
}

// Length returns the transcript's total length in bases.
func (t *Transcript) Length() int64 {
	if len(t.Exons) == 0 {
		return 0
	}
	return int64(t.Exons[len(t.Exons)-1].TranscriptEnd)
}

// ExonAtTranscriptPos returns the exon containing p in O(log n), or nil
// if p falls outside every exon.
func (t *Transcript) ExonAtTranscriptPos(p coord.TranscriptPos) *Exon {
	pi := int64(p)
	// Rightmost exon with TranscriptStart <= p.
	i := sort.Search(len(t.exonStarts), func(i int) bool {
		return t.exonStarts[i] > pi
	}) - 1
	if i < 0 {
		return nil
	}
	e := &t.Exons[i]
	if pi >= int64(e.TranscriptStart) && pi < int64(e.TranscriptEnd) {
		return e
	}
	return nil
}

// ExonAtGenomicPos returns the exon containing genomic position g, or
// nil if g falls in an intron or outside the transcript. Exons are
// scanned linearly since a transcript has at most a few hundred exons
// and genomic order depends on strand, unlike transcript order.
func (t *Transcript) ExonAtGenomicPos(g coord.GenomicPos) *Exon {
	for i := range t.Exons {
		e := &t.Exons[i]
		if g >= e.ReferenceStart && g <= e.ReferenceEnd {
			return e
		}
	}
	return nil
}

// GenomicAt converts a dense transcript position known to lie within e
// to its genomic position, honoring strand.
func (t *Transcript) GenomicAt(e *Exon, p coord.TranscriptPos) coord.GenomicPos {
	offset := int64(p - e.TranscriptStart)
	if t.Strand == Plus {
		return e.ReferenceStart + coord.GenomicPos(offset)
	}
	return e.ReferenceEnd - coord.GenomicPos(offset)
}

// TranscriptAt converts a genomic position known to lie within e to its
// dense transcript position, honoring strand.
func (t *Transcript) TranscriptAt(e *Exon, g coord.GenomicPos) coord.TranscriptPos {
	if t.Strand == Plus {
		return e.TranscriptStart + coord.TranscriptPos(g-e.ReferenceStart)
	}
	return e.TranscriptStart + coord.TranscriptPos(e.ReferenceEnd-g)
}

// NearestExonBoundary returns the exon whose reference span is closest
// to g, on either side of it, used to anchor an intronic c. position
// (`88+1`, `124-3`) before applying the signed offset. ok is false if
// g is outside the transcript's exon span entirely.
func (t *Transcript) NearestExonBoundary(g coord.GenomicPos) (exon *Exon, ok bool) {
	var best *Exon
	var bestDist int64 = -1
	var spanLo, spanHi coord.GenomicPos
	for i := range t.Exons {
		e := &t.Exons[i]
		if i == 0 || e.ReferenceStart < spanLo {
			spanLo = e.ReferenceStart
		}
		if i == 0 || e.ReferenceEnd > spanHi {
			spanHi = e.ReferenceEnd
		}
		var dist int64
		switch {
		case g < e.ReferenceStart:
			dist = int64(e.ReferenceStart - g)
		case g > e.ReferenceEnd:
			dist = int64(g - e.ReferenceEnd)
		default:
			return e, true
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = e
		}
	}
	if best == nil || g < spanLo || g > spanHi {
		return nil, false
	}
	return best, true
}
