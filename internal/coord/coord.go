// Package coord defines the tagged position types used across the three
// HGVS coordinate systems (genomic, transcript, protein) in both their
// dense 0-based form and their 1-based HGVS display form.
//
// Each type is a distinct named integer so that the compiler rejects any
// attempt to mix positions from different coordinate spaces; there is no
// implicit conversion between them.
package coord

import "fmt"

// GenomicPos is a 0-based inclusive position on a chromosome.
type GenomicPos int64

// TranscriptPos is a 0-based inclusive position on a transcript, dense
// from transcription start.
type TranscriptPos int64

// ProteinPos is a 0-based inclusive position on a protein, dense from the
// first residue.
type ProteinPos int64

// HgvsGenomicPos is a 1-based dense genomic position as displayed in
// g./m. notation.
type HgvsGenomicPos int64

// ToHgvs converts a 0-based GenomicPos to its 1-based HGVS display form.
func (p GenomicPos) ToHgvs() HgvsGenomicPos { return HgvsGenomicPos(p + 1) }

// ToZeroBased converts a 1-based HgvsGenomicPos back to GenomicPos.
func (p HgvsGenomicPos) ToZeroBased() GenomicPos { return GenomicPos(p - 1) }

func (p HgvsGenomicPos) String() string { return fmt.Sprintf("%d", int64(p)) }

// HgvsProteinPos is a 1-based dense protein position as displayed in
// p. notation.
type HgvsProteinPos int64

// ToHgvs converts a 0-based ProteinPos to its 1-based HGVS display form.
func (p ProteinPos) ToHgvs() HgvsProteinPos { return HgvsProteinPos(p + 1) }

// ToZeroBased converts a 1-based HgvsProteinPos back to ProteinPos.
func (p HgvsProteinPos) ToZeroBased() ProteinPos { return ProteinPos(p - 1) }

func (p HgvsProteinPos) String() string { return fmt.Sprintf("%d", int64(p)) }

// CDSRegion identifies which part of a transcript a HgvsTranscriptPos
// anchors into: the CDS itself, or one of the two untranslated regions.
type CDSRegion int8

const (
	// RegionCDS is the coding sequence, A of ATG through the last base
	// of the stop codon.
	RegionCDS CDSRegion = iota
	// Region5UTR is the 5' untranslated region; positions count down to
	// -1 immediately before the A of ATG.
	Region5UTR
	// Region3UTR is the 3' untranslated region; positions are prefixed
	// with '*' and count up from the base after the stop codon.
	Region3UTR
)

// HgvsTranscriptPos is a 1-based coding/transcript position as displayed
// in c. or n. notation. Base is the integer printed (negative in the
// 5'UTR, the magnitude after '*' in the 3'UTR, 1-based within the CDS
// otherwise). IntronOffset is non-zero for intronic positions (signed;
// its sign is the +/- printed after Base). Region records which side of
// the CDS Base is measured from; it is only meaningful when
// IntronOffset == 0 and also tags the anchor side for intronic offsets.
type HgvsTranscriptPos struct {
	Base         int64
	IntronOffset int64
	Region       CDSRegion
}

// IsIntronic reports whether the position falls in an intron.
func (p HgvsTranscriptPos) IsIntronic() bool { return p.IntronOffset != 0 }

// Succ returns the successor of p along the dense numbering of its
// region, applying the HGVS zero-skip rule: the successor of -1 (the
// last base of the 5'UTR) is 1 (the first base of the CDS), never 0.
// Position 0 is never representable by HgvsTranscriptPos.
func (p HgvsTranscriptPos) Succ() HgvsTranscriptPos {
	if p.IsIntronic() {
		return HgvsTranscriptPos{Base: p.Base, IntronOffset: p.IntronOffset + 1, Region: p.Region}
	}
	switch {
	case p.Region == Region5UTR && p.Base == -1:
		return HgvsTranscriptPos{Base: 1, Region: RegionCDS}
	default:
		return HgvsTranscriptPos{Base: p.Base + 1, Region: p.Region}
	}
}

// Pred returns the predecessor of p, the mirror of Succ: the predecessor
// of 1 (the A of ATG) is -1, never 0.
func (p HgvsTranscriptPos) Pred() HgvsTranscriptPos {
	if p.IsIntronic() {
		return HgvsTranscriptPos{Base: p.Base, IntronOffset: p.IntronOffset - 1, Region: p.Region}
	}
	switch {
	case p.Region == RegionCDS && p.Base == 1:
		return HgvsTranscriptPos{Base: -1, Region: Region5UTR}
	default:
		return HgvsTranscriptPos{Base: p.Base - 1, Region: p.Region}
	}
}

// String renders the position the way it appears in c./n. notation, e.g.
// "123", "-14", "*6", "88+1", "124-3".
func (p HgvsTranscriptPos) String() string {
	var base string
	switch p.Region {
	case Region5UTR:
		base = fmt.Sprintf("-%d", -p.Base)
	case Region3UTR:
		base = fmt.Sprintf("*%d", p.Base)
	default:
		base = fmt.Sprintf("%d", p.Base)
	}
	if p.IntronOffset == 0 {
		return base
	}
	if p.IntronOffset > 0 {
		return fmt.Sprintf("%s+%d", base, p.IntronOffset)
	}
	return fmt.Sprintf("%s%d", base, p.IntronOffset)
}

// Compare orders two HgvsTranscriptPos values along transcript direction
// (5' to 3'): negative if p sorts before q, zero if equal, positive if
// after. Region ordering is 5'UTR < CDS < 3'UTR; within a region, Base
// then IntronOffset order positions.
func (p HgvsTranscriptPos) Compare(q HgvsTranscriptPos) int {
	if p.Region != q.Region {
		// CDSRegion's values start at RegionCDS, so rank them in
		// transcript order instead of comparing them directly.
		rank := [...]int{RegionCDS: 1, Region5UTR: 0, Region3UTR: 2}
		return rank[p.Region] - rank[q.Region]
	}
	if p.Base != q.Base {
		if p.Base < q.Base {
			return -1
		}
		return 1
	}
	if p.IntronOffset != q.IntronOffset {
		if p.IntronOffset < q.IntronOffset {
			return -1
		}
		return 1
	}
	return 0
}
