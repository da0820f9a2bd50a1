// Package mapper implements the coordinate transforms between genomic,
// coding/transcript, and protein space: g<->c position conversion,
// c->p translation, and 3' shift normalization.
package mapper

import (
	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/transcript"
)

// toTranscriptPos converts an exonic HgvsTranscriptPos to its dense
// TranscriptPos. Only valid when p is not intronic; callers must anchor
// an intronic position to its flanking exonic position first.
func toTranscriptPos(p coord.HgvsTranscriptPos, t *transcript.Transcript) coord.TranscriptPos {
	if !t.IsProteinCoding() {
		return coord.TranscriptPos(p.Base - 1)
	}
	switch p.Region {
	case coord.Region5UTR:
		return t.CDSStart + coord.TranscriptPos(p.Base)
	case coord.Region3UTR:
		return t.CDSEnd + coord.TranscriptPos(p.Base)
	default:
		return t.CDSStart + coord.TranscriptPos(p.Base-1)
	}
}

// fromTranscriptPos converts a dense TranscriptPos back to its exonic
// HgvsTranscriptPos, honoring CDS/UTR boundaries on a coding transcript
// and numbering densely from 1 on a non-coding one.
func fromTranscriptPos(tp coord.TranscriptPos, t *transcript.Transcript) coord.HgvsTranscriptPos {
	if !t.IsProteinCoding() {
		return coord.HgvsTranscriptPos{Base: int64(tp) + 1, Region: coord.RegionCDS}
	}
	switch {
	case tp < t.CDSStart:
		return coord.HgvsTranscriptPos{Base: int64(tp - t.CDSStart), Region: coord.Region5UTR}
	case tp > t.CDSEnd:
		return coord.HgvsTranscriptPos{Base: int64(tp - t.CDSEnd), Region: coord.Region3UTR}
	default:
		return coord.HgvsTranscriptPos{Base: int64(tp-t.CDSStart) + 1, Region: coord.RegionCDS}
	}
}

// cToGPos maps a single c./n. position to its genomic position.
func cToGPos(p coord.HgvsTranscriptPos, t *transcript.Transcript) (coord.GenomicPos, error) {
	if !p.IsIntronic() {
		tp := toTranscriptPos(p, t)
		exon := t.ExonAtTranscriptPos(tp)
		if exon == nil {
			return 0, &hgvserr.CoordinateError{Reason: "position falls outside every exon"}
		}
		return t.GenomicAt(exon, tp), nil
	}

	anchor := p
	anchor.IntronOffset = 0
	tp0 := toTranscriptPos(anchor, t)
	exon := t.ExonAtTranscriptPos(tp0)
	if exon == nil {
		return 0, &hgvserr.CoordinateError{Reason: "intron offset anchored to a non-exon-boundary position"}
	}
	anchorGenomic := t.GenomicAt(exon, tp0)
	if t.Strand == transcript.Plus {
		return anchorGenomic + coord.GenomicPos(p.IntronOffset), nil
	}
	return anchorGenomic - coord.GenomicPos(p.IntronOffset), nil
}

// gToCPos maps a single genomic position to its c./n. position on t.
func gToCPos(g coord.GenomicPos, t *transcript.Transcript) (coord.HgvsTranscriptPos, error) {
	if exon := t.ExonAtGenomicPos(g); exon != nil {
		tp := t.TranscriptAt(exon, g)
		return fromTranscriptPos(tp, t), nil
	}

	exon, ok := t.NearestExonBoundary(g)
	if !ok {
		return coord.HgvsTranscriptPos{}, &hgvserr.MappingError{Reason: "genomic position not covered by any exon of this transcript"}
	}

	var anchorGenomic coord.GenomicPos
	var offsetGenomic int64
	switch {
	case g < exon.ReferenceStart:
		anchorGenomic = exon.ReferenceStart
		offsetGenomic = int64(g - exon.ReferenceStart)
	case g > exon.ReferenceEnd:
		anchorGenomic = exon.ReferenceEnd
		offsetGenomic = int64(g - exon.ReferenceEnd)
	default:
		// Shouldn't happen: ExonAtGenomicPos already covers this case.
		anchorGenomic = g
	}

	anchorTp := t.TranscriptAt(exon, anchorGenomic)
	hp := fromTranscriptPos(anchorTp, t)
	if t.Strand == transcript.Plus {
		hp.IntronOffset = offsetGenomic
	} else {
		hp.IntronOffset = -offsetGenomic
	}
	return hp, nil
}
