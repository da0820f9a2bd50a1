package mapper

import (
	"strings"

	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/seqops"
)

// ApplyEdit rewrites the 0-based inclusive span [start, end] of seq
// according to e, returning the edited sequence. Exported for
// internal/equivalence, which projects a variant onto a reference
// window the same way CToP does before comparing two projections.
func ApplyEdit(seq string, start, end int, e hgvsast.Edit) (string, error) {
	return applyEdit(seq, start, end, e)
}

// applyEdit rewrites the 0-based inclusive span [start, end] of seq
// according to e, returning the edited sequence. start/end are
// interpreted per HGVS convention for the edit kind: for Insertion they
// are the two positions the inserted sequence falls between (the
// insertion lands immediately after start); for every other kind they
// bound the affected bases directly.
func applyEdit(seq string, start, end int, e hgvsast.Edit) (string, error) {
	if start < 0 || end >= len(seq) || start > end+1 {
		return "", &hgvserr.CoordinateError{Reason: "edit location outside sequence bounds"}
	}
	switch e.Kind {
	case hgvsast.EditIdentity, hgvsast.EditUncertain:
		return seq, nil
	case hgvsast.EditSubstitution:
		return seq[:start] + e.Alt + seq[end+1:], nil
	case hgvsast.EditDeletion:
		return seq[:start] + seq[end+1:], nil
	case hgvsast.EditInsertion:
		return seq[:start+1] + e.Seq + seq[start+1:], nil
	case hgvsast.EditDuplication:
		dup := e.Seq
		if dup == "" {
			dup = seq[start : end+1]
		}
		return seq[:end+1] + dup + seq[end+1:], nil
	case hgvsast.EditInversion:
		return seq[:start] + seqops.ReverseComplement(seq[start:end+1]) + seq[end+1:], nil
	case hgvsast.EditDelins:
		return seq[:start] + e.Seq + seq[end+1:], nil
	case hgvsast.EditRepeat:
		return seq[:start] + strings.Repeat(e.RepeatUnit, e.RepeatCount) + seq[end+1:], nil
	default:
		return "", &hgvserr.MappingError{Reason: "edit kind cannot be applied to a reference sequence"}
	}
}
