// Package hgvsfmt renders a Variant back into its canonical HGVS
// string, the deterministic inverse of internal/hgvsparse.
package hgvsfmt

import (
	"strconv"
	"strings"

	"github.com/hgvsgo/hgvscore/internal/aacode"
	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
)

// Format renders v as a canonical HGVS string, e.g.
// "NM_000051.3:c.123A>G". Amino acids are always rendered in
// three-letter form regardless of how they were parsed.
func Format(v *hgvsast.Variant) string {
	var b strings.Builder
	b.WriteString(v.Accession)
	if v.ReferenceAc != "" {
		b.WriteByte(':')
		b.WriteString(v.ReferenceAc)
	}
	b.WriteByte(':')
	b.WriteByte(byte(v.Kind))
	b.WriteByte('.')

	if v.Kind == hgvsast.KindProtein {
		if v.UncertainWhole {
			b.WriteByte('(')
		}
		formatProteinBody(&b, v)
		if v.UncertainWhole {
			b.WriteByte(')')
		}
		return b.String()
	}

	formatLocation(&b, v.Kind, v.Location)
	formatEditNA(&b, v.Edit)
	return b.String()
}

func formatLocation(b *strings.Builder, kind hgvsast.Kind, loc hgvsast.Location) {
	uncertain := loc.StartUncertain && loc.EndUncertain
	if uncertain {
		b.WriteByte('(')
	}
	formatPos(b, kind, loc.Start)
	if loc.IsRange {
		b.WriteByte('_')
		formatPos(b, kind, loc.End)
	}
	if uncertain {
		b.WriteByte(')')
	}
}

func formatPos(b *strings.Builder, kind hgvsast.Kind, p hgvsast.Pos) {
	switch kind {
	case hgvsast.KindGenomic, hgvsast.KindMitochondrial:
		b.WriteString(strconv.FormatInt(int64(p.Genomic), 10))
	case hgvsast.KindCoding, hgvsast.KindNoncoding, hgvsast.KindRNA:
		b.WriteString(p.Transcript.String())
	}
}

func formatEditNA(b *strings.Builder, e hgvsast.Edit) {
	switch e.Kind {
	case hgvsast.EditIdentity:
		b.WriteByte('=')
	case hgvsast.EditSubstitution:
		b.WriteString(e.Ref)
		b.WriteByte('>')
		b.WriteString(e.Alt)
	case hgvsast.EditDeletion:
		b.WriteString("del")
		b.WriteString(e.Seq)
	case hgvsast.EditDuplication:
		b.WriteString("dup")
		b.WriteString(e.Seq)
	case hgvsast.EditInsertion:
		b.WriteString("ins")
		b.WriteString(e.Seq)
	case hgvsast.EditInversion:
		b.WriteString("inv")
	case hgvsast.EditDelins:
		b.WriteString("delins")
		b.WriteString(e.Seq)
	case hgvsast.EditRepeat:
		b.WriteString(e.RepeatUnit)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.RepeatCount))
		b.WriteByte(']')
	}
}

func formatProteinBody(b *strings.Builder, v *hgvsast.Variant) {
	formatAAPos(b, v.Location.Start)
	if v.Location.IsRange {
		b.WriteByte('_')
		formatAAPos(b, v.Location.End)
	}

	e := v.Edit
	switch e.Kind {
	case hgvsast.EditIdentity:
		b.WriteByte('=')
	case hgvsast.EditDeletion:
		b.WriteString("del")
	case hgvsast.EditDuplication:
		b.WriteString("dup")
	case hgvsast.EditInsertion:
		b.WriteString("ins")
		b.WriteString(threeLetterRun(e.Seq))
	case hgvsast.EditDelins:
		b.WriteString("delins")
		b.WriteString(threeLetterRun(e.Seq))
	case hgvsast.EditSubstitution:
		b.WriteString(aaThree(e.Alt[0]))
	case hgvsast.EditProteinFs:
		b.WriteString(aaThree(e.FsAa))
		b.WriteString("fs")
		if e.FsUnknown {
			b.WriteString("Ter?")
		} else if e.FsTerDist > 0 {
			b.WriteString("Ter")
			b.WriteString(strconv.Itoa(e.FsTerDist))
		}
	case hgvsast.EditProteinExt:
		b.WriteString(aaThree(e.ExtAa))
		b.WriteString("ext")
		if e.ExtUnknownLen {
			b.WriteString("Ter?")
		} else if e.ExtLen > 0 {
			b.WriteString("Ter")
			b.WriteString(strconv.Itoa(e.ExtLen))
		}
	}
}

func formatAAPos(b *strings.Builder, p hgvsast.Pos) {
	b.WriteString(aaThree(p.ProteinAa))
	b.WriteString(strconv.FormatInt(int64(p.Protein), 10))
}

// aaThree converts a single-letter amino acid code to its three-letter
// display form, falling back to "Xaa" for an unrecognized code.
func aaThree(aa byte) string {
	if three, ok := aacode.ToThree(aa); ok {
		return three
	}
	return "Xaa"
}

// threeLetterRun converts a run of single-letter amino acid codes to
// concatenated three-letter codes (e.g. "AL" -> "AlaLeu").
func threeLetterRun(aas string) string {
	var b strings.Builder
	b.Grow(len(aas) * 3)
	for i := 0; i < len(aas); i++ {
		b.WriteString(aaThree(aas[i]))
	}
	return b.String()
}

// FormatPosition renders a single HgvsTranscriptPos the way it appears
// inline in c./n. notation; exposed for callers (the mapper, mainly)
// that need to report a position without a full Variant.
func FormatPosition(p coord.HgvsTranscriptPos) string { return p.String() }
