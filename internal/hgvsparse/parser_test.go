package hgvsparse

import (
	"testing"

	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
)

func TestParseSubstitution(t *testing.T) {
	v, err := Parse("NM_000051.3:c.123A>G")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Accession != "NM_000051.3" {
		t.Errorf("Accession = %q, want NM_000051.3", v.Accession)
	}
	if v.Kind != hgvsast.KindCoding {
		t.Errorf("Kind = %v, want c", v.Kind)
	}
	wantPos := coord.HgvsTranscriptPos{Base: 123, Region: coord.RegionCDS}
	if v.Location.Start.Transcript != wantPos {
		t.Errorf("Location.Start.Transcript = %+v, want %+v", v.Location.Start.Transcript, wantPos)
	}
	if v.Edit.Kind != hgvsast.EditSubstitution || v.Edit.Ref != "A" || v.Edit.Alt != "G" {
		t.Errorf("Edit = %+v, want Substitution{A,G}", v.Edit)
	}
}

func TestParseGenomicRangeDeletion(t *testing.T) {
	v, err := Parse("NC_000001.11:g.10_20del")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Kind != hgvsast.KindGenomic {
		t.Fatalf("Kind = %v, want g", v.Kind)
	}
	if !v.Location.IsRange {
		t.Error("expected range location")
	}
	if v.Location.Start.Genomic != 10 || v.Location.End.Genomic != 20 {
		t.Errorf("range = [%d, %d], want [10, 20]", v.Location.Start.Genomic, v.Location.End.Genomic)
	}
	if v.Edit.Kind != hgvsast.EditDeletion {
		t.Errorf("Edit.Kind = %v, want Deletion", v.Edit.Kind)
	}
}

func TestParseDuplicationWithExplicitSeq(t *testing.T) {
	v, err := Parse("NM_X:c.4_6dupACT")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditDuplication || v.Edit.Seq != "ACT" {
		t.Errorf("Edit = %+v, want Duplication{Seq: ACT}", v.Edit)
	}
}

func TestParseInsertion(t *testing.T) {
	v, err := Parse("NM_X:c.35_36insT")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditInsertion || v.Edit.Seq != "T" {
		t.Errorf("Edit = %+v, want Insertion{Seq: T}", v.Edit)
	}
}

func TestParseInversionAndDelins(t *testing.T) {
	v, err := Parse("NM_X:c.10_20inv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditInversion {
		t.Errorf("Edit.Kind = %v, want Inversion", v.Edit.Kind)
	}

	v, err = Parse("NM_X:c.10_12delinsAG")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditDelins || v.Edit.Seq != "AG" {
		t.Errorf("Edit = %+v, want Delins{Seq: AG}", v.Edit)
	}
}

func TestParseRepeat(t *testing.T) {
	v, err := Parse("NM_X:c.101(CAG)[23]")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditRepeat || v.Edit.RepeatUnit != "CAG" || v.Edit.RepeatCount != 23 {
		t.Errorf("Edit = %+v, want Repeat{CAG, 23}", v.Edit)
	}
}

func TestParseIdentity(t *testing.T) {
	v, err := Parse("NM_X:c.123=")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditIdentity {
		t.Errorf("Edit.Kind = %v, want Identity", v.Edit.Kind)
	}
}

func TestParseUTRAndIntronPositions(t *testing.T) {
	v, err := Parse("NM_X:c.-14G>A")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Location.Start.Transcript.Region != coord.Region5UTR || v.Location.Start.Transcript.Base != -14 {
		t.Errorf("position = %+v, want 5'UTR -14", v.Location.Start.Transcript)
	}

	v, err = Parse("NM_X:c.88+1G>T")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Location.Start.Transcript.Base != 88 || v.Location.Start.Transcript.IntronOffset != 1 {
		t.Errorf("position = %+v, want 88+1", v.Location.Start.Transcript)
	}
}

func TestParseProteinMissense(t *testing.T) {
	v, err := Parse("NP_000042.3:p.(Lys41Arg)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !v.UncertainWhole {
		t.Error("expected UncertainWhole to be true for p.(...)")
	}
	if v.Location.Start.Protein != 41 || v.Location.Start.ProteinAa != 'K' {
		t.Errorf("location = %+v, want pos 41 Lys", v.Location.Start)
	}
	if v.Edit.Kind != hgvsast.EditSubstitution || v.Edit.Alt != "R" {
		t.Errorf("Edit = %+v, want Substitution to Arg", v.Edit)
	}
}

func TestParseProteinFrameshift(t *testing.T) {
	v, err := Parse("NP_X:p.Arg97ProfsTer23")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditProteinFs {
		t.Fatalf("Edit.Kind = %v, want ProteinFs", v.Edit.Kind)
	}
	if v.Edit.FsAa != 'P' || v.Edit.FsTerDist != 23 {
		t.Errorf("Edit = %+v, want FsAa=P, FsTerDist=23", v.Edit)
	}
}

func TestParseProteinDeletionAndIdentity(t *testing.T) {
	v, err := Parse("NP_X:p.Gln4del")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditDeletion {
		t.Errorf("Edit.Kind = %v, want Deletion", v.Edit.Kind)
	}

	v, err = Parse("NP_X:p.Gln4=")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Edit.Kind != hgvsast.EditIdentity {
		t.Errorf("Edit.Kind = %v, want Identity", v.Edit.Kind)
	}
}

func TestParseRejectsIntronOffsetOnGenomic(t *testing.T) {
	_, err := Parse("NC_000001.11:g.100+5A>G")
	if err == nil {
		t.Fatal("expected ParseError for intron offset on a genomic position")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != CoordinateMismatch {
		t.Errorf("Kind = %v, want CoordinateMismatch", pe.Kind)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"NM_X",
		"NM_X:c.",
		"NM_X:c.123",
		"NM_X:c.123Z>G",
		"NM_X:c.123A>",
	}
	for _, in := range tests {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestParseReferenceAccession(t *testing.T) {
	v, err := Parse("GENE1:NM_000051.3:c.123A>G")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Accession != "GENE1" || v.ReferenceAc != "NM_000051.3" {
		t.Errorf("Accession = %q, ReferenceAc = %q", v.Accession, v.ReferenceAc)
	}
}
