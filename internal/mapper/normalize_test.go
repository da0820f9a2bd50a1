package mapper

import (
	"testing"

	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/fixture"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
)

func TestNormalizeGenomicDeletionShiftsThreePrime(t *testing.T) {
	f := fixture.New()
	f.AddGenomicSeq("NC_NORM.1", "ACGTAAAAGT")

	v := &hgvsast.Variant{
		Accession: "NC_NORM.1",
		Kind:      hgvsast.KindGenomic,
		Location:  hgvsast.Location{Start: hgvsast.Pos{Genomic: 6}}, // 0-based 5, the second A of the run
		Edit:      hgvsast.Edit{Kind: hgvsast.EditDeletion, Seq: "A"},
	}
	out, err := Normalize(v, f, 3)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.Location.Start.Genomic != 8 {
		t.Errorf("Start.Genomic = %d, want 8 (the last A in the run)", out.Location.Start.Genomic)
	}
	if out.Location.End.Genomic != 8 {
		t.Errorf("End.Genomic = %d, want 8", out.Location.End.Genomic)
	}
	if out.Edit.Seq != "A" {
		t.Errorf("Edit.Seq = %q, want A", out.Edit.Seq)
	}
}

func TestNormalizeGenomicInsertionShiftsThreePrime(t *testing.T) {
	f := fixture.New()
	f.AddGenomicSeq("NC_NORM.2", "CAAAAG")

	v := &hgvsast.Variant{
		Accession: "NC_NORM.2",
		Kind:      hgvsast.KindGenomic,
		Location: hgvsast.Location{
			IsRange: true,
			Start:   hgvsast.Pos{Genomic: 1}, // 0-based 0
			End:     hgvsast.Pos{Genomic: 2}, // 0-based 1
		},
		Edit: hgvsast.Edit{Kind: hgvsast.EditInsertion, Seq: "A"},
	}
	out, err := Normalize(v, f, 4)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out.Location.Start.Genomic != 5 || out.Location.End.Genomic != 6 {
		t.Errorf("Location = %d_%d, want 5_6", out.Location.Start.Genomic, out.Location.End.Genomic)
	}
	if out.Edit.Seq != "A" {
		t.Errorf("Edit.Seq = %q, want A", out.Edit.Seq)
	}
}

func TestNormalizeSubstitutionUnchanged(t *testing.T) {
	f := fixture.New()
	f.AddGenomicSeq("NC_NORM.3", "ACGTACGTAC")

	v := &hgvsast.Variant{
		Accession: "NC_NORM.3",
		Kind:      hgvsast.KindGenomic,
		Location:  hgvsast.Location{Start: hgvsast.Pos{Genomic: 3}},
		Edit:      hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: "G", Alt: "C"},
	}
	out, err := Normalize(v, f, 3)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out != v {
		t.Error("substitutions are not shiftable; Normalize should return the input unchanged")
	}
}

func TestNormalizeTranscriptRejectsIntronicPosition(t *testing.T) {
	f, _ := buildPlusStrand(t)
	v := &hgvsast.Variant{
		Accession: "NM_TEST.1",
		Kind:      hgvsast.KindCoding,
		Location: hgvsast.Location{
			Start: hgvsast.Pos{Transcript: coord.HgvsTranscriptPos{Base: 7, IntronOffset: 2, Region: coord.RegionCDS}},
		},
		Edit: hgvsast.Edit{Kind: hgvsast.EditDeletion, Seq: "A"},
	}
	if _, err := Normalize(v, f, 3); err == nil {
		t.Error("expected an error normalizing an intronic c. position")
	}
}
