package equivalence

import (
	"strings"
	"testing"

	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/fixture"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/transcript"
)

// gSub builds a genomic substitution variant for the given 1-based
// position.
func gSub(ac string, pos int64, ref, alt string) *hgvsast.Variant {
	p := hgvsast.Pos{Genomic: coord.HgvsGenomicPos(pos)}
	return &hgvsast.Variant{
		Accession: ac,
		Kind:      hgvsast.KindGenomic,
		Location:  hgvsast.Location{Start: p, End: p},
		Edit:      hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: ref, Alt: alt},
	}
}

func TestCompareGenomicSubstitutionReflexive(t *testing.T) {
	f := fixture.New()
	a := gSub("NC_EQ.1", 123, "A", "G")
	if v := Compare(a, a, f); v != Identity {
		t.Fatalf("Compare(a, a) = %s, want Identity", v)
	}
}

func TestCompareGenomicSubstitutionDifferent(t *testing.T) {
	f := fixture.New()
	// Telling the two apart goes through projection, which needs the
	// reference around position 123 (default window: 50 bases each side).
	f.AddGenomicSeq("NC_EQ.1", strings.Repeat("A", 200))
	a := gSub("NC_EQ.1", 123, "A", "G")
	b := gSub("NC_EQ.1", 123, "A", "T")
	if v := Compare(a, b, f); v != Different {
		t.Fatalf("Compare(a, b) = %s, want Different", v)
	}
}

func TestCompareGenomicSubstitutionSymmetric(t *testing.T) {
	f := fixture.New()
	a := gSub("NC_EQ.1", 123, "A", "G")
	b := gSub("NC_EQ.1", 123, "A", "T")
	if Compare(a, b, f) != Compare(b, a, f) {
		t.Fatalf("Compare not symmetric: %s vs %s", Compare(a, b, f), Compare(b, a, f))
	}
}

// The genomic reference "CATG" repeated 8 times puts a lone 'A' at
// position 10 with no adjacent 'A' on either side, so neither
// g.10_11insA nor g.10dup 3'-shifts any further: the only way they can
// compare equal is through projection, the scenario this test exists
// to exercise.
const insDupRef = "CATGCATGCATGCATGCATGCATGCATGCATG"

func TestCompareGenomicInsertionEqualsDuplication(t *testing.T) {
	f := fixture.New()
	f.AddGenomicSeq("NC_EQ.1", insDupRef)

	ins := &hgvsast.Variant{
		Accession: "NC_EQ.1",
		Kind:      hgvsast.KindGenomic,
		Location: hgvsast.Location{
			Start:   hgvsast.Pos{Genomic: 10},
			End:     hgvsast.Pos{Genomic: 11},
			IsRange: true,
		},
		Edit: hgvsast.Edit{Kind: hgvsast.EditInsertion, Seq: "A"},
	}
	dup := &hgvsast.Variant{
		Accession: "NC_EQ.1",
		Kind:      hgvsast.KindGenomic,
		Location:  hgvsast.Location{Start: hgvsast.Pos{Genomic: 10}, End: hgvsast.Pos{Genomic: 10}},
		Edit:      hgvsast.Edit{Kind: hgvsast.EditDuplication},
	}

	if v := CompareWindow(ins, dup, f, 4); v != Analogous {
		t.Fatalf("Compare(ins, dup) = %s, want Analogous", v)
	}
	if v := CompareWindow(dup, ins, f, 4); v != Analogous {
		t.Fatalf("Compare(dup, ins) = %s, want Analogous (not symmetric)", v)
	}
}

// buildCodingFixture registers a single-exon, plus-strand coding
// transcript ("NM_EQ.1", protein "NP_EQ.1") on genomic accession
// "NC_EQ.1": 2 bases of 5'UTR then three codons, AAA(Lys) GAA(Glu)
// TAA(stop).
func buildCodingFixture() *fixture.Fixture {
	f := fixture.New()
	f.AddGenomicSeq("NC_EQ.1", "CCAAAGAATAA")
	f.AddTranscript("NM_EQ.1", "NC_EQ.1", "NP_EQ.1", transcript.Plus, 2, 10,
		[]transcript.Exon{{TranscriptStart: 0, TranscriptEnd: 11, ReferenceStart: 0, ReferenceEnd: 10}})
	// Long enough to cover a small projection window around residue 2,
	// used only by the tests that fall through to protein projection.
	f.AddProteinSeq("NP_EQ.1", "KEQQQQQQQQQQ")
	return f
}

func codingSub(ac string, base int64, ref, alt string) *hgvsast.Variant {
	p := hgvsast.Pos{Transcript: coord.HgvsTranscriptPos{Base: base, Region: coord.RegionCDS}}
	return &hgvsast.Variant{
		Accession: ac,
		Kind:      hgvsast.KindCoding,
		Location:  hgvsast.Location{Start: p, End: p},
		Edit:      hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: ref, Alt: alt},
	}
}

// TestCompareCodingToProteinIdentity grounds §4.4.2's c<->p row: c.4G>C
// turns codon 2 from GAA (Glu) to CAA (Gln), which is exactly what the
// protein description below names.
func TestCompareCodingToProteinIdentity(t *testing.T) {
	f := buildCodingFixture()
	c := codingSub("NM_EQ.1", 4, "G", "C")
	p := &hgvsast.Variant{
		Accession: "NP_EQ.1",
		Kind:      hgvsast.KindProtein,
		Location: hgvsast.Location{
			Start: hgvsast.Pos{Protein: 2, ProteinAa: 'E'},
			End:   hgvsast.Pos{Protein: 2, ProteinAa: 'E'},
		},
		Edit:           hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: "E", Alt: "Q"},
		UncertainWhole: true,
	}

	if v := Compare(c, p, f); v != Identity {
		t.Fatalf("Compare(c, p) = %s, want Identity", v)
	}
	if v := Compare(p, c, f); v != Identity {
		t.Fatalf("Compare(p, c) = %s, want Identity (not symmetric)", v)
	}
}

func TestCompareCodingToProteinDifferentResidue(t *testing.T) {
	f := buildCodingFixture()
	c := codingSub("NM_EQ.1", 4, "G", "C")
	p := &hgvsast.Variant{
		Accession: "NP_EQ.1",
		Kind:      hgvsast.KindProtein,
		Location: hgvsast.Location{
			Start: hgvsast.Pos{Protein: 2, ProteinAa: 'E'},
			End:   hgvsast.Pos{Protein: 2, ProteinAa: 'E'},
		},
		Edit:           hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: "E", Alt: "D"},
		UncertainWhole: true,
	}
	if v := CompareWindow(c, p, f, 2); v != Different {
		t.Fatalf("Compare(c, p) = %s, want Different", v)
	}
}

// TestGeneSymbolExpansion grounds §4.4.1: a variant accessioned by gene
// symbol expands to the transcript accession the fixture maps it to,
// and the expanded candidate compares Identity against the same
// variant already expressed on that transcript.
func TestGeneSymbolExpansion(t *testing.T) {
	f := buildCodingFixture()
	f.AddSymbol("GENEQ", dataprovider.AccessionRef{Kind: dataprovider.TranscriptAccession, Accession: "NM_EQ.1"})

	a := codingSub("GENEQ", 4, "G", "C")
	b := codingSub("NM_EQ.1", 4, "G", "C")

	if v := Compare(a, b, f); v != Identity {
		t.Fatalf("Compare(symbol, accession) = %s, want Identity", v)
	}
}

// TestGeneSymbolExpansionDifferentEdit confirms expansion only changes
// which accessions get compared, not the verdict itself: a mismatched
// edit still resolves to a definite Different, with no error.
func TestGeneSymbolExpansionDifferentEdit(t *testing.T) {
	f := buildCodingFixture()
	f.AddSymbol("GENEQ", dataprovider.AccessionRef{Kind: dataprovider.TranscriptAccession, Accession: "NM_EQ.1"})

	a := codingSub("GENEQ", 4, "G", "C")
	b := codingSub("NM_EQ.1", 4, "G", "T")

	v, err := CompareDetailed(a, b, f, 4)
	if v != Different {
		t.Fatalf("Compare = %s, want Different", v)
	}
	if err != nil {
		t.Fatalf("unexpected error on a resolved Different verdict: %v", err)
	}
}

// TestCompareUnknownAccessionPropagatesError grounds §7's propagation
// policy: when the only candidate pair fails outright (here, an
// accession with no registered transcript), the verdict is Unknown and
// the triggering error is returned rather than swallowed.
func TestCompareUnknownAccessionPropagatesError(t *testing.T) {
	f := buildCodingFixture()
	a := codingSub("NM_MISSING.1", 4, "G", "C")
	b := codingSub("NM_EQ.1", 4, "G", "C")

	v, err := CompareDetailed(a, b, f, 4)
	if v != Unknown {
		t.Fatalf("Compare = %s, want Unknown", v)
	}
	if err == nil {
		t.Fatal("expected a non-nil error explaining the Unknown verdict")
	}
}

// buildMinusStrandFixture registers a non-coding, minus-strand,
// single-exon transcript ("NM_EQM.1") on genomic accession "NC_EQM.1".
func buildMinusStrandFixture() *fixture.Fixture {
	f := fixture.New()
	f.AddGenomicSeq("NC_EQM.1", "AACGTTTTGGG")
	f.AddTranscript("NM_EQM.1", "NC_EQM.1", "", transcript.Minus, -1, -1,
		[]transcript.Exon{{TranscriptStart: 0, TranscriptEnd: 11, ReferenceStart: 0, ReferenceEnd: 10}})
	return f
}

// TestCompareMinusStrandSubstitution grounds §4.4.2's g<->c row for a
// minus-strand transcript (§4.3's strand flip via mapEditStrand):
// n.4 on NM_EQM.1 is the reverse complement of genomic position 8, so
// n.4A>C must compare Identity against g.8T>G.
func TestCompareMinusStrandSubstitution(t *testing.T) {
	f := buildMinusStrandFixture()

	// tx dense sequence (reverse complement of "AACGTTTTGGG", read 3'
	// genomic to 5' genomic): n.1..11 = C C C A A A A C G T T.
	// n.4 = 'A', the complement of genomic position 8 (1-based) = 'T'.
	n := &hgvsast.Variant{
		Accession: "NM_EQM.1",
		Kind:      hgvsast.KindNoncoding,
		Location: hgvsast.Location{
			Start: hgvsast.Pos{Transcript: coord.HgvsTranscriptPos{Base: 4, Region: coord.RegionCDS}},
			End:   hgvsast.Pos{Transcript: coord.HgvsTranscriptPos{Base: 4, Region: coord.RegionCDS}},
		},
		Edit: hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: "A", Alt: "C"},
	}
	g := gSub("NC_EQM.1", 8, "T", "G")

	if v := Compare(g, n, f); v != Identity {
		t.Fatalf("Compare(g, n) = %s, want Identity", v)
	}
	if v := Compare(n, g, f); v != Identity {
		t.Fatalf("Compare(n, g) = %s, want Identity (not symmetric)", v)
	}
}

