package transcript

import "testing"

// a small plus-strand transcript: two exons, exon 1 spans genomic
// [1000,1099], exon 2 spans genomic [2000,2049], CDS starts 10 bases
// into exon 1 and ends within exon 2.
func buildPlusStrand() *Transcript {
	exons := []Exon{
		{TranscriptStart: 0, TranscriptEnd: 100, ReferenceStart: 1000, ReferenceEnd: 1099},
		{TranscriptStart: 100, TranscriptEnd: 150, ReferenceStart: 2000, ReferenceEnd: 2049},
	}
	return New("NM_TEST.1", "NC_TEST.1", "NP_TEST.1", Plus, 10, 120, exons)
}

func TestExonAtTranscriptPos(t *testing.T) {
	tr := buildPlusStrand()

	e := tr.ExonAtTranscriptPos(50)
	if e == nil {
		t.Fatal("expected exon at transcript pos 50")
	}
	if e.ReferenceStart != 1000 {
		t.Errorf("ReferenceStart = %d, want 1000", e.ReferenceStart)
	}

	e = tr.ExonAtTranscriptPos(120)
	if e == nil || e.ReferenceStart != 2000 {
		t.Errorf("expected exon 2 at transcript pos 120, got %+v", e)
	}

	if tr.ExonAtTranscriptPos(1000) != nil {
		t.Error("expected nil for out-of-range transcript position")
	}
}

func TestExonAtGenomicPos(t *testing.T) {
	tr := buildPlusStrand()

	e := tr.ExonAtGenomicPos(1050)
	if e == nil || e.TranscriptStart != 0 {
		t.Errorf("expected exon 1 at genomic 1050, got %+v", e)
	}

	if tr.ExonAtGenomicPos(1500) != nil {
		t.Error("expected nil for a position inside the intron")
	}
}

func TestNearestExonBoundary(t *testing.T) {
	tr := buildPlusStrand()

	e, ok := tr.NearestExonBoundary(1105)
	if !ok {
		t.Fatal("expected a boundary for an intronic genomic position")
	}
	if e.TranscriptStart != 0 {
		t.Errorf("expected exon 1 to be nearest, got %+v", e)
	}

	e, ok = tr.NearestExonBoundary(1995)
	if !ok {
		t.Fatal("expected a boundary")
	}
	if e.TranscriptStart != 100 {
		t.Errorf("expected exon 2 to be nearest, got %+v", e)
	}
}

func TestGenomicAtTranscriptAtRoundTrip(t *testing.T) {
	tr := buildPlusStrand()
	e := &tr.Exons[0]

	g := tr.GenomicAt(e, 5)
	if g != 1005 {
		t.Errorf("GenomicAt(5) = %d, want 1005", g)
	}
	if got := tr.TranscriptAt(e, g); got != 5 {
		t.Errorf("TranscriptAt(1005) = %d, want 5", got)
	}
}

func TestIsProteinCoding(t *testing.T) {
	tr := buildPlusStrand()
	if !tr.IsProteinCoding() {
		t.Error("expected coding transcript")
	}

	nc := New("NR_TEST.1", "NC_TEST.1", "", Plus, -1, -1, []Exon{
		{TranscriptStart: 0, TranscriptEnd: 50, ReferenceStart: 1000, ReferenceEnd: 1049},
	})
	if nc.IsProteinCoding() {
		t.Error("expected non-coding transcript")
	}
}

func TestLength(t *testing.T) {
	tr := buildPlusStrand()
	if got := tr.Length(); got != 150 {
		t.Errorf("Length() = %d, want 150", got)
	}
}
