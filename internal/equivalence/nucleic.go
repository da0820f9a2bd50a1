package equivalence

import (
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/hgvsfmt"
	"github.com/hgvsgo/hgvscore/internal/mapper"
)

// compareGenomic implements §4.4.2's g↔g/m↔m row and §4.4.3's
// projection/unification: normalize both variants, compare their
// canonical strings for Identity, then fall back to comparing the
// post-edit reference window each projects onto for Analogous.
func compareGenomic(a, b *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	na, err := mapper.Normalize(a, provider, window)
	if err != nil {
		return Unknown, err
	}
	nb, err := mapper.Normalize(b, provider, window)
	if err != nil {
		return Unknown, err
	}
	if hgvsfmt.Format(na) == hgvsfmt.Format(nb) {
		return Identity, nil
	}

	pa, err := projectNucleic(na, provider, window)
	if err != nil {
		return Unknown, err
	}
	pb, err := projectNucleic(nb, provider, window)
	if err != nil {
		return Unknown, err
	}
	if pa == pb {
		return Analogous, nil
	}
	return Different, nil
}

// compareTranscriptPair implements the c↔c, n↔n, r↔r row: map each
// side to genomic independently, then compare via compareGenomic.
func compareTranscriptPair(a, b *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	ta, err := provider.GetTranscript(a.Accession, a.ReferenceAc)
	if err != nil {
		return Unknown, err
	}
	ga, err := mapper.CToG(a, ta)
	if err != nil {
		return Unknown, err
	}
	tb, err := provider.GetTranscript(b.Accession, b.ReferenceAc)
	if err != nil {
		return Unknown, err
	}
	gb, err := mapper.CToG(b, tb)
	if err != nil {
		return Unknown, err
	}
	return compareGenomic(ga, gb, provider, window)
}

// compareGenomicTranscript implements the g↔c row: map c to g on the
// same reference g already carries, then compare via compareGenomic.
func compareGenomicTranscript(g, c *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	t, err := provider.GetTranscript(c.Accession, g.Accession)
	if err != nil {
		return Unknown, err
	}
	gc, err := mapper.CToG(c, t)
	if err != nil {
		return Unknown, err
	}
	return compareGenomic(g, gc, provider, window)
}

// compareGenomicProtein implements the g↔p row: "for each transcript
// overlapping g, g→c→p; compare to p". The DataProvider contract
// (§6.1) has no reverse genomic-to-transcript lookup, so the engine
// cannot itself enumerate every transcript over a genomic interval; it
// bridges through whichever variant carries a transcript accession in
// ReferenceAc (the caller's way of naming the transcript it wants this
// comparison evaluated against) and reports Unknown when neither does.
func compareGenomicProtein(g, p *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	transcriptAc := g.ReferenceAc
	if transcriptAc == "" {
		transcriptAc = p.ReferenceAc
	}
	if transcriptAc == "" {
		return Unknown, &hgvserr.MappingError{Reason: "g_to_p comparison requires a transcript accession hint in ReferenceAc"}
	}
	t, err := provider.GetTranscript(transcriptAc, g.Accession)
	if err != nil {
		return Unknown, err
	}
	c, err := mapper.GToC(g, t)
	if err != nil {
		return Unknown, err
	}
	pc, err := mapper.CToP(c, t, provider, false)
	if err != nil {
		return Unknown, err
	}
	return compareProtein(pc, p, provider, window)
}

// compareTranscriptProtein implements the c↔p row: translate c on its
// own transcript (c.Accession), then compare the resulting protein
// description, named by that transcript's protein accession, with p.
func compareTranscriptProtein(c, p *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	t, err := provider.GetTranscript(c.Accession, c.ReferenceAc)
	if err != nil {
		return Unknown, err
	}
	pc, err := mapper.CToP(c, t, provider, false)
	if err != nil {
		return Unknown, err
	}
	return compareProtein(pc, p, provider, window)
}

// projectNucleic renders the reference window around v's edit after
// the edit is applied, v's "projection" per §4.4.3. v must already be
// expressed in genomic coordinates. Two variants that describe the
// same underlying change, however differently worded, project onto
// the same resulting sequence: this is how `g.10_11insA` and
// `g.10dup` are recognized as the same change when the reference base
// at 10 is `A`, with no special-cased redundancy rule required.
func projectNucleic(v *hgvsast.Variant, provider dataprovider.Provider, window int) (string, error) {
	lo := v.Location.Start.Genomic.ToZeroBased()
	hi := lo
	if v.Location.IsRange {
		hi = v.Location.End.Genomic.ToZeroBased()
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	fetchLo := int64(lo) - int64(window)
	if fetchLo < 0 {
		fetchLo = 0
	}
	// fetchHi is anchored off lo, not hi, so that two differently-spanned
	// descriptions of the same redundant edit (e.g. a 1-base dup vs. a
	// 2-position ins) fetch the same right flank and their projected
	// windows stay directly comparable; it only grows past lo+window
	// when the edit's own span needs more room than that.
	fetchHi := int64(lo) + int64(window) + 1
	if int64(hi)+1 > fetchHi {
		fetchHi = int64(hi) + 1
	}
	seq, err := provider.GetSeq(v.Accession, fetchLo, fetchHi, dataprovider.NucleicAcid)
	if err != nil {
		return "", err
	}

	start := int(int64(lo) - fetchLo)
	end := int(int64(hi) - fetchLo)
	return mapper.ApplyEdit(seq, start, end, v.Edit)
}
