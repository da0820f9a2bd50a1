// Package equivalence implements biological-equivalence comparison
// between two HGVS variants (§4.4): gene-symbol expansion, a
// kind-pair dispatch table, and projection/unification for both
// nucleic-acid and protein descriptions.
package equivalence

import (
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/hgvsfmt"
	"github.com/hgvsgo/hgvscore/internal/mapper"
	"go.uber.org/multierr"
)

// Verdict is the four-valued result of comparing two variants. The
// zero value is Unknown, the least informative outcome, so a Verdict
// left unset by mistake never reads as a false claim of equivalence.
type Verdict int

const (
	Unknown Verdict = iota
	Different
	Analogous
	Identity
)

func (v Verdict) String() string {
	switch v {
	case Identity:
		return "Identity"
	case Analogous:
		return "Analogous"
	case Different:
		return "Different"
	default:
		return "Unknown"
	}
}

// better reports whether candidate verdict b should replace a as the
// running best across a gene-symbol expansion's candidate pairs.
// Identity beats Analogous beats Different beats Unknown: any pair
// that resolves to a definite verdict is more informative than one
// that couldn't be evaluated at all, and among definite verdicts the
// one closest to equivalence wins per §4.4.1's "succeeds if any pair
// is equivalent" rule.
func better(a, b Verdict) bool { return b > a }

// Compare returns the equivalence verdict between A and B using the
// default normalization/projection window. It is reflexive
// (Compare(v, v, p) == Identity) and symmetric
// (Compare(a, b, p) == Compare(b, a, p)) by construction: two
// identical canonical strings compare Identity before any strategy
// runs, every dispatch strategy treats its two arguments structurally
// identically, and canonical-string comparison is itself symmetric.
func Compare(a, b *hgvsast.Variant, provider dataprovider.Provider) Verdict {
	v, _ := CompareDetailed(a, b, provider, mapper.DefaultWindow)
	return v
}

// CompareWindow is Compare with an explicit projection window,
// exposed for callers that configure it (pkg/hgvscore's WithWindow).
func CompareWindow(a, b *hgvsast.Variant, provider dataprovider.Provider, window int) Verdict {
	v, _ := CompareDetailed(a, b, provider, window)
	return v
}

// CompareDetailed is Compare plus the combined error from every failed
// candidate comparison (§7): a single per-candidate failure (one bad
// expansion member, one unavailable sequence window) never aborts the
// whole comparison, since another candidate pair may still resolve a
// verdict; the returned error surfaces those failures for callers that
// want to know why a Verdict came back Unknown. It is nil whenever at
// least one candidate pair produced a verdict.
func CompareDetailed(a, b *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	candA, errA := expand(a, provider)
	candB, errB := expand(b, provider)
	if len(candA) == 0 {
		candA = []*hgvsast.Variant{a}
	}
	if len(candB) == 0 {
		candB = []*hgvsast.Variant{b}
	}

	var errs error
	best := Unknown
	resolved := false
	for _, ca := range candA {
		for _, cb := range candB {
			v, err := comparePair(ca, cb, provider, window)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			resolved = true
			if better(best, v) {
				best = v
			}
			if best == Identity {
				return Identity, nil
			}
		}
	}
	if !resolved {
		return Unknown, multierr.Combine(errA, errB, errs)
	}
	return best, nil
}

// expand resolves v's accession to its gene-symbol expansion (§4.4.1):
// the concrete accessions compatible with v's coordinate kind. It
// returns an empty slice (not an error) when v's accession is not a
// gene symbol, the common case, so the caller falls back to comparing
// v directly.
func expand(v *hgvsast.Variant, provider dataprovider.Provider) ([]*hgvsast.Variant, error) {
	if provider.GetIdentifierType(v.Accession) != dataprovider.GeneSymbol {
		return nil, nil
	}
	target := targetKindFor(v.Kind)
	refs, err := provider.GetSymbolAccessions(v.Accession, target)
	if err != nil {
		return nil, err
	}
	var errs error
	out := make([]*hgvsast.Variant, 0, len(refs))
	for _, ref := range refs {
		if ref.Kind != target {
			continue
		}
		candidate := *v
		candidate.Accession = ref.Accession
		out = append(out, &candidate)
	}
	if len(out) == 0 {
		errs = multierr.Append(errs, &hgvserr.DataError{Accession: v.Accession, Reason: "gene symbol has no accession of the required kind"})
	}
	return out, errs
}

// targetKindFor maps a Variant's coordinate Kind to the
// IdentifierType a gene-symbol expansion must resolve to.
func targetKindFor(k hgvsast.Kind) dataprovider.IdentifierType {
	switch {
	case k == hgvsast.KindProtein:
		return dataprovider.ProteinAccession
	case isTranscriptKind(k):
		return dataprovider.TranscriptAccession
	default:
		return dataprovider.GenomicAccession
	}
}

func isGenomicKind(k hgvsast.Kind) bool {
	return k == hgvsast.KindGenomic || k == hgvsast.KindMitochondrial
}

func isTranscriptKind(k hgvsast.Kind) bool {
	return k == hgvsast.KindCoding || k == hgvsast.KindNoncoding || k == hgvsast.KindRNA
}

// comparePair dispatches a single (a, b) pair to a strategy by
// (kind(a), kind(b)) per §4.4.2. Mixed-kind cases normalize the
// argument order by delegating to the opposite-order call, so the
// strategy itself only has to be written once.
func comparePair(a, b *hgvsast.Variant, provider dataprovider.Provider, window int) (Verdict, error) {
	// Identical canonical descriptions are the same event whatever the
	// provider can resolve; this is what keeps Compare reflexive.
	if hgvsfmt.Format(a) == hgvsfmt.Format(b) {
		return Identity, nil
	}
	switch {
	case isGenomicKind(a.Kind) && isGenomicKind(b.Kind):
		return compareGenomic(a, b, provider, window)
	case isTranscriptKind(a.Kind) && isTranscriptKind(b.Kind):
		return compareTranscriptPair(a, b, provider, window)
	case isGenomicKind(a.Kind) && isTranscriptKind(b.Kind):
		return compareGenomicTranscript(a, b, provider, window)
	case isTranscriptKind(a.Kind) && isGenomicKind(b.Kind):
		return compareGenomicTranscript(b, a, provider, window)
	case isGenomicKind(a.Kind) && b.Kind == hgvsast.KindProtein:
		return compareGenomicProtein(a, b, provider, window)
	case a.Kind == hgvsast.KindProtein && isGenomicKind(b.Kind):
		return compareGenomicProtein(b, a, provider, window)
	case isTranscriptKind(a.Kind) && b.Kind == hgvsast.KindProtein:
		return compareTranscriptProtein(a, b, provider, window)
	case a.Kind == hgvsast.KindProtein && isTranscriptKind(b.Kind):
		return compareTranscriptProtein(b, a, provider, window)
	case a.Kind == hgvsast.KindProtein && b.Kind == hgvsast.KindProtein:
		return compareProtein(a, b, provider, window)
	default:
		return fallbackCompare(a, b), nil
	}
}

// fallbackCompare handles a mismatched or otherwise unsupported kind
// pair (§4.4.2's last row) by direct canonical string equality.
func fallbackCompare(a, b *hgvsast.Variant) Verdict {
	if hgvsfmt.Format(a) == hgvsfmt.Format(b) {
		return Identity
	}
	return Different
}
