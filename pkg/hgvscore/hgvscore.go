// Package hgvscore is the public facade over the HGVS parser,
// formatter, coordinate mapper, and equivalence engine: parse a
// description, map it between genomic/transcript/protein coordinate
// systems against a caller-supplied DataProvider, format it back out,
// and compare two descriptions for biological equivalence.
package hgvscore

import (
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/equivalence"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
	"github.com/hgvsgo/hgvscore/internal/hgvsfmt"
	"github.com/hgvsgo/hgvscore/internal/hgvsparse"
	"github.com/hgvsgo/hgvscore/internal/mapper"
)

// Variant is a fully parsed HGVS description, the shared currency
// between Parse, Format, Mapper, and Equivalence.
type Variant = hgvsast.Variant

// DataProvider is the external collaborator contract (§6.1) every
// Mapper and Equivalence call is made against. internal/fixture
// supplies an in-memory implementation for tests; production callers
// back it with their own transcript/sequence store.
type DataProvider = dataprovider.Provider

// IdentifierType classifies an accession or gene symbol string, as
// returned by a DataProvider's GetIdentifierType.
type IdentifierType = dataprovider.IdentifierType

const (
	UnknownIdentifier   = dataprovider.Unknown
	GeneSymbol          = dataprovider.GeneSymbol
	TranscriptAccession = dataprovider.TranscriptAccession
	GenomicAccession    = dataprovider.GenomicAccession
	ProteinAccession    = dataprovider.ProteinAccession
)

// AccessionRef pairs a resolved accession with its classified kind.
type AccessionRef = dataprovider.AccessionRef

// Verdict is the four-valued result of an Equivalence comparison.
type Verdict = equivalence.Verdict

const (
	Unknown   = equivalence.Unknown
	Different = equivalence.Different
	Analogous = equivalence.Analogous
	Identity  = equivalence.Identity
)

// Parse parses a single HGVS variant description, e.g.
// "NM_000051.3:c.123A>G", into a Variant.
func Parse(input string) (*Variant, error) {
	return hgvsparse.Parse(input)
}

// Format renders v as its canonical HGVS string.
func Format(v *Variant) string {
	return hgvsfmt.Format(v)
}

// Config carries the engine's tunable behavior: currently just the
// normalization/projection window k (§9), defaulted to
// mapper.DefaultWindow when unset.
type Config struct {
	window int
}

// Option configures a Config. The zero value of Config already
// selects every default, so the common case (no options) needs none.
type Option func(*Config)

// WithWindow overrides the default flanking-base window used by 3'
// shift normalization and equivalence projection. k <= 0 restores the
// default.
func WithWindow(k int) Option {
	return func(c *Config) { c.window = k }
}

func newConfig(opts []Option) Config {
	cfg := Config{window: mapper.DefaultWindow}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.window <= 0 {
		cfg.window = mapper.DefaultWindow
	}
	return cfg
}

// Mapper projects Variants between coordinate systems (§4.2-4.3)
// against a DataProvider. A Mapper is safe to reuse across calls; it
// holds no mutable state beyond its configuration.
type Mapper struct {
	provider DataProvider
	window   int
}

// NewMapper builds a Mapper backed by provider.
func NewMapper(provider DataProvider, opts ...Option) *Mapper {
	cfg := newConfig(opts)
	return &Mapper{provider: provider, window: cfg.window}
}

// CToG maps a c./n. Variant to its g. representation, fetching v's
// transcript model from the Mapper's DataProvider.
func (m *Mapper) CToG(v *Variant) (*Variant, error) {
	t, err := m.provider.GetTranscript(v.Accession, v.ReferenceAc)
	if err != nil {
		return nil, err
	}
	return mapper.CToG(v, t)
}

// GToC maps a g./m. Variant to its c./n. representation on
// transcriptAc.
func (m *Mapper) GToC(v *Variant, transcriptAc string) (*Variant, error) {
	t, err := m.provider.GetTranscript(transcriptAc, v.Accession)
	if err != nil {
		return nil, err
	}
	return mapper.GToC(v, t)
}

// CToP projects a c. Variant to its protein consequence. observed
// selects whether the result is wrapped in predicted-consequence
// brackets p.(…) (observed=false, the usual case for a c.-derived
// description) or left bare (observed=true).
func (m *Mapper) CToP(v *Variant, observed bool) (*Variant, error) {
	t, err := m.provider.GetTranscript(v.Accession, v.ReferenceAc)
	if err != nil {
		return nil, err
	}
	return mapper.CToP(v, t, m.provider, observed)
}

// Normalize shifts v to its 3'-most equivalent representation within
// a repetitive run (§4.3.3).
func (m *Mapper) Normalize(v *Variant) (*Variant, error) {
	return mapper.Normalize(v, m.provider, m.window)
}

// Equivalence compares Variants for biological equivalence (§4.4)
// against a DataProvider.
type Equivalence struct {
	provider DataProvider
	window   int
}

// NewEquivalence builds an Equivalence backed by provider.
func NewEquivalence(provider DataProvider, opts ...Option) *Equivalence {
	cfg := newConfig(opts)
	return &Equivalence{provider: provider, window: cfg.window}
}

// Compare returns the equivalence verdict between a and b.
func (e *Equivalence) Compare(a, b *Variant) Verdict {
	return equivalence.CompareWindow(a, b, e.provider, e.window)
}

// CompareDetailed is Compare plus, when no candidate comparison
// produced a verdict, the combined error from every one that failed
// (§7), for callers that want to know why a Verdict came back Unknown.
// The error is nil whenever a verdict was reached.
func (e *Equivalence) CompareDetailed(a, b *Variant) (Verdict, error) {
	return equivalence.CompareDetailed(a, b, e.provider, e.window)
}
