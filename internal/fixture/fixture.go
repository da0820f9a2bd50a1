// Package fixture implements the dataprovider.Provider contract (§6.1)
// entirely in memory, for this module's own tests. It is never used in
// production; a real deployment supplies transcript models and
// reference sequence from a genome annotation store instead.
package fixture

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/dataprovider"
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/seqops"
	"github.com/hgvsgo/hgvscore/internal/transcript"
)

// transcriptRecord is the raw material a test registers; GetTranscript
// builds the indexed transcript.Transcript from it on first request and
// caches the result.
type transcriptRecord struct {
	transcriptAc string
	referenceAc  string
	proteinAc    string
	strand       transcript.Strand
	cdsStart     coord.TranscriptPos
	cdsEnd       coord.TranscriptPos
	exons        []transcript.Exon
}

// Fixture is a DataProvider backed by plain in-memory maps, with an LRU
// cache over the built Transcript models so repeated lookups in one
// test don't re-run New's index build, mirroring the caching boundary
// design note in §9 ("cache at the DataProvider layer, never inside the
// mapper").
type Fixture struct {
	genomic     map[string]string
	proteins    map[string]string
	transcripts map[string]transcriptRecord
	symbols     map[string][]dataprovider.AccessionRef

	cache *lru.Cache[string, *transcript.Transcript]
}

// New returns an empty Fixture ready for AddGenomicSeq/AddTranscript/
// AddProteinSeq/AddSymbol calls.
func New() *Fixture {
	cache, _ := lru.New[string, *transcript.Transcript](128)
	return &Fixture{
		genomic:     make(map[string]string),
		proteins:    make(map[string]string),
		transcripts: make(map[string]transcriptRecord),
		symbols:     make(map[string][]dataprovider.AccessionRef),
		cache:       cache,
	}
}

// AddGenomicSeq registers the full plus-strand sequence for a genomic
// accession, addressed with 0-based dense coordinates.
func (f *Fixture) AddGenomicSeq(ac, seq string) { f.genomic[ac] = seq }

// AddProteinSeq registers the full amino-acid sequence for a protein
// accession.
func (f *Fixture) AddProteinSeq(ac, seq string) { f.proteins[ac] = seq }

// AddSymbol registers the accessions a gene symbol resolves to.
func (f *Fixture) AddSymbol(symbol string, refs ...dataprovider.AccessionRef) {
	f.symbols[symbol] = append(f.symbols[symbol], refs...)
}

// AddTranscript registers a transcript's exon/CDS model. referenceAc
// must already have a genomic sequence registered with AddGenomicSeq
// for GetSeq/splicing to succeed.
func (f *Fixture) AddTranscript(transcriptAc, referenceAc, proteinAc string, strand transcript.Strand, cdsStart, cdsEnd coord.TranscriptPos, exons []transcript.Exon) {
	f.transcripts[transcriptAc] = transcriptRecord{
		transcriptAc: transcriptAc,
		referenceAc:  referenceAc,
		proteinAc:    proteinAc,
		strand:       strand,
		cdsStart:     cdsStart,
		cdsEnd:       cdsEnd,
		exons:        exons,
	}
}

// GetTranscript implements dataprovider.Provider.
func (f *Fixture) GetTranscript(transcriptAc, referenceAc string) (*transcript.Transcript, error) {
	if t, ok := f.cache.Get(transcriptAc); ok {
		return t, nil
	}
	rec, ok := f.transcripts[transcriptAc]
	if !ok {
		return nil, &hgvserr.DataError{Accession: transcriptAc, Reason: "unknown transcript"}
	}
	t := transcript.New(rec.transcriptAc, rec.referenceAc, rec.proteinAc, rec.strand, rec.cdsStart, rec.cdsEnd, rec.exons)
	f.cache.Add(transcriptAc, t)
	return t, nil
}

// GetSeq implements dataprovider.Provider. For a transcript accession it
// splices the dense mRNA sequence from the registered genomic sequence
// on demand rather than storing a second copy.
func (f *Fixture) GetSeq(ac string, start, end int64, kind dataprovider.SeqKind) (string, error) {
	switch kind {
	case dataprovider.AminoAcid:
		seq, ok := f.proteins[ac]
		if !ok {
			return "", &hgvserr.DataError{Accession: ac, Reason: "unknown protein accession"}
		}
		return sliceSeq(ac, seq, start, end)

	default:
		if rec, ok := f.transcripts[ac]; ok {
			seq, err := f.spliceTranscript(rec)
			if err != nil {
				return "", err
			}
			return sliceSeq(ac, seq, start, end)
		}
		seq, ok := f.genomic[ac]
		if !ok {
			return "", &hgvserr.DataError{Accession: ac, Reason: "unknown genomic accession"}
		}
		return sliceSeq(ac, seq, start, end)
	}
}

func sliceSeq(ac, seq string, start, end int64) (string, error) {
	if start < 0 || end > int64(len(seq)) || start > end {
		return "", &hgvserr.DataError{Accession: ac, Reason: "sequence request out of range"}
	}
	return seq[start:end], nil
}

// spliceTranscript builds the dense transcript sequence by concatenating
// each exon's genomic span in transcript order, reverse-complementing
// per exon on the minus strand.
func (f *Fixture) spliceTranscript(rec transcriptRecord) (string, error) {
	genomic, ok := f.genomic[rec.referenceAc]
	if !ok {
		return "", &hgvserr.DataError{Accession: rec.referenceAc, Reason: "unknown genomic accession for transcript splicing"}
	}
	var b strings.Builder
	for _, e := range rec.exons {
		if int64(e.ReferenceEnd)+1 > int64(len(genomic)) {
			return "", &hgvserr.DataError{Accession: rec.referenceAc, Reason: "exon reference span exceeds registered sequence"}
		}
		exonSeq := genomic[e.ReferenceStart : e.ReferenceEnd+1]
		if rec.strand == transcript.Minus {
			exonSeq = seqops.ReverseComplement(exonSeq)
		}
		b.WriteString(exonSeq)
	}
	return b.String(), nil
}

// GetSymbolAccessions implements dataprovider.Provider.
func (f *Fixture) GetSymbolAccessions(symbol string, targetKind dataprovider.IdentifierType) ([]dataprovider.AccessionRef, error) {
	refs, ok := f.symbols[symbol]
	if !ok {
		return nil, &hgvserr.DataError{Accession: symbol, Reason: "unknown gene symbol"}
	}
	var out []dataprovider.AccessionRef
	for _, r := range refs {
		if r.Kind == targetKind {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetIdentifierType implements dataprovider.Provider by prefix
// classification, the same heuristic real NCBI/Ensembl/RefSeq
// accessions follow.
func (f *Fixture) GetIdentifierType(identifier string) dataprovider.IdentifierType {
	switch {
	case strings.HasPrefix(identifier, "NM_"), strings.HasPrefix(identifier, "NR_"), strings.HasPrefix(identifier, "ENST"):
		return dataprovider.TranscriptAccession
	case strings.HasPrefix(identifier, "NP_"), strings.HasPrefix(identifier, "ENSP"):
		return dataprovider.ProteinAccession
	case strings.HasPrefix(identifier, "NC_"), strings.HasPrefix(identifier, "NG_"),
		strings.HasPrefix(identifier, "NW_"), strings.HasPrefix(identifier, "NT_"),
		strings.HasPrefix(identifier, "chr"):
		return dataprovider.GenomicAccession
	}
	if _, ok := f.symbols[identifier]; ok {
		return dataprovider.GeneSymbol
	}
	return dataprovider.Unknown
}
