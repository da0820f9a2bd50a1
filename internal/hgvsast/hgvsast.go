// Package hgvsast defines the Variant abstract syntax tree produced by
// the parser, consumed by the formatter, mapper, and equivalence engine.
package hgvsast

import "github.com/hgvsgo/hgvscore/internal/coord"

// Kind is the single-letter coordinate system a Variant is expressed in.
type Kind byte

const (
	KindGenomic       Kind = 'g'
	KindMitochondrial Kind = 'm'
	KindCoding        Kind = 'c'
	KindNoncoding     Kind = 'n'
	KindRNA           Kind = 'r'
	KindProtein       Kind = 'p'
)

func (k Kind) String() string { return string(k) }

// IsNucleicAcid reports whether k uses a DNA/RNA alphabet rather than an
// amino-acid alphabet.
func (k Kind) IsNucleicAcid() bool { return k != KindProtein }

// Pos is a position in whichever native coordinate type a Variant's Kind
// implies. Exactly one field is populated, selected by the owning
// Variant's Kind; the rest are zero values. This mirrors the source
// data model's per-kind native position types (§3.1) without erasing
// the tag down to a bare integer.
type Pos struct {
	Genomic    coord.HgvsGenomicPos
	Transcript coord.HgvsTranscriptPos
	Protein    coord.HgvsProteinPos

	// ProteinAa is the single-letter residue identity named alongside a
	// protein position (e.g. the 'Q' in "Gln4"). Only meaningful when
	// the owning Variant's Kind is KindProtein.
	ProteinAa byte
}

// Location is the position or position range a Variant's edit applies
// to, with independent uncertainty flags on each end as in `(a_b)`.
type Location struct {
	Start          Pos
	End            Pos
	IsRange        bool
	StartUncertain bool
	EndUncertain   bool
}

// EditKind tags which of the mutually exclusive Edit fields is populated.
type EditKind int

const (
	EditSubstitution EditKind = iota
	EditDeletion
	EditInsertion
	EditDuplication
	EditInversion
	EditDelins
	EditRepeat
	EditIdentity
	EditUncertain
	EditProteinExt
	EditProteinFs
)

// Edit is a tagged union over every HGVS edit operation. Only the
// field(s) relevant to Kind are populated; dispatch on Kind, never on
// which fields happen to be non-zero.
type Edit struct {
	Kind EditKind

	// Substitution: Ref>Alt (nucleic acid) or Ref<pos>Alt (protein,
	// position carried on the enclosing Location).
	Ref string
	Alt string

	// Deletion/Duplication: explicit length, 0 if inferred from Location.
	// internal/hgvsparse does not set it; a del/dup's optional explicit
	// sequence is carried in Seq instead.
	Len int

	// Insertion/Delins: inserted sequence (nucleic acid bases or a run
	// of three-letter amino acids for p.ins). Deletion/Duplication: the
	// optional explicit sequence (e.g. the "ACT" of dupACT), empty when
	// inferred from Location.
	Seq string

	// Repeat: unit sequence and repeat count, e.g. (CAG)[23].
	RepeatUnit  string
	RepeatCount int

	// ProteinExt: extension beyond the native stop, e.g. p.Ter110GlnextTer17.
	ExtAa   byte
	ExtLen  int
	ExtUnknownLen bool

	// ProteinFs: frameshift, e.g. p.Arg97ProfsTer23.
	FsAa      byte
	FsTerDist int
	FsUnknown bool // distance to stop could not be determined ("Ter?")
}

// Variant is a fully parsed HGVS description: an accession, an optional
// reference sequence accession, a coordinate kind, a location in that
// kind's native position type, and an edit. UncertainWhole marks the
// outer `(…)` bracket on predicted protein consequences, distinct from
// the per-position uncertainty carried on Location.
type Variant struct {
	Accession      string
	ReferenceAc    string
	Kind           Kind
	Location       Location
	Edit           Edit
	UncertainWhole bool
}

// IsIndel reports whether the edit changes sequence length.
func (e Edit) IsIndel() bool {
	switch e.Kind {
	case EditDeletion, EditInsertion, EditDuplication, EditDelins, EditRepeat:
		return true
	default:
		return false
	}
}

// IsNormalizable reports whether 3' shift normalization applies to this
// edit kind. Substitutions, inversions, and identity edits are not
// shiftable; everything that inserts or removes bases is.
func (e Edit) IsNormalizable() bool {
	switch e.Kind {
	case EditDeletion, EditInsertion, EditDuplication, EditDelins, EditRepeat:
		return true
	default:
		return false
	}
}
