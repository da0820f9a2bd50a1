// Package hgvsparse implements a hand-written recursive-descent parser,
// with one-token (really one-byte) lookahead, for HGVS variant
// descriptions into the internal/hgvsast Variant tree.
package hgvsparse

import (
	"strconv"
	"strings"

	"github.com/hgvsgo/hgvscore/internal/aacode"
	"github.com/hgvsgo/hgvscore/internal/coord"
	"github.com/hgvsgo/hgvscore/internal/hgvsast"
)

// Parse parses a single HGVS variant description such as
// "NM_000051.3:c.123A>G" into a Variant. It never accepts malformed
// input silently: any leftover input after a production completes is a
// ParseError.
func Parse(input string) (*hgvsast.Variant, error) {
	p := &parser{input: input}
	v, err := p.parseVariant()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, newParseError(BadEdit, "variant", p.pos, input)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(offset int) byte {
	i := p.pos + offset
	if i < 0 || i >= len(p.input) {
		return 0
	}
	return p.input[i]
}

func (p *parser) advance() byte {
	c := p.peek()
	p.pos++
	return c
}

func (p *parser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

// matchKeyword consumes kw if the input at the cursor starts with it,
// returning true on success. Case-sensitive: HGVS keywords are fixed
// case.
func (p *parser) matchKeyword(kw string) bool {
	if strings.HasPrefix(p.input[p.pos:], kw) {
		p.pos += len(kw)
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func (p *parser) errf(kind ErrorKind, rule string) error {
	return newParseError(kind, rule, p.pos, p.input)
}

// parseVariant implements:
//
//	variant := accession (":" ref_ac)? ":" kind "." body
func (p *parser) parseVariant() (*hgvsast.Variant, error) {
	acc, err := p.parseAccession("variant")
	if err != nil {
		return nil, err
	}
	if !p.consume(':') {
		return nil, p.errf(UnexpectedEnd, "variant")
	}

	kind, ok := p.tryParseKind()
	var refAc string
	if !ok {
		refAc, err = p.parseAccession("ref_ac")
		if err != nil {
			return nil, err
		}
		if !p.consume(':') {
			return nil, p.errf(UnexpectedEnd, "variant")
		}
		kind, ok = p.tryParseKind()
		if !ok {
			return nil, p.errf(BadEdit, "kind")
		}
	}

	v := &hgvsast.Variant{Accession: acc, ReferenceAc: refAc, Kind: kind}

	if kind == hgvsast.KindProtein {
		if p.consume('(') {
			v.UncertainWhole = true
		}
		loc, edit, err := p.parseProteinBody()
		if err != nil {
			return nil, err
		}
		if v.UncertainWhole && !p.consume(')') {
			return nil, p.errf(UnexpectedEnd, "protein_body")
		}
		v.Location = loc
		v.Edit = edit
		return v, nil
	}

	loc, err := p.parseLocation(kind)
	if err != nil {
		return nil, err
	}
	edit, err := p.parseEditNA(kind)
	if err != nil {
		return nil, err
	}
	v.Location = loc
	v.Edit = edit
	return v, nil
}

// parseAccession reads up to the next ':' as an opaque accession token.
func (p *parser) parseAccession(rule string) (string, error) {
	start := p.pos
	for !p.eof() && p.peek() != ':' {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf(UnexpectedEnd, rule)
	}
	return p.input[start:p.pos], nil
}

// tryParseKind peeks for one of the six single-letter kinds followed
// immediately by '.'; consumes both on success, otherwise leaves the
// cursor untouched.
func (p *parser) tryParseKind() (hgvsast.Kind, bool) {
	c := p.peek()
	switch hgvsast.Kind(c) {
	case hgvsast.KindGenomic, hgvsast.KindMitochondrial, hgvsast.KindCoding,
		hgvsast.KindNoncoding, hgvsast.KindRNA, hgvsast.KindProtein:
		if p.peekAt(1) != '.' {
			return 0, false
		}
		p.pos += 2
		return hgvsast.Kind(c), true
	default:
		return 0, false
	}
}

// parseDigits reads one or more decimal digits.
func (p *parser) parseDigits(rule string) (int64, error) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errf(BadPosition, rule)
	}
	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		return 0, p.errf(BadPosition, rule)
	}
	return n, nil
}

// parseLocation implements:
//
//	location := pos | pos "_" pos
//
// UTR markers (-, *) are only accepted for c./n./r. kinds and intron
// offsets (+/- digits) only for c./n.; g./m. positions are plain dense
// integers. This is the rejection point for the open question on
// intron offsets outside c./n.: any such offset on a g./m./r. position
// is a ParseError, never silently dropped.
func (p *parser) parseLocation(kind hgvsast.Kind) (hgvsast.Location, error) {
	uncertain := false
	if p.consume('(') {
		uncertain = true
	}

	start, err := p.parsePos(kind)
	if err != nil {
		return hgvsast.Location{}, err
	}

	loc := hgvsast.Location{Start: start, StartUncertain: uncertain, EndUncertain: uncertain}

	if p.consume('_') {
		end, err := p.parsePos(kind)
		if err != nil {
			return hgvsast.Location{}, err
		}
		loc.End = end
		loc.IsRange = true
	}

	if uncertain && !p.consume(')') {
		return hgvsast.Location{}, p.errf(UnexpectedEnd, "location")
	}

	return loc, nil
}

// parsePos implements:
//
//	pos := ( "-" | "*" )? digits ( ("+"|"-") digits )?
func (p *parser) parsePos(kind hgvsast.Kind) (hgvsast.Pos, error) {
	switch kind {
	case hgvsast.KindGenomic, hgvsast.KindMitochondrial:
		n, err := p.parseDigits("pos")
		if err != nil {
			return hgvsast.Pos{}, err
		}
		if p.peek() == '+' || p.peek() == '-' {
			return hgvsast.Pos{}, p.errf(CoordinateMismatch, "pos")
		}
		return hgvsast.Pos{Genomic: coord.HgvsGenomicPos(n)}, nil

	case hgvsast.KindCoding, hgvsast.KindNoncoding, hgvsast.KindRNA:
		region := coord.RegionCDS
		sign := int64(1)
		switch p.peek() {
		case '-':
			region = coord.Region5UTR
			sign = -1
			p.pos++
		case '*':
			region = coord.Region3UTR
			p.pos++
		}
		n, err := p.parseDigits("pos")
		if err != nil {
			return hgvsast.Pos{}, err
		}
		base := sign * n

		var offset int64
		if p.peek() == '+' || p.peek() == '-' {
			if kind == hgvsast.KindRNA {
				return hgvsast.Pos{}, p.errf(CoordinateMismatch, "pos")
			}
			offSign := int64(1)
			if p.peek() == '-' {
				offSign = -1
			}
			p.pos++
			offN, err := p.parseDigits("pos")
			if err != nil {
				return hgvsast.Pos{}, err
			}
			offset = offSign * offN
		}

		return hgvsast.Pos{Transcript: coord.HgvsTranscriptPos{
			Base:         base,
			IntronOffset: offset,
			Region:       region,
		}}, nil

	default:
		return hgvsast.Pos{}, p.errf(CoordinateMismatch, "pos")
	}
}

// isBase reports whether c is a valid DNA/RNA base letter, in either
// case: A/C/G/T/U plus the N ambiguity code.
func isBase(c byte) bool {
	switch c {
	case 'A', 'C', 'G', 'T', 'U', 'N', 'a', 'c', 'g', 't', 'u', 'n':
		return true
	default:
		return false
	}
}

// parseSeq reads one or more IUPAC nucleotide letters (either case).
func (p *parser) parseSeq() string {
	start := p.pos
	for !p.eof() && isBase(p.peek()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

// parseEditNA implements edit_na, the nucleic-acid edit grammar:
//
//	edit_na := "=" | ref ">" alt | "del" seq? | "ins" seq | "dup" seq?
//	         | "inv" | "delins" seq | seq "[" digits "]"
func (p *parser) parseEditNA(kind hgvsast.Kind) (hgvsast.Edit, error) {
	if p.consume('=') {
		return hgvsast.Edit{Kind: hgvsast.EditIdentity}, nil
	}

	if p.matchKeyword("delins") {
		seq := p.parseSeq()
		if seq == "" {
			return hgvsast.Edit{}, p.errf(BadEdit, "edit_na")
		}
		return hgvsast.Edit{Kind: hgvsast.EditDelins, Seq: seq}, nil
	}
	if p.matchKeyword("del") {
		seq := p.parseSeq()
		return hgvsast.Edit{Kind: hgvsast.EditDeletion, Seq: seq}, nil
	}
	if p.matchKeyword("dup") {
		seq := p.parseSeq()
		return hgvsast.Edit{Kind: hgvsast.EditDuplication, Seq: seq}, nil
	}
	if p.matchKeyword("inv") {
		return hgvsast.Edit{Kind: hgvsast.EditInversion}, nil
	}
	if p.matchKeyword("ins") {
		seq := p.parseSeq()
		if seq == "" {
			return hgvsast.Edit{}, p.errf(BadEdit, "edit_na")
		}
		return hgvsast.Edit{Kind: hgvsast.EditInsertion, Seq: seq}, nil
	}

	// Repeat: an optional explicit unit (bare letters, or parenthesized)
	// followed by "[" count "]".
	if unit, count, ok := p.tryParseRepeat(); ok {
		return hgvsast.Edit{Kind: hgvsast.EditRepeat, RepeatUnit: unit, RepeatCount: count}, nil
	}

	ref := p.parseSeq()
	if ref == "" || !p.consume('>') {
		return hgvsast.Edit{}, p.errf(BadEdit, "edit_na")
	}
	alt := p.parseSeq()
	if alt == "" {
		return hgvsast.Edit{}, p.errf(BadEdit, "edit_na")
	}
	return hgvsast.Edit{Kind: hgvsast.EditSubstitution, Ref: ref, Alt: alt}, nil
}

// tryParseRepeat speculatively parses `seq "[" digits "]"` (or
// `"(" seq ")" "[" digits "]"`), backtracking to the entry cursor
// position if the bracketed count never materializes so that the
// substitution/ref>alt branch can retry the same input.
func (p *parser) tryParseRepeat() (unit string, count int, ok bool) {
	save := p.pos

	paren := p.consume('(')
	unit = p.parseSeq()
	if paren {
		if !p.consume(')') {
			p.pos = save
			return "", 0, false
		}
	}
	if unit == "" || p.peek() != '[' {
		p.pos = save
		return "", 0, false
	}
	p.pos++ // consume '['
	n, err := p.parseDigits("repeat")
	if err != nil || !p.consume(']') {
		p.pos = save
		return "", 0, false
	}
	return unit, int(n), true
}

// parseProteinBody implements p_location and edit_p together, since the
// reference amino acid belongs to the location and the alternate amino
// acid belongs to the edit:
//
//	p_location := aa pos ( "_" aa pos )?
//	edit_p := "=" | aa ( "_" pos aa )? ( "fs" ( "Ter" digits? )? | "ext" … )
//	        | "del" | "dup" | "ins" aa+ | aa ">" aa | "delins" aa+
func (p *parser) parseProteinBody() (hgvsast.Location, hgvsast.Edit, error) {
	start, err := p.parseAAPos()
	if err != nil {
		return hgvsast.Location{}, hgvsast.Edit{}, err
	}
	loc := hgvsast.Location{Start: start}

	if p.consume('_') {
		end, err := p.parseAAPos()
		if err != nil {
			return hgvsast.Location{}, hgvsast.Edit{}, err
		}
		loc.End = end
		loc.IsRange = true
	}

	if p.consume('=') {
		return loc, hgvsast.Edit{Kind: hgvsast.EditIdentity, Ref: string(start.ProteinAa)}, nil
	}
	if p.matchKeyword("delins") {
		seq, err := p.parseAARun()
		if err != nil {
			return hgvsast.Location{}, hgvsast.Edit{}, err
		}
		return loc, hgvsast.Edit{Kind: hgvsast.EditDelins, Seq: seq}, nil
	}
	if p.matchKeyword("del") {
		return loc, hgvsast.Edit{Kind: hgvsast.EditDeletion}, nil
	}
	if p.matchKeyword("dup") {
		return loc, hgvsast.Edit{Kind: hgvsast.EditDuplication}, nil
	}
	if p.matchKeyword("ins") {
		seq, err := p.parseAARun()
		if err != nil {
			return hgvsast.Location{}, hgvsast.Edit{}, err
		}
		return loc, hgvsast.Edit{Kind: hgvsast.EditInsertion, Seq: seq}, nil
	}

	// Remaining forms all begin with the alternate amino acid: missense
	// substitution, frameshift, or an extension.
	altAa, err := p.parseAA()
	if err != nil {
		return hgvsast.Location{}, hgvsast.Edit{}, err
	}

	if p.matchKeyword("fs") {
		terDist, unknown := p.parseFsTerSuffix()
		return loc, hgvsast.Edit{
			Kind:      hgvsast.EditProteinFs,
			Ref:       string(start.ProteinAa),
			FsAa:      altAa,
			FsTerDist: terDist,
			FsUnknown: unknown,
		}, nil
	}
	if p.matchKeyword("ext") {
		extLen, unknown := p.parseExtSuffix()
		return loc, hgvsast.Edit{
			Kind:          hgvsast.EditProteinExt,
			Ref:           string(start.ProteinAa),
			ExtAa:         altAa,
			ExtLen:        extLen,
			ExtUnknownLen: unknown,
		}, nil
	}

	return loc, hgvsast.Edit{
		Kind: hgvsast.EditSubstitution,
		Ref:  string(start.ProteinAa),
		Alt:  string(altAa),
	}, nil
}

// parseAAPos parses a reference amino acid immediately followed by its
// 1-based protein position, e.g. "Gln4" or "Q4".
func (p *parser) parseAAPos() (hgvsast.Pos, error) {
	aa, err := p.parseAA()
	if err != nil {
		return hgvsast.Pos{}, err
	}
	n, err := p.parseDigits("p_location")
	if err != nil {
		return hgvsast.Pos{}, err
	}
	return hgvsast.Pos{Protein: coord.HgvsProteinPos(n), ProteinAa: aa}, nil
}

// parseAA parses a single amino acid token, one-letter or three-letter,
// including the "Ter"/"*" stop marker and "Xaa"/"?" unknown marker.
func (p *parser) parseAA() (byte, error) {
	if p.consume('*') {
		return '*', nil
	}
	if p.consume('?') {
		return 'X', nil
	}
	if isUpper(p.peek()) && isLower(p.peekAt(1)) && isLower(p.peekAt(2)) {
		three := p.input[p.pos : p.pos+3]
		single, ok := aacode.ToSingle(three)
		if !ok {
			return 0, p.errf(BadEdit, "aa")
		}
		p.pos += 3
		return single, nil
	}
	if isUpper(p.peek()) {
		aa := p.advance()
		if _, ok := aacode.ToThree(aa); !ok {
			return 0, p.errf(BadEdit, "aa")
		}
		return aa, nil
	}
	return 0, p.errf(BadEdit, "aa")
}

// parseAARun parses one or more consecutive amino acid tokens, as used
// in p.ins and p.delins payloads.
func (p *parser) parseAARun() (string, error) {
	var b strings.Builder
	aa, err := p.parseAA()
	if err != nil {
		return "", err
	}
	b.WriteByte(aa)
	for {
		start := p.pos
		next, err := p.parseAA()
		if err != nil {
			p.pos = start
			break
		}
		b.WriteByte(next)
	}
	return b.String(), nil
}

// parseFsTerSuffix parses the optional "Ter" distance after "fs", e.g.
// the "Ter23" in "p.Arg97ProfsTer23", or "Ter?" for an undetermined
// distance. Bare "fs" with no suffix leaves both results zero/false.
func (p *parser) parseFsTerSuffix() (dist int, unknown bool) {
	if !p.matchKeyword("Ter") {
		return 0, false
	}
	if p.consume('?') {
		return 0, true
	}
	n, err := p.parseDigits("fs")
	if err != nil {
		return 0, false
	}
	return int(n), false
}

// parseExtSuffix parses the optional "Ter" distance after "ext" for a
// C-terminal extension, mirroring parseFsTerSuffix.
func (p *parser) parseExtSuffix() (length int, unknown bool) {
	if !p.matchKeyword("Ter") && !p.matchKeyword("*") {
		return 0, false
	}
	if p.consume('?') {
		return 0, true
	}
	n, err := p.parseDigits("ext")
	if err != nil {
		return 0, false
	}
	return int(n), false
}
