package hgvscore

import (
	"github.com/hgvsgo/hgvscore/internal/hgvserr"
	"github.com/hgvsgo/hgvscore/internal/hgvsparse"
)

// ParseError reports malformed HGVS input, returned by Parse.
type ParseError = hgvsparse.ParseError

// DataError reports a DataProvider failure: an unknown accession or
// an out-of-range sequence request.
type DataError = hgvserr.DataError

// CoordinateError reports a position outside transcript bounds, an
// intron offset used where none is defined, or a CDS boundary
// violation.
type CoordinateError = hgvserr.CoordinateError

// MappingError reports that a variant cannot be projected into the
// requested coordinate system.
type MappingError = hgvserr.MappingError

// TranslationError reports a start codon absent where required, or
// an edit with no defined protein consequence.
type TranslationError = hgvserr.TranslationError
