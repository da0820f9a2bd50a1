// Package hgvserr defines the error kinds raised above the parser:
// DataError, CoordinateError, MappingError, and TranslationError. They
// are shared by internal/mapper, internal/equivalence, and
// internal/fixture so that a single type identifies each failure mode
// regardless of which package raised it.
package hgvserr

import "fmt"

// DataError reports a DataProvider failure: an unknown accession or an
// out-of-range sequence request. Non-recoverable by the engine.
type DataError struct {
	Accession string
	Reason    string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("hgvserr: data error for %q: %s", e.Accession, e.Reason)
}

// CoordinateError reports a position outside transcript bounds, an
// intron offset used where none is defined, or a CDS boundary
// violation.
type CoordinateError struct {
	Reason string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("hgvserr: coordinate error: %s", e.Reason)
}

// MappingError reports that a variant cannot be projected into the
// requested coordinate system, e.g. a genomic position not covered by
// any exon of the requested transcript.
type MappingError struct {
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("hgvserr: mapping error: %s", e.Reason)
}

// TranslationError reports a start codon absent where required, or a
// premature truncation where the caller disallowed one.
type TranslationError struct {
	Reason string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("hgvserr: translation error: %s", e.Reason)
}
