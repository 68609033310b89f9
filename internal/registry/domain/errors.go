package registry

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrNotFound          = errors.New("clade not found")
	ErrDatasetIntegrity  = errors.New("dataset integrity violation")
	ErrEmptyClade        = errors.New("clade name cannot be empty")
	ErrDuplicateClade    = errors.New("duplicate clade")
	ErrNoMotifs          = errors.New("motif list cannot be empty")
	ErrEmptyMotif        = errors.New("motif cannot be empty")
	ErrInvalidNucleotide = errors.New("invalid nucleotide")
	ErrCountMismatch     = errors.New("declared motif count does not match motifs")
)

// NotFoundError is returned by Lookup for a clade that is not in the registry.
// The clade is kept verbatim so callers can report it back unchanged.
type NotFoundError struct {
	Clade string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("clade %q not found", e.Clade)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IntegrityError describes one dataset row that failed validation.
// Row is the zero-based position of the entry in the dataset.
type IntegrityError struct {
	Row   int
	Clade string
	Err   error
}

func (e *IntegrityError) Error() string {
	if e.Clade == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Clade, e.Err)
}

// Unwrap exposes the specific cause (ErrDuplicateClade, ErrInvalidNucleotide, ...).
func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDatasetIntegrity.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrDatasetIntegrity
}
