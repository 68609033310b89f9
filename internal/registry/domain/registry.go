package registry

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

// Registry maps clade names to their telomeric repeat records.
//
// A Registry is populated once by New and never changes afterwards, so it is
// safe for concurrent use without locking.
type Registry struct {
	records map[string]Record
	clades  []string // sorted keys of records
}

// New validates entries and builds a registry from them.
// Every violation in the dataset is reported; the returned error joins one
// *IntegrityError per problem and matches ErrDatasetIntegrity.
func New(entries []Entry) (*Registry, error) {
	var errs []error
	records := make(map[string]Record, len(entries))
	// seen includes rows that failed validation so a later reuse of the
	// name is still reported as a duplicate.
	seen := make(map[string]struct{}, len(entries))

	for row, e := range entries {
		if _, dup := seen[e.Clade]; dup && e.Clade != "" {
			errs = append(errs, &IntegrityError{Row: row, Clade: e.Clade, Err: ErrDuplicateClade})
			continue
		}
		seen[e.Clade] = struct{}{}

		if err := validateEntry(e); err != nil {
			errs = append(errs, &IntegrityError{Row: row, Clade: e.Clade, Err: err})
			continue
		}
		records[e.Clade] = newRecord(e.Clade, e.Motifs)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	clades := make([]string, 0, len(records))
	for clade := range records {
		clades = append(clades, clade)
	}
	sort.Strings(clades)

	return &Registry{
		records: records,
		clades:  clades,
	}, nil
}

// validateEntry checks a single entry in isolation (duplicates are checked by New).
func validateEntry(e Entry) error {
	if e.Clade == "" {
		return ErrEmptyClade
	}
	if len(e.Motifs) == 0 {
		return ErrNoMotifs
	}
	for i, m := range e.Motifs {
		if err := ValidateMotif(m); err != nil {
			return fmt.Errorf("motif %d: %w", i, err)
		}
	}
	if e.Count != nil && *e.Count != len(e.Motifs) {
		return fmt.Errorf("%w: declared %d, found %d", ErrCountMismatch, *e.Count, len(e.Motifs))
	}
	return nil
}

// Lookup returns the record for clade. Matching is exact and case-sensitive.
// An unknown clade yields a *NotFoundError.
func (r *Registry) Lookup(clade string) (Record, error) {
	rec, ok := r.records[clade]
	if !ok {
		return Record{}, &NotFoundError{Clade: clade}
	}
	return rec, nil
}

// Has reports whether clade is a known key.
func (r *Registry) Has(clade string) bool {
	_, ok := r.records[clade]
	return ok
}

// Clades returns every clade name in lexicographic order.
func (r *Registry) Clades() []string {
	out := make([]string, len(r.clades))
	copy(out, r.clades)
	return out
}

// All yields every record in Clades order. Each call starts a fresh traversal.
func (r *Registry) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, clade := range r.clades {
			if !yield(r.records[clade]) {
				return
			}
		}
	}
}

// Len returns the number of clades.
func (r *Registry) Len() int {
	return len(r.clades)
}
