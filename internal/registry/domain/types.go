package registry

import "strings"

// DefaultMotifSeparator joins motifs when a record is displayed as a single string.
const DefaultMotifSeparator = ", "

// Entry is one raw row of the curated dataset, before validation.
// Count is the motif count declared by the dataset; nil means undeclared.
type Entry struct {
	Clade  string
	Motifs []string
	Count  *int
}

// Record holds the telomeric repeat motifs known for a single clade.
// Records are immutable; accessors hand out copies.
type Record struct {
	clade  string   // e.g., "Primates"
	motifs []string // curation order, e.g., ["AATGG"]
}

// newRecord creates a record from already validated values (used by New).
func newRecord(clade string, motifs []string) Record {
	owned := make([]string, len(motifs))
	copy(owned, motifs)
	return Record{
		clade:  clade,
		motifs: owned,
	}
}

// Clade returns the clade identifier (the registry key).
func (r Record) Clade() string {
	return r.clade
}

// Motifs returns a copy of the motifs in curation order.
func (r Record) Motifs() []string {
	out := make([]string, len(r.motifs))
	copy(out, r.motifs)
	return out
}

// MotifCount returns the number of motifs. It is always len(Motifs()).
func (r Record) MotifCount() int {
	return len(r.motifs)
}

// Motif returns the motif at index i.
func (r Record) Motif(i int) (string, bool) {
	if i < 0 || i >= len(r.motifs) {
		return "", false
	}
	return r.motifs[i], true
}

// JoinedMotifs joins the motifs with sep.
func (r Record) JoinedMotifs(sep string) string {
	return strings.Join(r.motifs, sep)
}

// String returns the motifs joined with DefaultMotifSeparator.
func (r Record) String() string {
	return r.JoinedMotifs(DefaultMotifSeparator)
}
