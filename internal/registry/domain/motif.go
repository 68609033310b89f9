package registry

import "fmt"

// nucleotides is the motif alphabet. Lower-case and IUPAC ambiguity codes are rejected.
var nucleotides = [256]bool{
	'A': true,
	'C': true,
	'G': true,
	'T': true,
}

// ValidateMotif checks that motif is non-empty and uses only A, C, G and T.
func ValidateMotif(motif string) error {
	if motif == "" {
		return ErrEmptyMotif
	}
	for i := 0; i < len(motif); i++ {
		if !nucleotides[motif[i]] {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidNucleotide, motif[i], i)
		}
	}
	return nil
}
