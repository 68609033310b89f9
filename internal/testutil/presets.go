package testutil

// WithSampleClades adds four real clades from the curated dataset.
//
//	Araneae      6 motifs, includes AACTTGT
//	Hemiptera    2 motifs
//	Hymenoptera  2 motifs, first AACGAC
//	Primates     1 motif, AATGG
func (b *Builder) WithSampleClades() *Builder {
	return b.
		WithClade("Araneae", Motifs("AAAGC", "AATAT", "AACAT", "ACATG", "AACTTGT", "ACTAT")).
		WithClade("Hemiptera", Motifs("AACCT", "AACCCT")).
		WithClade("Hymenoptera", Motifs("AACGAC", "ACTCT")).
		WithClade("Primates", Motifs("AATGG"))
}

// WithBrokenClades adds rows that break three different integrity rules:
// a duplicate clade, an invalid nucleotide and a count mismatch.
func (b *Builder) WithBrokenClades() *Builder {
	return b.
		WithClade("Anura", Motifs("AACCCT")).
		WithClade("Anura", Motifs("AACCCT")).
		WithClade("Araneae", Motifs("AACNT")).
		WithClade("Primates", Motifs("AATGG"), Count(2))
}
