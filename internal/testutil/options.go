package testutil

// cladeData holds one dataset row before encoding.
type cladeData struct {
	name   string
	motifs []string
	count  *int
}

// CladeOption configures a clade during builder setup.
type CladeOption func(*cladeData)

// Motifs sets the clade's motifs in curation order.
func Motifs(motifs ...string) CladeOption {
	return func(c *cladeData) {
		c.motifs = motifs
	}
}

// Count declares a motif count for the clade.
func Count(n int) CladeOption {
	return func(c *cladeData) {
		c.count = &n
	}
}
