package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_Getters(t *testing.T) {
	rec := newRecord("Solanales", []string{"AACCCTG", "AAACCCT"})

	require.Equal(t, "Solanales", rec.Clade())
	require.Equal(t, []string{"AACCCTG", "AAACCCT"}, rec.Motifs())
	require.Equal(t, 2, rec.MotifCount())
}

func TestRecord_MotifsReturnsCopy(t *testing.T) {
	rec := newRecord("Primates", []string{"AATGG"})

	motifs := rec.Motifs()
	motifs[0] = "GGGGG"

	require.Equal(t, []string{"AATGG"}, rec.Motifs(), "mutating the returned slice must not touch the record")
}

func TestRecord_DoesNotAliasInput(t *testing.T) {
	input := []string{"AACCT"}
	rec := newRecord("Scorpiones", input)

	input[0] = "TTTTT"

	require.Equal(t, "AACCT", rec.String())
}

func TestRecord_Motif(t *testing.T) {
	rec := newRecord("Trochida", []string{"AACATG", "AACCCT"})

	m, ok := rec.Motif(1)
	require.True(t, ok)
	require.Equal(t, "AACCCT", m)

	_, ok = rec.Motif(2)
	require.False(t, ok)
	_, ok = rec.Motif(-1)
	require.False(t, ok)
}

func TestRecord_JoinedMotifs(t *testing.T) {
	rec := newRecord("Trichoptera", []string{"AATGACAGCG", "AACCT"})

	require.Equal(t, "AATGACAGCG, AACCT", rec.String())
	require.Equal(t, "AATGACAGCG|AACCT", rec.JoinedMotifs("|"))
}
