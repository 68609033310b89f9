package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRecordSource(t *testing.T) {
	dtos := FromRecordSource(newTestRegistry(t))

	require.Len(t, dtos, 3)
	require.Equal(t, "Araneae", dtos[0].Clade)
	for _, d := range dtos {
		require.Equal(t, len(d.Motifs), d.MotifCount)
	}
}

func TestFormatter_FormatRecords(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	require.NoError(t, f.FormatRecords(FromRecordSource(newTestRegistry(t))))

	var got []RecordDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	require.Equal(t, "Primates", got[2].Clade)
	require.Equal(t, []string{"AATGG"}, got[2].Motifs)
	require.Equal(t, 1, got[2].MotifCount)
	require.Contains(t, buf.String(), `"motif_count": 1`)
}

func TestFormatter_FormatRecordText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	err := f.FormatRecordText(RecordDTO{Clade: "Solanales", Motifs: []string{"AACCCTG", "AAACCCT"}, MotifCount: 2}, "")
	require.NoError(t, err)
	require.Equal(t, "Solanales\tAACCCTG, AAACCCT\t2\n", buf.String())
}

func TestFormatter_FormatClades(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	require.NoError(t, f.FormatClades([]string{"Anura", "Araneae"}, false))
	require.Equal(t, "Anura\nAraneae\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatClades([]string{"Anura", "Araneae"}, true))
	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, []string{"Anura", "Araneae"}, got)
}
