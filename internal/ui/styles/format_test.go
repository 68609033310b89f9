package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits", input: "Primates", maxWidth: 10, want: "Primates"},
		{name: "exact", input: "Primates", maxWidth: 8, want: "Primates"},
		{name: "ellipsis", input: "Accipitriformes", maxWidth: 8, want: "Accip..."},
		{name: "tiny width", input: "Accipitriformes", maxWidth: 3, want: "Acc"},
		{name: "zero width", input: "Primates", maxWidth: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TruncateString(tt.input, tt.maxWidth))
		})
	}
}

func TestRenderMotif_PlainProfileKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	require.Equal(t, "AACCCT", RenderMotif("AACCCT"))
}
