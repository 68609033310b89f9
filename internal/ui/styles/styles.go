// Package styles contains Lip Gloss style definitions for the clade browser.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusedColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#54A0FF"}

	// Overlay
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#8C8C8C"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#FFFFFF"}

	// Nucleotide colors for motif display
	BaseAColor = lipgloss.AdaptiveColor{Light: "#27AE60", Dark: "#73F59F"}
	BaseCColor = lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#54A0FF"}
	BaseGColor = lipgloss.AdaptiveColor{Light: "#D68910", Dark: "#FECA57"}
	BaseTColor = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"}

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderDefaultColor).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.BorderForeground(BorderFocusedColor)
)

var baseStyles = map[rune]lipgloss.Style{
	'A': lipgloss.NewStyle().Foreground(BaseAColor),
	'C': lipgloss.NewStyle().Foreground(BaseCColor),
	'G': lipgloss.NewStyle().Foreground(BaseGColor),
	'T': lipgloss.NewStyle().Foreground(BaseTColor),
}

// RenderMotif colours each nucleotide of motif.
func RenderMotif(motif string) string {
	out := make([]byte, 0, len(motif)*8)
	for _, r := range motif {
		if s, ok := baseStyles[r]; ok {
			out = append(out, s.Render(string(r))...)
			continue
		}
		out = append(out, string(r)...)
	}
	return string(out)
}
