// Package help contains the browser's help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgonzale60/telomeric-identifier/internal/dataset"
	"github.com/pgonzale60/telomeric-identifier/internal/keys"
	"github.com/pgonzale60/telomeric-identifier/internal/ui/overlay"
	"github.com/pgonzale60/telomeric-identifier/internal/ui/styles"
)

// Nucleotide describes one letter of the motif alphabet.
type Nucleotide struct {
	Base string
	Name string
}

// Nucleotides returns the motif alphabet in display order.
func Nucleotides() []Nucleotide {
	return []Nucleotide{
		{Base: "A", Name: "adenine"},
		{Base: "C", Name: "cytosine"},
		{Base: "G", Name: "guanine"},
		{Base: "T", Name: "thymine"},
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(9)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.BrowseKeyMap
	width  int
	height int
}

// New creates a help view for the browser keybindings.
func New() Model {
	return Model{keys: keys.Browse}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centred in an empty viewport.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderBinding(m.keys.Up))
	navCol.WriteString(renderBinding(m.keys.Down))
	navCol.WriteString(renderBinding(m.keys.Top))
	navCol.WriteString(renderBinding(m.keys.Bottom))

	var filterCol strings.Builder
	filterCol.WriteString(sectionStyle.Render("Filter"))
	filterCol.WriteString("\n")
	filterCol.WriteString(renderBinding(m.keys.Filter))
	filterCol.WriteString(renderBinding(m.keys.Accept))
	filterCol.WriteString(renderBinding(m.keys.ClearFilter))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(m.keys.Help))
	generalCol.WriteString(renderBinding(m.keys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(filterCol.String()),
		generalCol.String(),
	)

	var legend strings.Builder
	legend.WriteString(sectionStyle.Render("Motif alphabet"))
	legend.WriteString("\n")
	for _, n := range Nucleotides() {
		legend.WriteString(renderKeyDesc(styles.RenderMotif(n.Base), n.Name))
	}

	source := descStyle.Render("Data: " + dataset.SourceTitle)

	boxWidth := max(lipgloss.Width(columns), lipgloss.Width(source)) + 4

	body := contentStyle.Render(
		columns + "\n" + legend.String() + "\n" + source + "\n" + footerStyle.Render("Press ? or Esc to close"),
	)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(dividerStyle.Render(strings.Repeat("─", boxWidth)))
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return renderKeyDesc(h.Key, h.Desc)
}

func renderKeyDesc(k, desc string) string {
	return keyStyle.Render(k) + descStyle.Render(desc) + "\n"
}
