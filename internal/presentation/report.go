package presentation

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/pgonzale60/telomeric-identifier/internal/dataset"
	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
)

// Footer is the provenance note appended to every report.
var Footer = fmt.Sprintf("This table is modified from %q\n%s", dataset.SourceTitle, dataset.SourceURL)

// Column headers
const (
	HeaderClade  = "Clade"
	HeaderMotifs = "Telomeric repeat units"
	HeaderCount  = "Count"
)

// Border names accepted by ReportOptions.Border
const (
	BorderNormal  = "normal"
	BorderRounded = "rounded"
	BorderASCII   = "ascii"
	BorderHidden  = "hidden"
)

// DefaultWrapWidth is the motif column width used when none is configured.
const DefaultWrapWidth = 30

// RecordSource is anything that can enumerate telomere records in display order.
type RecordSource interface {
	All() iter.Seq[registry.Record]
}

// ReportOptions controls the presentation of RenderReport.
type ReportOptions struct {
	WrapWidth int    // 0 disables wrapping of the motif column
	Border    string // one of the Border* names; empty means normal
	Color     bool   // emit ANSI styling
}

// DefaultReportOptions returns the options used by the table command.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		WrapWidth: DefaultWrapWidth,
		Border:    BorderNormal,
	}
}

// CacheKey identifies the rendered output for these options.
func (o ReportOptions) CacheKey() string {
	return fmt.Sprintf("report:w=%d:b=%s:c=%t", o.WrapWidth, o.Border, o.Color)
}

// ValidBorder reports whether name is a supported border.
func ValidBorder(name string) bool {
	switch name {
	case "", BorderNormal, BorderRounded, BorderASCII, BorderHidden:
		return true
	default:
		return false
	}
}

func borderFor(name string) lipgloss.Border {
	switch name {
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	case BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// RenderReport renders every record of src as a table followed by Footer.
// Motif cells are wrapped at word boundaries only, so a motif is never split.
func RenderReport(src RecordSource, opts ReportOptions) string {
	renderer := lipgloss.NewRenderer(io.Discard)
	if opts.Color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	base := renderer.NewStyle().Padding(0, 1)
	header := base
	border := renderer.NewStyle()
	if opts.Color {
		header = header.Bold(true).Foreground(lipgloss.Color("212"))
		border = border.Foreground(lipgloss.Color("240"))
	}
	count := base.Align(lipgloss.Right)

	t := table.New().
		Border(borderFor(opts.Border)).
		BorderStyle(border).
		Headers(HeaderClade, HeaderMotifs, HeaderCount).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 2:
				return count
			default:
				return base
			}
		})

	for rec := range src.All() {
		t.Row(
			rec.Clade(),
			WrapMotifs(rec.JoinedMotifs(registry.DefaultMotifSeparator), opts.WrapWidth),
			strconv.Itoa(rec.MotifCount()),
		)
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(Footer)
	b.WriteString("\n")
	return b.String()
}

// WrapMotifs wraps a joined motif list at width. Breaks only happen at the
// spaces of the separator; a motif longer than width stays on its own line.
func WrapMotifs(joined string, width int) string {
	if width <= 0 {
		return joined
	}
	return wordwrap.String(joined, width)
}

func joinMotifs(motifs []string, sep string) string {
	if sep == "" {
		sep = registry.DefaultMotifSeparator
	}
	return strings.Join(motifs, sep)
}
