// Package overlay draws a box on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where the box is placed vertically.
type Position int

const (
	// Center places the box in the middle of the viewport.
	Center Position = iota
	// Top places the box PadY rows below the top edge.
	Top
)

// Config controls overlay rendering.
type Config struct {
	Width    int
	Height   int
	Position Position
	PadY     int
}

// Place renders fg over bg. Styling in both is preserved because the
// background is cut with ANSI-aware truncation.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bgLine starting at column x with fgLine.
func splice(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	if end := x + ansi.StringWidth(fgLine); end < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, end, "")
	}
	return left + fgLine + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = max((cfg.Width-fgWidth)/2, 0)
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return x, max(y, 0)
}
