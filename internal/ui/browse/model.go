// Package browse provides an interactive terminal browser over the clade registry.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgonzale60/telomeric-identifier/internal/keys"
	"github.com/pgonzale60/telomeric-identifier/internal/log"
	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
	helpoverlay "github.com/pgonzale60/telomeric-identifier/internal/ui/help"
	"github.com/pgonzale60/telomeric-identifier/internal/ui/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	listWidth     = 24
)

// Source is the read-only view of the registry the browser needs.
type Source interface {
	Clades() []string
	Lookup(clade string) (registry.Record, error)
}

// Model holds the browser state.
type Model struct {
	src       Source
	clades    []string // all clades, registry order
	visible   []string // clades matching the filter
	selected  int      // index into visible
	offset    int      // first visible row of the list
	filter    textinput.Model
	filtering bool
	keys      keys.BrowseKeyMap
	help      help.Model
	overlay   helpoverlay.Model
	showHelp  bool
	width     int
	height    int
	quitting  bool
}

// New creates a browser over src.
func New(src Source) Model {
	ti := textinput.New()
	ti.Placeholder = "filter clades"
	ti.Prompt = "/"
	ti.CharLimit = 64

	clades := src.Clades()
	return Model{
		src:     src,
		clades:  clades,
		visible: clades,
		filter:  ti,
		keys:    keys.Browse,
		help:    help.New(),
		overlay: helpoverlay.New().SetSize(defaultWidth, defaultHeight),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the record under the cursor.
func (m Model) Selected() (registry.Record, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return registry.Record{}, false
	}
	rec, err := m.src.Lookup(m.visible[m.selected])
	if err != nil {
		log.ErrorErr(log.CatUI, "selected clade missing from registry", err)
		return registry.Record{}, false
	}
	return rec, true
}

// Visible returns the clades currently shown in the list.
func (m Model) Visible() []string {
	return m.visible
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.overlay = m.overlay.SetSize(msg.Width, msg.Height)
		m.clampOffset()
		return m, nil
	case tea.KeyMsg:
		if m.showHelp {
			return m.updateHelp(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.ClearFilter), key.Matches(msg, m.keys.Quit):
		m.showHelp = false
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		if len(m.visible) > 0 {
			m.selected = len(m.visible) - 1
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.ClearFilter):
		m.filter.SetValue("")
		m.applyFilter()
	}
	m.clampOffset()
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Only ctrl+c quits while typing; "q" is a valid filter character.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.ClearFilter):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.Accept):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible clades with a case-insensitive substring match.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.visible = m.clades
	} else {
		visible := make([]string, 0, len(m.clades))
		for _, c := range m.clades {
			if strings.Contains(strings.ToLower(c), query) {
				visible = append(visible, c)
			}
		}
		m.visible = visible
		log.Debug(log.CatUI, "filter applied", "query", query, "matches", len(visible))
	}
	m.selected = 0
	m.offset = 0
}

func (m Model) listRows() int {
	// borders (2), filter line (1), help line (1)
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	rows := m.listRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	list := m.renderList()
	detail := m.renderDetail()

	listStyle := styles.PaneStyle
	if m.filtering {
		listStyle = styles.FocusedPaneStyle
	}
	rows := m.listRows()
	left := listStyle.Width(listWidth).Height(rows).Render(list)

	detailWidth := m.width - listWidth - 6
	if detailWidth < 20 {
		detailWidth = 20
	}
	right := styles.PaneStyle.Width(detailWidth).Height(rows).Render(detail)

	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d clades • ", len(m.visible), len(m.clades))))
	b.WriteString(m.help.View(m.keys))

	if m.showHelp {
		return m.overlay.Overlay(b.String())
	}
	return b.String()
}

func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return styles.MutedStyle.Render("no matching clades")
	}

	end := m.offset + m.listRows()
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		name := styles.TruncateString(m.visible[i], listWidth-2)
		if i == m.selected {
			b.WriteString(styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(name))
		} else {
			b.WriteString(" " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderDetail() string {
	rec, ok := m.Selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(rec.Clade()))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d telomeric repeat unit(s)", rec.MotifCount())))
	b.WriteString("\n\n")
	for _, motif := range rec.Motifs() {
		b.WriteString(styles.RenderMotif(motif))
		b.WriteString("\n")
	}
	return b.String()
}
