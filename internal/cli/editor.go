package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

// Editor styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	paneActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	paneInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
)

const editorHelp = "tab switch pane  ↑/↓ ←/→ move  ⏎ place/remove  [ ] nudge  1-6 size  +/- step  q quit"

// pane identifies which half of the editor has focus.
type pane int

const (
	paneCatalog pane = iota
	paneSurface
)

// =============================================================================
// EditorModel - Interactive dashboard editor
// =============================================================================

// EditorModel is the bubbletea model for the edit command. Every key press
// becomes at most one intent on Engine.
type EditorModel struct {
	Engine *layout.Engine

	ctx       context.Context
	pane      pane
	catCursor int
	surCursor int
	cellWidth int
	status    string
	statusErr bool
	// statusIdle marks an intent that applied cleanly but changed nothing.
	statusIdle bool
}

// NewEditorModel creates an editor over engine with the catalog focused.
func NewEditorModel(ctx context.Context, engine *layout.Engine) EditorModel {
	return EditorModel{
		Engine:    engine,
		ctx:       ctx,
		cellWidth: defaultCellWidth,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cellWidth = cellWidthFor(msg.Width)
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.pane == paneCatalog {
				m.pane = paneSurface
			} else {
				m.pane = paneCatalog
			}
		case "up", "k", "left", "h":
			m.move(-1)
		case "down", "j", "right", "l":
			m.move(1)
		case "enter", " ":
			m.toggle()
		case "[":
			m.nudge(layout.Left)
		case "]":
			m.nudge(layout.Right)
		case "+", "=":
			m.step(1)
		case "-":
			m.step(-1)
		default:
			if n := presetIndex(key); n >= 0 {
				m.resize(widget.PresetSpans[n])
			}
		}
	}
	return m, nil
}

func (m *EditorModel) move(delta int) {
	l, _ := m.Engine.Snapshot()
	if m.pane == paneCatalog {
		m.catCursor = clampCursor(m.catCursor+delta, l.Len()-l.PlacedCount())
	} else {
		m.surCursor = clampCursor(m.surCursor+delta, l.PlacedCount())
	}
}

// toggle places the catalog selection or removes the surface selection.
func (m *EditorModel) toggle() {
	if m.pane == paneCatalog {
		if id, ok := m.catalogSelection(); ok {
			m.apply(layout.PlaceIntent{WidgetID: id})
		}
		return
	}
	if id, ok := m.surfaceSelection(); ok {
		m.apply(layout.RemoveIntent{WidgetID: id})
	}
}

// nudge moves the surface selection and keeps the cursor on it.
func (m *EditorModel) nudge(dir layout.Direction) {
	id, ok := m.surfaceSelection()
	if m.pane != paneSurface || !ok {
		return
	}
	m.apply(layout.NudgeIntent{WidgetID: id, Direction: dir})
	l, _ := m.Engine.Snapshot()
	if rank, ok := l.Rank(id); ok {
		m.surCursor = rank
	}
}

func (m *EditorModel) resize(span int) {
	id, ok := m.surfaceSelection()
	if m.pane != paneSurface || !ok {
		return
	}
	m.apply(layout.ResizeIntent{WidgetID: id, Span: span})
}

func (m *EditorModel) step(delta int) {
	id, ok := m.surfaceSelection()
	if m.pane != paneSurface || !ok {
		return
	}
	l, _ := m.Engine.Snapshot()
	w, _ := l.Widget(id)
	m.apply(layout.ResizeIntent{WidgetID: id, Span: w.Span + delta})
}

func (m *EditorModel) apply(in layout.Intent) {
	res, err := m.Engine.Apply(m.ctx, in)
	switch {
	case err != nil:
		m.status, m.statusErr = errs.UserMessage(err), true
	case res.Changed():
		m.status, m.statusErr = fmt.Sprintf("%s %s", in.Kind(), in.Subject()), false
	default:
		m.status, m.statusErr = fmt.Sprintf("%s %s (unchanged)", in.Kind(), in.Subject()), false
	}
	m.statusIdle = err == nil && !res.Changed()
	l, _ := m.Engine.Snapshot()
	m.catCursor = clampCursor(m.catCursor, l.Len()-l.PlacedCount())
	m.surCursor = clampCursor(m.surCursor, l.PlacedCount())
}

func (m EditorModel) catalogSelection() (string, bool) {
	l, _ := m.Engine.Snapshot()
	ws := l.Catalog().Widgets()
	if m.catCursor < 0 || m.catCursor >= len(ws) {
		return "", false
	}
	return ws[m.catCursor].ID, true
}

func (m EditorModel) surfaceSelection() (string, bool) {
	l, _ := m.Engine.Snapshot()
	ids := l.SurfaceIDs()
	if m.surCursor < 0 || m.surCursor >= len(ids) {
		return "", false
	}
	return ids[m.surCursor], true
}

func (m EditorModel) View() string {
	l, _ := m.Engine.Snapshot()
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridboard"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(editorHelp))
	b.WriteString("\n\n")

	b.WriteString(m.paneTitle(paneCatalog, "Catalog"))
	b.WriteString("\n")
	selected, _ := m.catalogSelection()
	for _, g := range l.Catalog().Groups {
		b.WriteString(lipgloss.NewStyle().Foreground(categoryColor(g.Category)).Render(string(g.Category)))
		b.WriteString("\n")
		if g.Empty() {
			b.WriteString("    " + listDimStyle.Render(allAddedText) + "\n")
			continue
		}
		for _, w := range g.Widgets {
			cursor := "  "
			style := listNormalStyle
			if m.pane == paneCatalog && w.ID == selected {
				cursor = "▸ "
				style = listSelectedStyle
			}
			line := fmt.Sprintf("%s%-20s %s", cursor, w.Label(), listDimStyle.Render(fmt.Sprintf("span %d", w.Span)))
			b.WriteString("  " + style.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.paneTitle(paneSurface, fmt.Sprintf("Surface (%d)", l.PlacedCount())))
	b.WriteString("\n")
	highlight := ""
	if m.pane == paneSurface {
		highlight, _ = m.surfaceSelection()
	}
	b.WriteString(renderSurface(l.Surface(), m.cellWidth, highlight))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		switch {
		case m.statusErr:
			b.WriteString(StyleError.Render(iconError + " " + m.status))
		case m.statusIdle:
			b.WriteString(StyleWarning.Render(m.status))
		default:
			b.WriteString(StyleSuccess.Render(iconSuccess + " " + m.status))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m EditorModel) paneTitle(p pane, title string) string {
	if m.pane == p {
		return paneActiveStyle.Render("▌" + title)
	}
	return paneInactiveStyle.Render(" " + title)
}

// =============================================================================
// Helpers
// =============================================================================

// presetIndex maps the keys "1".."6" to indexes into widget.PresetSpans.
func presetIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || int(key[0]-'1') >= len(widget.PresetSpans) {
		return -1
	}
	return int(key[0] - '1')
}

func clampCursor(i, n int) int {
	if n <= 0 {
		return 0
	}
	return max(0, min(i, n-1))
}
