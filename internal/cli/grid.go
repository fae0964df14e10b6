package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

const (
	// defaultCellWidth is the terminal width of one grid column.
	defaultCellWidth = 6
	minCellWidth     = 4

	placeholderText = "Drop items here"
	allAddedText    = "All items added"
)

// cellWidthFor fits the 12-column grid into a terminal of the given width.
func cellWidthFor(termWidth int) int {
	if termWidth <= 0 {
		return defaultCellWidth
	}
	return max(minCellWidth, min(defaultCellWidth, termWidth/widget.Columns))
}

// renderSurface draws the surface as rows of bordered boxes whose width is
// proportional to their span. The widget with id selected gets a thick
// border.
func renderSurface(v layout.SurfaceView, cellWidth int, selected string) string {
	if v.Len() == 0 {
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDim).
			Foreground(colorDim).
			Width(widget.Columns*cellWidth - 2).
			Align(lipgloss.Center).
			Render(placeholderText)
	}

	rows := make([]string, 0, v.Rows)
	for r := 0; r < v.Rows; r++ {
		var boxes []string
		for _, s := range v.Row(r) {
			boxes = append(boxes, renderSlot(s, cellWidth, s.Widget.ID == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderSlot(s layout.Slot, cellWidth int, selected bool) string {
	inner := s.Span*cellWidth - 2
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(categoryColor(s.Widget.Category)).
		Width(inner)
	if selected {
		style = style.Bold(true)
	}
	body := truncate(s.Widget.Label(), inner) + "\n" + StyleDim.Render(truncate(fmt.Sprintf("span %d", s.Span), inner))
	return style.Render(body)
}

// renderCatalogTable lists unplaced widgets grouped by category.
func renderCatalogTable(v layout.CatalogView) string {
	var rows [][]string
	var cats []widget.Category
	for _, g := range v.Groups {
		if g.Empty() {
			rows = append(rows, []string{string(g.Category), "", allAddedText, "", ""})
			cats = append(cats, g.Category)
			continue
		}
		for _, w := range g.Widgets {
			rows = append(rows, []string{string(g.Category), w.ID, w.Label(), fmt.Sprint(w.Span), strings.Join(w.Tags, ", ")})
			cats = append(cats, g.Category)
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "ID", "Title", "Span", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(cats) {
				return base
			}
			switch col {
			case 0:
				return base.Foreground(categoryColor(cats[row]))
			case 2:
				if rows[row][1] == "" {
					return base.Foreground(colorDim).Italic(true)
				}
				return base.Foreground(colorWhite)
			default:
				return base.Foreground(colorGray)
			}
		})
	return t.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
