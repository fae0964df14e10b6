package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

// DefaultColumnWidth is the width of one grid column in inches.
const DefaultColumnWidth = 0.8

// PlaceholderLabel is shown when nothing is placed.
const PlaceholderLabel = "Drop items here"

var categoryFill = map[widget.Category]string{
	widget.CategorySales:    "#dbeafe",
	widget.CategoryMetrics:  "#dcfce7",
	widget.CategoryEarnings: "#fef3c7",
}

// Options configures surface rendering.
type Options struct {
	// ColumnWidth is the width of one column in inches. Zero means
	// DefaultColumnWidth.
	ColumnWidth float64
	// Detailed adds the widget id and span to each label.
	Detailed bool
}

// ToDOT converts a surface view to Graphviz DOT source.
func ToDOT(v layout.SurfaceView, opts Options) string {
	colWidth := opts.ColumnWidth
	if colWidth <= 0 {
		colWidth = DefaultColumnWidth
	}

	var buf bytes.Buffer
	buf.WriteString("digraph surface {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, fixedsize=true, height=0.9];\n")
	buf.WriteString("  edge [style=invis];\n")
	buf.WriteString("  ranksep=0.2;\n")
	buf.WriteString("  nodesep=0.1;\n")

	if v.Len() == 0 {
		fmt.Fprintf(&buf, "  placeholder [label=%q, width=%.2f, style=\"rounded,dashed\"];\n",
			PlaceholderLabel, float64(widget.Columns)*colWidth)
		buf.WriteString("}\n")
		return buf.String()
	}

	for r := 0; r < v.Rows; r++ {
		row := v.Row(r)
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph row_%d {\n", r)
		buf.WriteString("    rank=same;\n")
		for _, s := range row {
			fmt.Fprintf(&buf, "    %q [%s];\n", s.Widget.ID, strings.Join(slotAttrs(s, colWidth, opts.Detailed), ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for r := 0; r < v.Rows; r++ {
		row := v.Row(r)
		for i := 1; i < len(row); i++ {
			fmt.Fprintf(&buf, "  %q -> %q;\n", row[i-1].Widget.ID, row[i].Widget.ID)
		}
		if r > 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", v.Row(r - 1)[0].Widget.ID, row[0].Widget.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func slotAttrs(s layout.Slot, colWidth float64, detailed bool) []string {
	return []string{
		fmt.Sprintf("label=%q", slotLabel(s, detailed)),
		fmt.Sprintf("width=%.2f", float64(s.Span)*colWidth),
		fmt.Sprintf("fillcolor=%q", fillFor(s.Widget.Category)),
	}
}

func slotLabel(s layout.Slot, detailed bool) string {
	label := s.Widget.Label()
	if detailed {
		label += fmt.Sprintf("\n%s · span %d", s.Widget.ID, s.Span)
	}
	return label
}

func fillFor(c widget.Category) string {
	if fill, ok := categoryFill[c]; ok {
		return fill
	}
	return "white"
}
