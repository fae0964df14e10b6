package layout

import "github.com/matzehuels/gridboard/pkg/widget"

// CategoryGroup is one catalog section.
type CategoryGroup struct {
	Category widget.Category
	Widgets  []widget.Widget
}

// Empty reports whether every widget of the category has been placed.
func (g CategoryGroup) Empty() bool { return len(g.Widgets) == 0 }

// CatalogView lists unplaced widgets grouped by category. Every category is
// present, in display order, even when empty. Within a group widgets keep
// seed order.
type CatalogView struct {
	Groups []CategoryGroup
}

// Len returns the number of unplaced widgets.
func (v CatalogView) Len() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Widgets)
	}
	return n
}

// Group returns the section for c.
func (v CatalogView) Group(c widget.Category) (CategoryGroup, bool) {
	for _, g := range v.Groups {
		if g.Category == c {
			return g, true
		}
	}
	return CategoryGroup{}, false
}

// Widgets flattens the view in display order.
func (v CatalogView) Widgets() []widget.Widget {
	out := make([]widget.Widget, 0, v.Len())
	for _, g := range v.Groups {
		out = append(out, g.Widgets...)
	}
	return out
}

// Catalog projects the unplaced widgets.
func (l Layout) Catalog() CatalogView {
	cats := widget.Categories()
	groups := make([]CategoryGroup, len(cats))
	pos := make(map[widget.Category]int, len(cats))
	for i, c := range cats {
		groups[i] = CategoryGroup{Category: c}
		pos[c] = i
	}
	for _, w := range l.widgets {
		if w.IsPlaced() {
			continue
		}
		i := pos[w.Category]
		groups[i].Widgets = append(groups[i].Widgets, w.Clone())
	}
	return CatalogView{Groups: groups}
}

// Slot is a placed widget annotated for grid placement.
type Slot struct {
	Widget widget.Widget
	Rank   int
	Span   int
	Row    int // zero-based grid row after wrapping
	Column int // zero-based start column within Row
	First  bool
	Last   bool
}

// SurfaceView lists placed widgets in rank order.
type SurfaceView struct {
	Slots []Slot
	Rows  int
}

// Len returns the number of placed widgets.
func (v SurfaceView) Len() int { return len(v.Slots) }

// IDs returns widget ids in rank order.
func (v SurfaceView) IDs() []string {
	ids := make([]string, len(v.Slots))
	for i, s := range v.Slots {
		ids[i] = s.Widget.ID
	}
	return ids
}

// Row returns the slots that share grid row n.
func (v SurfaceView) Row(n int) []Slot {
	var out []Slot
	for _, s := range v.Slots {
		if s.Row == n {
			out = append(out, s)
		}
	}
	return out
}

// Surface projects the placed widgets. Rows wrap the way a 12-column CSS
// grid auto-places items: a widget that does not fit in the remaining
// columns starts a new row.
func (l Layout) Surface() SurfaceView {
	ids := l.SurfaceIDs()
	v := SurfaceView{Slots: make([]Slot, len(ids))}
	row, col := 0, 0
	for i, id := range ids {
		w := l.widgets[l.index[id]].Clone()
		if col+w.Span > widget.Columns {
			row++
			col = 0
		}
		v.Slots[i] = Slot{
			Widget: w,
			Rank:   i,
			Span:   w.Span,
			Row:    row,
			Column: col,
			First:  i == 0,
			Last:   i == len(ids)-1,
		}
		col += w.Span
	}
	if len(ids) > 0 {
		v.Rows = row + 1
	}
	return v
}
