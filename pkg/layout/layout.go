package layout

import (
	"slices"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/widget"
)

// Layout is an immutable snapshot of a widget set.
// The zero value is an empty layout.
type Layout struct {
	widgets []widget.Widget // seed order
	index   map[string]int  // id -> position in widgets; never mutated after New
}

// New builds a layout from seed widgets. Seed order is kept as the catalog
// order. Spans are clamped. Seeds may already be placed as long as their
// ranks form a dense 0..n-1 sequence.
func New(seed []widget.Widget) (Layout, error) {
	l := Layout{
		widgets: make([]widget.Widget, len(seed)),
		index:   make(map[string]int, len(seed)),
	}
	for i, w := range seed {
		if err := errs.ValidateWidgetID(w.ID); err != nil {
			return Layout{}, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "widget %d", i)
		}
		if _, dup := l.index[w.ID]; dup {
			return Layout{}, errs.New(errs.ErrCodeInvalidCatalog, "duplicate widget id %q", w.ID)
		}
		if !w.Category.Valid() {
			return Layout{}, errs.New(errs.ErrCodeInvalidCatalog, "widget %q has unknown category %q", w.ID, w.Category)
		}
		w = w.Clone()
		w.Span = widget.ClampSpan(w.Span)
		l.widgets[i] = w
		l.index[w.ID] = i
	}
	if err := l.Validate(); err != nil {
		return Layout{}, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "seed placement")
	}
	return l, nil
}

// Len returns the total number of widgets.
func (l Layout) Len() int { return len(l.widgets) }

// PlacedCount returns the number of widgets on the surface.
func (l Layout) PlacedCount() int {
	n := 0
	for _, w := range l.widgets {
		if w.IsPlaced() {
			n++
		}
	}
	return n
}

// Widget returns a copy of the widget with the given id.
func (l Layout) Widget(id string) (widget.Widget, bool) {
	i, ok := l.index[id]
	if !ok {
		return widget.Widget{}, false
	}
	return l.widgets[i].Clone(), true
}

// Widgets returns copies of all widgets in seed order.
func (l Layout) Widgets() []widget.Widget {
	out := make([]widget.Widget, len(l.widgets))
	for i, w := range l.widgets {
		out[i] = w.Clone()
	}
	return out
}

// Rank returns the surface rank of id, or false if id is unknown or unplaced.
func (l Layout) Rank(id string) (int, bool) {
	i, ok := l.index[id]
	if !ok {
		return 0, false
	}
	return l.widgets[i].Location.Rank()
}

// SurfaceIDs returns the ids of placed widgets in rank order.
func (l Layout) SurfaceIDs() []string {
	ids := make([]string, l.PlacedCount())
	for _, w := range l.widgets {
		if rank, ok := w.Location.Rank(); ok {
			ids[rank] = w.ID
		}
	}
	return ids
}

// CatalogIDs returns the ids of unplaced widgets in seed order.
func (l Layout) CatalogIDs() []string {
	ids := make([]string, 0, len(l.widgets))
	for _, w := range l.widgets {
		if !w.IsPlaced() {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// Equal reports whether two snapshots hold the same widgets with the same
// placement and span, in the same seed order.
func (l Layout) Equal(other Layout) bool {
	return slices.EqualFunc(l.widgets, other.widgets, func(a, b widget.Widget) bool {
		return a.ID == b.ID &&
			a.Category == b.Category &&
			a.Title == b.Title &&
			a.Description == b.Description &&
			slices.Equal(a.Tags, b.Tags) &&
			a.Span == b.Span &&
			a.Location == b.Location
	})
}

// Validate checks the snapshot invariants: unique ids, spans within range,
// and surface ranks forming a dense 0..n-1 permutation.
func (l Layout) Validate() error {
	seen := make(map[string]bool, len(l.widgets))
	var ranks []int
	for _, w := range l.widgets {
		if seen[w.ID] {
			return errs.New(errs.ErrCodeInternal, "widget %q appears twice", w.ID)
		}
		seen[w.ID] = true
		if w.Span != widget.ClampSpan(w.Span) {
			return errs.New(errs.ErrCodeInternal, "widget %q has span %d outside %d..%d", w.ID, w.Span, widget.MinSpan, widget.MaxSpan)
		}
		if r, ok := w.Location.Rank(); ok {
			ranks = append(ranks, r)
		}
	}
	slices.Sort(ranks)
	for i, r := range ranks {
		if r != i {
			return errs.New(errs.ErrCodeInternal, "surface ranks are not dense: %v", ranks)
		}
	}
	return nil
}

// lookup returns the stored widget without copying.
func (l Layout) lookup(id string) (widget.Widget, bool) {
	i, ok := l.index[id]
	if !ok {
		return widget.Widget{}, false
	}
	return l.widgets[i], true
}

// clone copies the widget slice. The index is shared because it never changes.
func (l Layout) clone() Layout {
	next := Layout{widgets: make([]widget.Widget, len(l.widgets)), index: l.index}
	for i, w := range l.widgets {
		next.widgets[i] = w.Clone()
	}
	return next
}

// arrange returns a copy of l whose surface is exactly order, ranked densely.
// Widgets missing from order become unplaced; spans are untouched.
func (l Layout) arrange(order []string) Layout {
	ranks := make(map[string]int, len(order))
	for i, id := range order {
		ranks[id] = i
	}
	next := l.clone()
	for i := range next.widgets {
		if r, ok := ranks[next.widgets[i].ID]; ok {
			next.widgets[i].Location = widget.PlacedAt(r)
		} else {
			next.widgets[i].Location = widget.Unplaced()
		}
	}
	return next
}
