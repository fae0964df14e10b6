package layout

import (
	"slices"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/widget"
)

// Outcome classifies the result of applying an intent.
type Outcome int

const (
	// OutcomeUnchanged means the intent was valid but already satisfied.
	OutcomeUnchanged Outcome = iota
	// OutcomeApplied means a new snapshot was produced.
	OutcomeApplied
	// OutcomeRejected means the intent was refused; the layout is untouched.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeApplied:
		return "applied"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Apply dispatches in to the matching transition. Pointers to intents are
// accepted; a nil pointer is rejected as invalid input.
func (l Layout) Apply(in Intent) (Layout, Outcome, error) {
	in, err := normalize(in)
	if err != nil {
		return l, OutcomeRejected, err
	}
	switch v := in.(type) {
	case PlaceIntent:
		return l.Place(v.WidgetID, v.Position)
	case ReorderIntent:
		return l.Reorder(v.WidgetID, v.TargetID)
	case RemoveIntent:
		return l.Remove(v.WidgetID)
	case ResizeIntent:
		return l.Resize(v.WidgetID, v.Span)
	case NudgeIntent:
		return l.Nudge(v.WidgetID, v.Direction)
	default:
		return l, OutcomeRejected, errs.New(errs.ErrCodeUnsupported, "unsupported intent %T", in)
	}
}

// Place moves an unplaced widget onto the surface, appending when position
// is nil. Positions outside [0, n] are clamped into it.
func (l Layout) Place(id string, position *int) (Layout, Outcome, error) {
	w, ok := l.lookup(id)
	if !ok {
		return l, OutcomeRejected, unknownWidget(id)
	}
	if w.IsPlaced() {
		return l, OutcomeUnchanged, nil
	}
	order := l.SurfaceIDs()
	at := len(order)
	if position != nil {
		at = *position
	}
	return l.arrange(insertAt(order, at, id)), OutcomeApplied, nil
}

// Reorder moves id so that it sits immediately before targetID.
func (l Layout) Reorder(id, targetID string) (Layout, Outcome, error) {
	w, ok := l.lookup(id)
	if !ok {
		return l, OutcomeRejected, unknownWidget(id)
	}
	target, ok := l.lookup(targetID)
	if !ok {
		return l, OutcomeRejected, unknownWidget(targetID)
	}
	for _, v := range []widget.Widget{w, target} {
		if !v.IsPlaced() {
			return l, OutcomeRejected, errs.New(errs.ErrCodeInvalidTarget, "widget %q is not on the surface", v.ID)
		}
	}
	if id == targetID {
		return l, OutcomeUnchanged, nil
	}

	order := l.SurfaceIDs()
	rest := without(order, id)
	next := insertAt(rest, slices.Index(rest, targetID), id)
	if slices.Equal(next, order) {
		return l, OutcomeUnchanged, nil
	}
	return l.arrange(next), OutcomeApplied, nil
}

// Remove returns a placed widget to the catalog. Its span is kept so that
// placing it again restores the previous width.
func (l Layout) Remove(id string) (Layout, Outcome, error) {
	w, ok := l.lookup(id)
	if !ok {
		return l, OutcomeRejected, unknownWidget(id)
	}
	if !w.IsPlaced() {
		return l, OutcomeUnchanged, nil
	}
	return l.arrange(without(l.SurfaceIDs(), id)), OutcomeApplied, nil
}

// Resize sets the span of a placed widget, clamped to MinSpan..MaxSpan.
// Catalog widgets keep their width.
func (l Layout) Resize(id string, span int) (Layout, Outcome, error) {
	w, ok := l.lookup(id)
	if !ok {
		return l, OutcomeRejected, unknownWidget(id)
	}
	span = widget.ClampSpan(span)
	if !w.IsPlaced() || w.Span == span {
		return l, OutcomeUnchanged, nil
	}
	next := l.clone()
	next.widgets[l.index[id]].Span = span
	return next, OutcomeApplied, nil
}

// Nudge swaps a placed widget with its neighbour in dir. Nudging past
// either end of the surface changes nothing.
func (l Layout) Nudge(id string, dir Direction) (Layout, Outcome, error) {
	w, ok := l.lookup(id)
	if !ok {
		return l, OutcomeRejected, unknownWidget(id)
	}
	var step int
	switch dir {
	case Left:
		step = -1
	case Right:
		step = 1
	default:
		return l, OutcomeRejected, errs.New(errs.ErrCodeInvalidInput, "unknown direction %q", dir)
	}
	rank, placed := w.Location.Rank()
	if !placed {
		return l, OutcomeUnchanged, nil
	}
	order := l.SurfaceIDs()
	neighbour := rank + step
	if neighbour < 0 || neighbour >= len(order) {
		return l, OutcomeUnchanged, nil
	}
	return l.arrange(swap(order, rank, neighbour)), OutcomeApplied, nil
}

func unknownWidget(id string) error {
	return errs.New(errs.ErrCodeUnknownWidget, "unknown widget %q", id)
}
