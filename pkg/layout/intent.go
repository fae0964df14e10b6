package layout

import (
	"strings"

	errs "github.com/matzehuels/gridboard/pkg/errors"
)

// IntentKind names the transition an intent requests.
type IntentKind string

const (
	KindPlace   IntentKind = "place"
	KindReorder IntentKind = "reorder"
	KindRemove  IntentKind = "remove"
	KindResize  IntentKind = "resize"
	KindNudge   IntentKind = "nudge"
)

// Intent is a discrete request to transition a layout.
type Intent interface {
	Kind() IntentKind
	// Subject returns the id of the widget being moved or changed.
	Subject() string
}

// PlaceIntent moves a catalog widget onto the surface. A nil Position
// appends; otherwise the widget is inserted at Position and later widgets
// shift down by one.
type PlaceIntent struct {
	WidgetID string
	Position *int
}

func (PlaceIntent) Kind() IntentKind  { return KindPlace }
func (i PlaceIntent) Subject() string { return i.WidgetID }

// At returns a pointer to position, for use as PlaceIntent.Position.
func At(position int) *int { return &position }

// ReorderIntent moves a placed widget immediately before TargetID.
type ReorderIntent struct {
	WidgetID string
	TargetID string
}

func (ReorderIntent) Kind() IntentKind  { return KindReorder }
func (i ReorderIntent) Subject() string { return i.WidgetID }

// RemoveIntent returns a placed widget to the catalog.
type RemoveIntent struct {
	WidgetID string
}

func (RemoveIntent) Kind() IntentKind  { return KindRemove }
func (i RemoveIntent) Subject() string { return i.WidgetID }

// ResizeIntent sets a widget's span. Out of range values are clamped.
type ResizeIntent struct {
	WidgetID string
	Span     int
}

func (ResizeIntent) Kind() IntentKind  { return KindResize }
func (i ResizeIntent) Subject() string { return i.WidgetID }

// NudgeIntent swaps a placed widget with its neighbour.
type NudgeIntent struct {
	WidgetID  string
	Direction Direction
}

func (NudgeIntent) Kind() IntentKind  { return KindNudge }
func (i NudgeIntent) Subject() string { return i.WidgetID }

// Direction is the side a nudge moves towards.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection accepts "left"/"right" and the short forms "l"/"r".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return "", errs.New(errs.ErrCodeInvalidInput, "unknown direction %q (want left or right)", s)
}

// normalize returns in as one of the value intent types. Pointers to the
// known intents are dereferenced; nil intents and foreign types are rejected
// without calling any of their methods.
func normalize(in Intent) (Intent, error) {
	switch v := in.(type) {
	case nil:
		return nil, errs.New(errs.ErrCodeInvalidInput, "nil intent")
	case PlaceIntent, ReorderIntent, RemoveIntent, ResizeIntent, NudgeIntent:
		return in, nil
	case *PlaceIntent:
		if v != nil {
			return *v, nil
		}
	case *ReorderIntent:
		if v != nil {
			return *v, nil
		}
	case *RemoveIntent:
		if v != nil {
			return *v, nil
		}
	case *ResizeIntent:
		if v != nil {
			return *v, nil
		}
	case *NudgeIntent:
		if v != nil {
			return *v, nil
		}
	default:
		return nil, errs.New(errs.ErrCodeUnsupported, "unsupported intent %T", in)
	}
	return nil, errs.New(errs.ErrCodeInvalidInput, "nil %T intent", in)
}
