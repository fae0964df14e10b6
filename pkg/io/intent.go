package io

import (
	"encoding/json"
	"fmt"
	"io"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// IntentDoc is the flat JSON form of every intent kind. Fields that do not
// apply to Kind must be left empty.
type IntentDoc struct {
	Kind      string `json:"kind"`
	WidgetID  string `json:"widget"`
	TargetID  string `json:"target,omitempty"`
	Position  *int   `json:"position,omitempty"`
	Span      *int   `json:"span,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// NewIntentDoc converts in to its wire form.
func NewIntentDoc(in layout.Intent) (IntentDoc, error) {
	switch v := in.(type) {
	case layout.PlaceIntent:
		return IntentDoc{Kind: string(layout.KindPlace), WidgetID: v.WidgetID, Position: v.Position}, nil
	case layout.ReorderIntent:
		return IntentDoc{Kind: string(layout.KindReorder), WidgetID: v.WidgetID, TargetID: v.TargetID}, nil
	case layout.RemoveIntent:
		return IntentDoc{Kind: string(layout.KindRemove), WidgetID: v.WidgetID}, nil
	case layout.ResizeIntent:
		span := v.Span
		return IntentDoc{Kind: string(layout.KindResize), WidgetID: v.WidgetID, Span: &span}, nil
	case layout.NudgeIntent:
		return IntentDoc{Kind: string(layout.KindNudge), WidgetID: v.WidgetID, Direction: string(v.Direction)}, nil
	default:
		return IntentDoc{}, errs.New(errs.ErrCodeUnsupported, "unsupported intent %T", in)
	}
}

// Intent validates d and returns the intent it describes.
func (d IntentDoc) Intent() (layout.Intent, error) {
	if err := errs.ValidateWidgetID(d.WidgetID); err != nil {
		return nil, err
	}
	extra := func(field string, set bool) error {
		if set {
			return errs.New(errs.ErrCodeInvalidInput, "%s intent does not take %q", d.Kind, field)
		}
		return nil
	}

	switch layout.IntentKind(d.Kind) {
	case layout.KindPlace:
		if err := firstErr(extra("target", d.TargetID != ""), extra("span", d.Span != nil), extra("direction", d.Direction != "")); err != nil {
			return nil, err
		}
		return layout.PlaceIntent{WidgetID: d.WidgetID, Position: d.Position}, nil
	case layout.KindReorder:
		if err := errs.ValidateWidgetID(d.TargetID); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "reorder target")
		}
		if err := firstErr(extra("position", d.Position != nil), extra("span", d.Span != nil), extra("direction", d.Direction != "")); err != nil {
			return nil, err
		}
		return layout.ReorderIntent{WidgetID: d.WidgetID, TargetID: d.TargetID}, nil
	case layout.KindRemove:
		if err := firstErr(extra("target", d.TargetID != ""), extra("position", d.Position != nil), extra("span", d.Span != nil), extra("direction", d.Direction != "")); err != nil {
			return nil, err
		}
		return layout.RemoveIntent{WidgetID: d.WidgetID}, nil
	case layout.KindResize:
		if d.Span == nil {
			return nil, errs.New(errs.ErrCodeInvalidInput, "resize intent requires span")
		}
		if err := firstErr(extra("target", d.TargetID != ""), extra("position", d.Position != nil), extra("direction", d.Direction != "")); err != nil {
			return nil, err
		}
		return layout.ResizeIntent{WidgetID: d.WidgetID, Span: *d.Span}, nil
	case layout.KindNudge:
		dir, err := layout.ParseDirection(d.Direction)
		if err != nil {
			return nil, err
		}
		if err := firstErr(extra("target", d.TargetID != ""), extra("position", d.Position != nil), extra("span", d.Span != nil)); err != nil {
			return nil, err
		}
		return layout.NudgeIntent{WidgetID: d.WidgetID, Direction: dir}, nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown intent kind %q", d.Kind)
	}
}

// DecodeIntent reads a single JSON intent from r.
func DecodeIntent(r io.Reader) (layout.Intent, error) {
	var d IntentDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode intent")
	}
	return d.Intent()
}

// EncodeIntent writes in to w as a single JSON line.
func EncodeIntent(w io.Writer, in layout.Intent) error {
	d, err := NewIntentDoc(in)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func firstErr(list ...error) error {
	for _, err := range list {
		if err != nil {
			return err
		}
	}
	return nil
}
