package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

const (
	locationPlaced   = "placed"
	locationUnplaced = "unplaced"
)

// Snapshot is the serialised form of a layout.
type Snapshot struct {
	Version uint64        `json:"version,omitempty"`
	Widgets []WidgetState `json:"widgets"`
}

// WidgetState is one widget of a [Snapshot].
type WidgetState struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Span        int      `json:"span"`
	Location    string   `json:"location"`
	Rank        *int     `json:"rank,omitempty"`
}

// NewSnapshot captures l at version.
func NewSnapshot(l layout.Layout, version uint64) Snapshot {
	ws := l.Widgets()
	s := Snapshot{Version: version, Widgets: make([]WidgetState, len(ws))}
	for i, w := range ws {
		st := WidgetState{
			ID:          w.ID,
			Category:    string(w.Category),
			Title:       w.Title,
			Description: w.Description,
			Tags:        w.Tags,
			Span:        w.Span,
			Location:    locationUnplaced,
		}
		if rank, ok := w.Location.Rank(); ok {
			st.Location = locationPlaced
			st.Rank = &rank
		}
		s.Widgets[i] = st
	}
	return s
}

// Layout rebuilds the layout described by s.
func (s Snapshot) Layout() (layout.Layout, error) {
	seed := make([]widget.Widget, len(s.Widgets))
	for i, st := range s.Widgets {
		cat, ok := widget.ParseCategory(st.Category)
		if !ok {
			return layout.Layout{}, errs.New(errs.ErrCodeInvalidInput, "widget %q: unknown category %q", st.ID, st.Category)
		}
		w := widget.Widget{
			ID:          st.ID,
			Category:    cat,
			Title:       st.Title,
			Description: st.Description,
			Tags:        st.Tags,
			Span:        st.Span,
		}
		switch st.Location {
		case locationPlaced:
			if st.Rank == nil {
				return layout.Layout{}, errs.New(errs.ErrCodeInvalidInput, "widget %q: placed without rank", st.ID)
			}
			w.Location = widget.PlacedAt(*st.Rank)
		case locationUnplaced, "":
			if st.Rank != nil {
				return layout.Layout{}, errs.New(errs.ErrCodeInvalidInput, "widget %q: unplaced widget has a rank", st.ID)
			}
		default:
			return layout.Layout{}, errs.New(errs.ErrCodeInvalidInput, "widget %q: unknown location %q", st.ID, st.Location)
		}
		seed[i] = w
	}
	l, err := layout.New(seed)
	if err != nil {
		return layout.Layout{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "snapshot")
	}
	return l, nil
}

// WriteJSON encodes l as an indented snapshot and writes it to w.
func WriteJSON(l layout.Layout, version uint64, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewSnapshot(l, version)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a snapshot from r. It does not close r.
func ReadJSON(r io.Reader) (layout.Layout, uint64, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return layout.Layout{}, 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode snapshot")
	}
	l, err := s.Layout()
	if err != nil {
		return layout.Layout{}, 0, err
	}
	return l, s.Version, nil
}

// ExportJSON writes l to a JSON file at path.
func ExportJSON(l layout.Layout, version uint64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(l, version, f)
}

// ImportJSON reads a snapshot file written by [ExportJSON].
func ImportJSON(path string) (layout.Layout, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return layout.Layout{}, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
