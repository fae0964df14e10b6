package io

import (
	"github.com/matzehuels/gridboard/pkg/layout"
)

// CatalogDoc is the JSON form of a [layout.CatalogView].
type CatalogDoc struct {
	Groups []GroupDoc `json:"groups"`
}

// GroupDoc lists the unplaced widgets of one category. Widgets is never
// null so clients can render an empty group.
type GroupDoc struct {
	Category string    `json:"category"`
	Widgets  []ItemDoc `json:"widgets"`
}

// ItemDoc is a catalog entry.
type ItemDoc struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Span        int      `json:"span"`
}

// NewCatalogDoc converts v.
func NewCatalogDoc(v layout.CatalogView) CatalogDoc {
	doc := CatalogDoc{Groups: make([]GroupDoc, len(v.Groups))}
	for i, g := range v.Groups {
		items := make([]ItemDoc, len(g.Widgets))
		for j, w := range g.Widgets {
			items[j] = ItemDoc{
				ID:          w.ID,
				Title:       w.Title,
				Description: w.Description,
				Tags:        w.Tags,
				Span:        w.Span,
			}
		}
		doc.Groups[i] = GroupDoc{Category: string(g.Category), Widgets: items}
	}
	return doc
}

// SurfaceDoc is the JSON form of a [layout.SurfaceView].
type SurfaceDoc struct {
	Rows  int       `json:"rows"`
	Slots []SlotDoc `json:"slots"`
}

// SlotDoc is a placed widget with its grid coordinates.
type SlotDoc struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Category string `json:"category"`
	Rank     int    `json:"rank"`
	Span     int    `json:"span"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	First    bool   `json:"first,omitempty"`
	Last     bool   `json:"last,omitempty"`
}

// NewSurfaceDoc converts v.
func NewSurfaceDoc(v layout.SurfaceView) SurfaceDoc {
	doc := SurfaceDoc{Rows: v.Rows, Slots: make([]SlotDoc, len(v.Slots))}
	for i, s := range v.Slots {
		doc.Slots[i] = SlotDoc{
			ID:       s.Widget.ID,
			Title:    s.Widget.Title,
			Category: string(s.Widget.Category),
			Rank:     s.Rank,
			Span:     s.Span,
			Row:      s.Row,
			Column:   s.Column,
			First:    s.First,
			Last:     s.Last,
		}
	}
	return doc
}
