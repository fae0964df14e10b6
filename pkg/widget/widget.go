package widget

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// Columns is the width of the placement surface in grid columns.
	Columns = 12

	// MinSpan and MaxSpan bound every widget's span.
	MinSpan = 1
	MaxSpan = Columns

	// DefaultSpan is used for seed entries that do not specify a width.
	DefaultSpan = 6
)

// PresetSpans are the widths offered by resize shortcuts.
var PresetSpans = []int{2, 3, 4, 6, 8, 12}

// ClampSpan forces span into MinSpan..MaxSpan.
func ClampSpan(span int) int {
	return min(max(span, MinSpan), MaxSpan)
}

// Category groups widgets in the catalog.
type Category string

const (
	CategorySales    Category = "Sales"
	CategoryMetrics  Category = "Metrics"
	CategoryEarnings Category = "Earnings"
)

var categories = []Category{CategorySales, CategoryMetrics, CategoryEarnings}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Valid reports whether c belongs to the fixed category set.
func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// ParseCategory matches s against the category set, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Location is either unplaced or placed at a surface rank.
// The zero value is unplaced.
type Location struct {
	placed bool
	rank   int
}

// Unplaced returns the catalog location.
func Unplaced() Location { return Location{} }

// PlacedAt returns the surface location at rank.
func PlacedAt(rank int) Location { return Location{placed: true, rank: rank} }

// IsPlaced reports whether the location is on the surface.
func (l Location) IsPlaced() bool { return l.placed }

// Rank returns the surface rank and true, or 0 and false when unplaced.
func (l Location) Rank() (int, bool) {
	if !l.placed {
		return 0, false
	}
	return l.rank, true
}

func (l Location) String() string {
	if !l.placed {
		return "unplaced"
	}
	return fmt.Sprintf("placed(%d)", l.rank)
}

// Widget is a placeable dashboard unit.
type Widget struct {
	ID          string
	Category    Category
	Title       string
	Description string
	Tags        []string

	Span     int
	Location Location
}

// IsPlaced reports whether w is on the surface.
func (w Widget) IsPlaced() bool { return w.Location.IsPlaced() }

// Clone returns a copy of w that shares no memory with it.
func (w Widget) Clone() Widget {
	w.Tags = slices.Clone(w.Tags)
	return w
}

// Label returns the title, falling back to the id.
func (w Widget) Label() string {
	if w.Title != "" {
		return w.Title
	}
	return w.ID
}
