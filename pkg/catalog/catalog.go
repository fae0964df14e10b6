// Package catalog provides the seed widget sets a gridboard session starts
// from.
//
// [Default] returns the built-in dashboard library. [Load] and [Parse] read a
// TOML seed file with one [[widget]] table per entry:
//
//	[[widget]]
//	id = "sales-1"          # optional; a UUID is generated when empty
//	category = "Sales"      # Sales, Metrics or Earnings
//	title = "Revenue Chart"
//	description = "Monthly revenue trend"
//	tags = ["Sales", "Chart"]
//	span = 12               # optional; defaults to widget.DefaultSpan
package catalog

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/widget"
)

// Default returns the built-in widget library, all unplaced.
func Default() []widget.Widget {
	return []widget.Widget{
		{ID: "sales-1", Category: widget.CategorySales, Title: "Revenue Chart", Description: "Monthly revenue trend", Tags: []string{"Sales", "Chart"}, Span: 12},
		{ID: "sales-2", Category: widget.CategorySales, Title: "Top Products", Description: "Best selling items list", Tags: []string{"Sales", "List"}, Span: 8},
		{ID: "sales-3", Category: widget.CategorySales, Title: "Sales Map", Description: "Geographic distribution", Tags: []string{"Sales", "Map"}, Span: 6},
		{ID: "sales-4", Category: widget.CategorySales, Title: "Conversion Rate", Description: "Visitor to customer ratio", Tags: []string{"Sales", "KPI"}, Span: 3},

		{ID: "metrics-1", Category: widget.CategoryMetrics, Title: "Active Users", Description: "Real-time user count", Tags: []string{"Metrics", "User"}, Span: 12},
		{ID: "metrics-2", Category: widget.CategoryMetrics, Title: "Bounce Rate", Description: "Page abandonment rate", Tags: []string{"Metrics", "Analytics"}, Span: 8},
		{ID: "metrics-3", Category: widget.CategoryMetrics, Title: "Session Duration", Description: "Average time on site", Tags: []string{"Metrics", "Time"}, Span: 6},
		{ID: "metrics-4", Category: widget.CategoryMetrics, Title: "Server Load", Description: "CPU and Memory usage", Tags: []string{"Metrics", "DevOps"}, Span: 3},

		{ID: "earnings-1", Category: widget.CategoryEarnings, Title: "Net Profit", Description: "Total profit after tax", Tags: []string{"Earnings", "Finance"}, Span: 12},
		{ID: "earnings-2", Category: widget.CategoryEarnings, Title: "Expenses", Description: "Operational costs breakdown", Tags: []string{"Earnings", "Cost"}, Span: 8},
		{ID: "earnings-3", Category: widget.CategoryEarnings, Title: "Forecast", Description: "Next quarter prediction", Tags: []string{"Earnings", "AI"}, Span: 6},
	}
}

// file is the TOML document layout.
type file struct {
	Widgets []entry `toml:"widget"`
}

type entry struct {
	ID          string   `toml:"id"`
	Category    string   `toml:"category"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Tags        []string `toml:"tags"`
	Span        int      `toml:"span"`
}

// Load reads and parses a TOML seed file.
func Load(path string) ([]widget.Widget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "read catalog %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML seed document. Ids must be unique, categories must be
// known, and spans are clamped.
func Parse(data []byte) ([]widget.Widget, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidCatalog, "unknown catalog key %q", undecoded[0].String())
	}
	if len(f.Widgets) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidCatalog, "catalog has no widgets")
	}

	seen := make(map[string]bool, len(f.Widgets))
	out := make([]widget.Widget, 0, len(f.Widgets))
	for i, e := range f.Widgets {
		w, err := e.widget()
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "widget %d", i+1)
		}
		if seen[w.ID] {
			return nil, errs.New(errs.ErrCodeInvalidCatalog, "duplicate widget id %q", w.ID)
		}
		seen[w.ID] = true
		out = append(out, w)
	}
	return out, nil
}

func (e entry) widget() (widget.Widget, error) {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	if err := errs.ValidateWidgetID(id); err != nil {
		return widget.Widget{}, err
	}
	cat, ok := widget.ParseCategory(e.Category)
	if !ok {
		return widget.Widget{}, errs.New(errs.ErrCodeInvalidCatalog, "unknown category %q", e.Category)
	}
	span := e.Span
	if span == 0 {
		span = widget.DefaultSpan
	}
	return widget.Widget{
		ID:          id,
		Category:    cat,
		Title:       e.Title,
		Description: e.Description,
		Tags:        e.Tags,
		Span:        widget.ClampSpan(span),
	}, nil
}
