package layout

import (
	"slices"
	"testing"

	"github.com/matzehuels/gridboard/pkg/widget"
)

func TestCatalogGroupsBySeedOrder(t *testing.T) {
	l := mustNew(t, []widget.Widget{
		{ID: "m1", Category: widget.CategoryMetrics, Span: 3},
		{ID: "s1", Category: widget.CategorySales, Span: 12},
		{ID: "m2", Category: widget.CategoryMetrics, Span: 6},
		{ID: "s2", Category: widget.CategorySales, Span: 8},
	})
	l, _, _ = l.Place("s1", nil)

	v := l.Catalog()
	if len(v.Groups) != len(widget.Categories()) {
		t.Fatalf("groups = %d, want one per category", len(v.Groups))
	}
	for i, c := range widget.Categories() {
		if v.Groups[i].Category != c {
			t.Errorf("group %d = %s, want %s", i, v.Groups[i].Category, c)
		}
	}

	sales, _ := v.Group(widget.CategorySales)
	if got := ids(sales.Widgets); !slices.Equal(got, []string{"s2"}) {
		t.Errorf("sales = %v, want [s2]", got)
	}
	metrics, _ := v.Group(widget.CategoryMetrics)
	if got := ids(metrics.Widgets); !slices.Equal(got, []string{"m1", "m2"}) {
		t.Errorf("metrics = %v, want [m1 m2]", got)
	}
	earnings, ok := v.Group(widget.CategoryEarnings)
	if !ok || !earnings.Empty() {
		t.Errorf("earnings group should exist and be empty, got %+v", earnings)
	}
	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
	if got := ids(v.Widgets()); !slices.Equal(got, []string{"s2", "m1", "m2"}) {
		t.Errorf("Widgets() = %v", got)
	}
}

func TestCatalogKeepsSeedOrderAfterRoundTrip(t *testing.T) {
	l := placed(t, 3, "w1", "w2", "w3")
	l, _, _ = l.Remove("w3")
	l, _, _ = l.Remove("w1")

	sales, _ := l.Catalog().Group(widget.CategorySales)
	if got := ids(sales.Widgets); !slices.Equal(got, []string{"w1", "w3"}) {
		t.Fatalf("catalog = %v, want seed order [w1 w3]", got)
	}
}

func TestSurfaceWrapsRows(t *testing.T) {
	spans := map[string]int{"a": 6, "b": 4, "c": 3, "d": 12, "e": 8, "f": 4}
	seed := make([]widget.Widget, 0, len(spans))
	order := []string{"a", "b", "c", "d", "e", "f"}
	for _, id := range order {
		seed = append(seed, widget.Widget{ID: id, Category: widget.CategoryMetrics, Span: spans[id]})
	}
	l := mustNew(t, seed)
	for _, id := range order {
		l, _, _ = l.Place(id, nil)
	}

	v := l.Surface()
	want := []struct {
		row, col int
	}{
		{0, 0}, // a 6
		{0, 6}, // b 4 -> 10
		{1, 0}, // c 3 does not fit in 2
		{2, 0}, // d 12
		{3, 0}, // e 8
		{3, 8}, // f 4 -> 12
	}
	if v.Rows != 4 {
		t.Errorf("Rows = %d, want 4", v.Rows)
	}
	for i, s := range v.Slots {
		if s.Row != want[i].row || s.Column != want[i].col {
			t.Errorf("slot %s at (%d,%d), want (%d,%d)", s.Widget.ID, s.Row, s.Column, want[i].row, want[i].col)
		}
		if s.Rank != i || s.Span != spans[s.Widget.ID] {
			t.Errorf("slot %s rank/span = %d/%d", s.Widget.ID, s.Rank, s.Span)
		}
	}
	if !v.Slots[0].First || v.Slots[0].Last {
		t.Error("first slot flags wrong")
	}
	if !v.Slots[5].Last || v.Slots[5].First {
		t.Error("last slot flags wrong")
	}
	if got := ids(slotWidgets(v.Row(3))); !slices.Equal(got, []string{"e", "f"}) {
		t.Errorf("Row(3) = %v, want [e f]", got)
	}
}

func TestSurfaceSingleSlotIsFirstAndLast(t *testing.T) {
	v := placed(t, 2, "w2").Surface()
	if v.Len() != 1 || !v.Slots[0].First || !v.Slots[0].Last {
		t.Fatalf("slots = %+v", v.Slots)
	}
}

func ids(ws []widget.Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func slotWidgets(slots []Slot) []widget.Widget {
	out := make([]widget.Widget, len(slots))
	for i, s := range slots {
		out[i] = s.Widget
	}
	return out
}
