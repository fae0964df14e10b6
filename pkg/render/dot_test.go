package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

func surface(t *testing.T, spans map[string]int, order ...string) layout.SurfaceView {
	t.Helper()
	seed := make([]widget.Widget, 0, len(order))
	for _, id := range order {
		seed = append(seed, widget.Widget{ID: id, Category: widget.CategoryMetrics, Title: strings.ToUpper(id), Span: spans[id]})
	}
	l, err := layout.New(seed)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range order {
		if l, _, err = l.Place(id, nil); err != nil {
			t.Fatal(err)
		}
	}
	return l.Surface()
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(layout.SurfaceView{}, Options{})
	if !strings.Contains(dot, `placeholder [label="Drop items here", width=9.60`) {
		t.Errorf("missing placeholder:\n%s", dot)
	}
	if strings.Contains(dot, "subgraph") {
		t.Errorf("empty surface should have no rows:\n%s", dot)
	}
}

func TestToDOTRows(t *testing.T) {
	v := surface(t, map[string]int{"a": 8, "b": 6, "c": 6}, "a", "b", "c")
	dot := ToDOT(v, Options{ColumnWidth: 1})

	for _, want := range []string{
		"subgraph row_0 {",
		"subgraph row_1 {",
		`"a" [label="A", width=8.00, fillcolor="#dcfce7"];`,
		`"b" [label="B", width=6.00`,
		`"b" -> "c";`,
		`"a" -> "b";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "row_2") {
		t.Errorf("unexpected third row:\n%s", dot)
	}
	if strings.Index(dot, `"b" [`) < strings.Index(dot, "subgraph row_1") {
		t.Errorf("b should be in row 1:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	v := surface(t, map[string]int{"a": 3}, "a")
	dot := ToDOT(v, Options{Detailed: true})
	if !strings.Contains(dot, `label="A\na · span 3"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("expected passthrough, got %s", got)
	}
}
