package cli

import (
	"context"
	"io"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridboard/pkg/catalog"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

func newTestEditor(t *testing.T, seed []widget.Widget) EditorModel {
	t.Helper()
	l, err := layout.New(seed)
	if err != nil {
		t.Fatal(err)
	}
	engine := layout.NewEngine(l, layout.WithLogger(log.New(io.Discard)))
	return NewEditorModel(context.Background(), engine)
}

func press(t *testing.T, m EditorModel, keys ...tea.KeyMsg) EditorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(EditorModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func surfaceOf(m EditorModel) []string {
	l, _ := m.Engine.Snapshot()
	return l.SurfaceIDs()
}

func spanOf(m EditorModel, id string) int {
	l, _ := m.Engine.Snapshot()
	w, _ := l.Widget(id)
	return w.Span
}

func TestEditorPlaceNudgeResizeRemove(t *testing.T) {
	m := newTestEditor(t, catalog.Default())

	m = press(t, m, keyEnter, keyEnter)
	if got := surfaceOf(m); !slices.Equal(got, []string{"sales-1", "sales-2"}) {
		t.Fatalf("after placing = %v", got)
	}

	m = press(t, m, keyTab, runes("]"))
	if got := surfaceOf(m); !slices.Equal(got, []string{"sales-2", "sales-1"}) {
		t.Fatalf("after nudge = %v", got)
	}
	if id, _ := m.surfaceSelection(); id != "sales-1" {
		t.Errorf("cursor should follow nudged widget, on %q", id)
	}

	m = press(t, m, runes("1"))
	if got := spanOf(m, "sales-1"); got != 2 {
		t.Errorf("preset 1 span = %d, want 2", got)
	}
	m = press(t, m, runes("+"), runes("+"), runes("-"))
	if got := spanOf(m, "sales-1"); got != 3 {
		t.Errorf("stepped span = %d, want 3", got)
	}
	m = press(t, m, runes("6"))
	if got := spanOf(m, "sales-1"); got != 12 {
		t.Errorf("preset 6 span = %d, want 12", got)
	}

	m = press(t, m, keyEnter)
	if got := surfaceOf(m); !slices.Equal(got, []string{"sales-2"}) {
		t.Fatalf("after remove = %v", got)
	}
	if m.surCursor != 0 {
		t.Errorf("surface cursor = %d, want clamped to 0", m.surCursor)
	}
	if got := spanOf(m, "sales-1"); got != 12 {
		t.Errorf("removed widget lost its span: %d", got)
	}
}

func TestEditorBoundaryNudgeIsUnchanged(t *testing.T) {
	m := newTestEditor(t, catalog.Default())
	m = press(t, m, keyEnter, keyTab, runes("["))

	if m.statusErr || !strings.Contains(m.status, "unchanged") {
		t.Errorf("status = %q (err=%v)", m.status, m.statusErr)
	}
	_, version := m.Engine.Snapshot()
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestEditorCatalogCursor(t *testing.T) {
	m := newTestEditor(t, catalog.Default())
	m = press(t, m, keyDown, keyDown, keyDown, keyDown, keyEnter)
	if got := surfaceOf(m); !slices.Equal(got, []string{"metrics-1"}) {
		t.Fatalf("placed %v, want metrics-1", got)
	}

	for range 20 {
		m = press(t, m, keyDown)
	}
	if id, _ := m.catalogSelection(); id != "earnings-3" {
		t.Errorf("cursor should stop at the last widget, on %q", id)
	}
}

func TestEditorSurfaceKeysIgnoredInCatalog(t *testing.T) {
	m := newTestEditor(t, catalog.Default())
	m = press(t, m, keyEnter, runes("]"), runes("1"))
	if _, version := m.Engine.Snapshot(); version != 1 {
		t.Errorf("catalog pane applied surface intents: version = %d", version)
	}
}

func TestEditorQuit(t *testing.T) {
	m := newTestEditor(t, catalog.Default())
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestEditorView(t *testing.T) {
	m := newTestEditor(t, []widget.Widget{
		{ID: "a", Category: widget.CategorySales, Title: "Alpha", Span: 6},
		{ID: "b", Category: widget.CategoryMetrics, Title: "Beta", Span: 6},
	})

	view := m.View()
	for _, want := range []string{"Catalog", "Alpha", "Beta", allAddedText, placeholderText} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, keyEnter, runes("x"))
	view = m.View()
	if strings.Contains(view, placeholderText) {
		t.Errorf("placeholder shown with a placed widget:\n%s", view)
	}
	if !strings.Contains(view, "place a") {
		t.Errorf("status line missing:\n%s", view)
	}
}

func TestPresetIndex(t *testing.T) {
	tests := map[string]int{"1": 0, "6": 5, "0": -1, "7": -1, "a": -1, "12": -1}
	for key, want := range tests {
		if got := presetIndex(key); got != want {
			t.Errorf("presetIndex(%q) = %d, want %d", key, got, want)
		}
	}
}
