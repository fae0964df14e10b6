package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/gridboard/pkg/catalog"
	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/layout"
)

func seeded(t *testing.T, script string) layout.Layout {
	t.Helper()
	l, err := layout.New(catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	intents, err := ParseScript(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range intents {
		if l, _, err = l.Apply(in); err != nil {
			t.Fatalf("%s: %v", FormatIntent(in), err)
		}
	}
	return l
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := seeded(t, "place sales-1\nplace metrics-3\nplace earnings-2 0\nresize metrics-3 4\n")

	var buf bytes.Buffer
	if err := WriteJSON(l, 7, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got, version, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if version != 7 {
		t.Errorf("version = %d, want 7", version)
	}
	if !got.Equal(l) {
		t.Errorf("round trip changed layout: %v vs %v", got.SurfaceIDs(), l.SurfaceIDs())
	}
}

func TestExportImport(t *testing.T) {
	l := seeded(t, "place sales-2\nplace sales-4\n")
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := ExportJSON(l, 2, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, _, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got.SurfaceIDs(), []string{"sales-2", "sales-4"}) {
		t.Errorf("SurfaceIDs() = %v", got.SurfaceIDs())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Malformed", `{"widgets": [`},
		{"UnknownField", `{"widgets": [], "extra": 1}`},
		{"UnknownCategory", `{"widgets": [{"id": "a", "category": "Ops", "span": 3, "location": "unplaced"}]}`},
		{"PlacedWithoutRank", `{"widgets": [{"id": "a", "category": "Sales", "span": 3, "location": "placed"}]}`},
		{"UnplacedWithRank", `{"widgets": [{"id": "a", "category": "Sales", "span": 3, "location": "unplaced", "rank": 0}]}`},
		{"BadLocation", `{"widgets": [{"id": "a", "category": "Sales", "span": 3, "location": "floating"}]}`},
		{"SparseRanks", `{"widgets": [{"id": "a", "category": "Sales", "span": 3, "location": "placed", "rank": 1}]}`},
		{"Duplicate", `{"widgets": [{"id": "a", "category": "Sales", "span": 3}, {"id": "a", "category": "Sales", "span": 3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadJSON(strings.NewReader(tt.body))
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Fatalf("ReadJSON() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestDecodeIntent(t *testing.T) {
	tests := []struct {
		body string
		want layout.Intent
	}{
		{`{"kind":"place","widget":"w1"}`, layout.PlaceIntent{WidgetID: "w1"}},
		{`{"kind":"place","widget":"w1","position":2}`, layout.PlaceIntent{WidgetID: "w1", Position: layout.At(2)}},
		{`{"kind":"reorder","widget":"w3","target":"w1"}`, layout.ReorderIntent{WidgetID: "w3", TargetID: "w1"}},
		{`{"kind":"remove","widget":"w1"}`, layout.RemoveIntent{WidgetID: "w1"}},
		{`{"kind":"resize","widget":"w1","span":20}`, layout.ResizeIntent{WidgetID: "w1", Span: 20}},
		{`{"kind":"nudge","widget":"w1","direction":"R"}`, layout.NudgeIntent{WidgetID: "w1", Direction: layout.Right}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, err := DecodeIntent(strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("DecodeIntent() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeIntent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodeIntentErrors(t *testing.T) {
	bodies := []string{
		`not json`,
		`{"kind":"place","widget":"w1","colour":"red"}`,
		`{"kind":"teleport","widget":"w1"}`,
		`{"kind":"place","widget":""}`,
		`{"kind":"place","widget":"w1","span":3}`,
		`{"kind":"reorder","widget":"w1"}`,
		`{"kind":"remove","widget":"w1","target":"w2"}`,
		`{"kind":"resize","widget":"w1"}`,
		`{"kind":"nudge","widget":"w1","direction":"up"}`,
		`{"kind":"nudge","widget":"w1","direction":"left","position":1}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := DecodeIntent(strings.NewReader(body))
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Fatalf("DecodeIntent() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestEncodeIntent(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeIntent(&buf, layout.ResizeIntent{WidgetID: "w1", Span: 6}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\"kind\":\"resize\",\"widget\":\"w1\",\"span\":6}\n"; got != want {
		t.Errorf("EncodeIntent() = %q, want %q", got, want)
	}

	in, err := DecodeIntent(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if in != (layout.ResizeIntent{WidgetID: "w1", Span: 6}) {
		t.Errorf("decoded %#v", in)
	}
}

func TestParseScript(t *testing.T) {
	script := `
# comment
place w1
place w2 0
reorder w1 w2

resize w2 4
nudge w2 left
remove w1
`
	got, err := ParseScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	lines := make([]string, len(got))
	for i, in := range got {
		lines[i] = FormatIntent(in)
	}
	want := []string{
		"place w1",
		"place w2 0",
		"reorder w1 w2",
		"resize w2 4",
		"nudge w2 left",
		"remove w1",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ParseScript() = %v, want %v", lines, want)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		line   string
	}{
		{"UnknownVerb", "place w1\njump w1\n", "line 2"},
		{"MissingWidget", "place\n", "line 1"},
		{"BadPosition", "place w1 first\n", "line 1"},
		{"ReorderArity", "reorder w1\n", "line 1"},
		{"RemoveArity", "# x\n\nremove w1 w2\n", "line 3"},
		{"BadSpan", "resize w1 wide\n", "line 1"},
		{"BadDirection", "nudge w1 up\n", "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.script))
			if !errs.Is(err, errs.ErrCodeInvalidScript) {
				t.Fatalf("ParseScript() error = %v, want INVALID_SCRIPT", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q does not mention %q", err, tt.line)
			}
		})
	}
}

func TestViewDocs(t *testing.T) {
	l := seeded(t, "place sales-1\nplace sales-3\nplace sales-4\n")

	surface := NewSurfaceDoc(l.Surface())
	if surface.Rows != 2 || len(surface.Slots) != 3 {
		t.Fatalf("surface = %+v", surface)
	}
	if s := surface.Slots[2]; s.ID != "sales-4" || s.Row != 1 || s.Column != 6 || !s.Last {
		t.Errorf("last slot = %+v", s)
	}

	cat := NewCatalogDoc(l.Catalog())
	data, err := json.Marshal(cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Groups) != 3 || cat.Groups[0].Category != "Sales" || len(cat.Groups[0].Widgets) != 1 {
		t.Errorf("catalog = %s", data)
	}

	empty := NewCatalogDoc(seeded(t, "place earnings-1\nplace earnings-2\nplace earnings-3\n").Catalog())
	data, err = json.Marshal(empty.Groups[2])
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{"category":"Earnings","widgets":[]}` {
		t.Errorf("empty group = %s", got)
	}
}
