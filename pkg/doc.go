// Package pkg holds the gridboard libraries.
//
// # Overview
//
// Gridboard models a dashboard builder: widgets move from a catalog onto a
// single 12-column surface, where they are reordered, resized and removed.
// The packages are layered:
//
//  1. [widget] - The widget entity, categories and spans
//  2. [layout] - Immutable layouts, intent transitions, views and the Engine
//  3. [catalog] - Seed widget sets (built-in or TOML)
//  4. Adapters: [io] (JSON and scripts), [render] (Graphviz preview),
//     [session] and [server] (HTTP API), [notify] (change events)
//  5. Ambient: [errors], [config], [observability], [buildinfo]
//
// # Data Flow
//
//	catalog.Default() / catalog.Load(path)
//	         ↓
//	    layout.New(seed)
//	         ↓
//	    layout.Engine.Apply(ctx, intent)  ←  io.ParseScript / io.DecodeIntent
//	         ↓
//	    Layout.Catalog() / Layout.Surface()
//	         ↓
//	    terminal grid, DOT/SVG, JSON
//
// # Quick Start
//
//	l, _ := layout.New(catalog.Default())
//	l, _, _ = l.Place("sales-1", nil)
//	l, _, _ = l.Place("metrics-3", layout.At(0))
//	for _, s := range l.Surface().Slots {
//	    fmt.Println(s.Row, s.Column, s.Widget.Title)
//	}
//
// [widget]: github.com/matzehuels/gridboard/pkg/widget
// [layout]: github.com/matzehuels/gridboard/pkg/layout
// [catalog]: github.com/matzehuels/gridboard/pkg/catalog
// [io]: github.com/matzehuels/gridboard/pkg/io
// [render]: github.com/matzehuels/gridboard/pkg/render
// [session]: github.com/matzehuels/gridboard/pkg/session
// [server]: github.com/matzehuels/gridboard/pkg/server
// [notify]: github.com/matzehuels/gridboard/pkg/notify
// [errors]: github.com/matzehuels/gridboard/pkg/errors
// [config]: github.com/matzehuels/gridboard/pkg/config
// [observability]: github.com/matzehuels/gridboard/pkg/observability
// [buildinfo]: github.com/matzehuels/gridboard/pkg/buildinfo
package pkg
