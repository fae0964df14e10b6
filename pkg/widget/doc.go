// Package widget defines the placeable unit of a gridboard dashboard.
//
// A [Widget] has an immutable identity (ID, Category, presentation metadata)
// and two mutable placement attributes: its column [Widget.Span] and its
// [Location]. Location is a tagged variant: a widget is either unplaced
// (sitting in the catalog) or placed at exactly one surface rank. There is no
// third state, so a widget can never be in both partitions or in neither.
//
// # Spans
//
// The placement surface is [Columns] wide. Spans are always kept within
// [MinSpan]..[MaxSpan]; [ClampSpan] is the single place that policy lives.
// [PresetSpans] lists the widths user interfaces typically offer as
// shortcuts; they are not an engine constraint.
//
// # Categories
//
// Categories form the fixed set returned by [Categories], in display order.
// Use [ParseCategory] to turn user input into a [Category].
package widget
