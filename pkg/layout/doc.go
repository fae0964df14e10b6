// Package layout implements the placement and ordering state machine of a
// gridboard dashboard.
//
// A [Layout] is an immutable snapshot of every widget in a session: which
// ones sit in the catalog, which ones are on the surface, in what order and
// at what span. Snapshots are never modified in place. Every transition
// copies the affected data and returns a new [Layout], so two snapshots can
// be compared with [Layout.Equal] to drive re-render diffing.
//
// # Intents
//
// A user interface resolves a gesture (drag release, key press, button) into
// one [Intent]:
//
//   - [PlaceIntent] moves a catalog widget onto the surface
//   - [ReorderIntent] moves a placed widget immediately before another one
//   - [RemoveIntent] returns a placed widget to the catalog
//   - [ResizeIntent] changes a placed widget's span
//   - [NudgeIntent] swaps a placed widget with its left or right neighbour
//
// [Layout.Apply] is total: it returns the next snapshot together with an
// [Outcome]. Requests that cannot change anything (placing an already placed
// widget, nudging past a boundary, resizing to the current span) report
// [OutcomeUnchanged] and no error. Only two situations are rejections, both
// returned as *errors.Error from package [github.com/matzehuels/gridboard/pkg/errors]:
// UNKNOWN_WIDGET when an id is not part of the layout, and INVALID_TARGET
// when a reorder names a widget that is not on the surface. A rejected
// intent leaves the layout exactly as it was.
//
// # Ranks
//
// Surface positions are dense ranks 0..n-1, recomputed after every
// transition. Relocations are stable list surgery: the moving widget is
// removed first, the insertion index is computed against the remaining
// sequence, then the widget is inserted.
//
// # Views
//
// [Layout.Catalog] and [Layout.Surface] are read-only projections computed
// on demand. The surface view also carries the row and column each widget
// lands on when the 12-column grid wraps.
//
// # Engine
//
// [Engine] owns the current snapshot of one surface and serialises intents
// so that no two are ever applied to the same snapshot.
package layout
