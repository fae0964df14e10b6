// Package io provides the JSON wire format for layouts and intents, and a
// line-oriented intent script format.
//
// # Snapshot Format
//
// A snapshot is the ordered list of widgets in seed order with their
// location and span:
//
//	{
//	  "version": 3,
//	  "widgets": [
//	    {"id": "sales-1", "category": "Sales", "title": "Revenue Chart",
//	     "span": 8, "location": "placed", "rank": 0},
//	    {"id": "sales-2", "category": "Sales", "title": "Top Products",
//	     "span": 6, "location": "unplaced"}
//	  ]
//	}
//
// Snapshots round-trip: [ReadJSON] rebuilds the exact layout [WriteJSON]
// encoded, and rejects any document whose placed ranks are not dense.
//
// # Intent Format
//
// Intents are flat objects discriminated by "kind":
//
//	{"kind": "place", "widget": "sales-1", "position": 0}
//	{"kind": "reorder", "widget": "sales-3", "target": "sales-1"}
//	{"kind": "remove", "widget": "sales-1"}
//	{"kind": "resize", "widget": "sales-1", "span": 6}
//	{"kind": "nudge", "widget": "sales-1", "direction": "left"}
//
// Unknown fields are rejected with INVALID_INPUT.
//
// # Scripts
//
// [ParseScript] reads one intent per line using the same verbs:
//
//	# build the sales row
//	place sales-1
//	place sales-2 0
//	reorder sales-1 sales-2
//	resize sales-2 4
//	nudge sales-2 right
//	remove sales-1
//
// Blank lines and lines starting with '#' are ignored.
package io
