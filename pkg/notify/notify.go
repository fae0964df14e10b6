// Package notify announces layout changes to interested user interfaces.
//
// The layout engine calls a [Publisher] after every intent that produced a
// new snapshot. Implementations:
//   - [Null]: discards events (default; also used when notifications are off)
//   - [Redis]: publishes JSON events on a Redis pub/sub channel so that UI
//     processes watching a session can re-render
//
// Events carry the surface order and a per-session version number, which
// increases by one for each applied change, so subscribers can drop stale or
// out-of-order deliveries.
package notify

import (
	"context"
	"time"
)

// Event describes one applied layout change.
type Event struct {
	Session  string    `json:"session,omitempty"`
	Version  uint64    `json:"version"`
	Intent   string    `json:"intent"`
	WidgetID string    `json:"widget_id"`
	Surface  []string  `json:"surface"`
	At       time.Time `json:"at"`
}

// Publisher delivers change events.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Null is a publisher that drops every event.
type Null struct{}

// NewNull creates a null publisher.
func NewNull() Publisher {
	return Null{}
}

// Publish does nothing.
func (Null) Publish(context.Context, Event) error { return nil }

// Close does nothing.
func (Null) Close() error { return nil }

var _ Publisher = Null{}
