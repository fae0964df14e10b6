package layout

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridboard/pkg/notify"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// Result describes one intent application.
type Result struct {
	Intent  Intent
	Outcome Outcome
	Layout  Layout // snapshot after the intent; unchanged unless Outcome is OutcomeApplied
	Version uint64 // engine version after the intent
}

// Changed reports whether the intent produced a new snapshot.
func (r Result) Changed() bool { return r.Outcome == OutcomeApplied }

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithPublisher sets where change events are sent.
func WithPublisher(p notify.Publisher) Option {
	return func(e *Engine) {
		if p != nil {
			e.publisher = p
		}
	}
}

// WithName labels the surface in logs and change events.
func WithName(name string) Option {
	return func(e *Engine) { e.name = name }
}

// Engine owns the current layout of one surface. Intents are applied one at
// a time; concurrent callers are serialised.
type Engine struct {
	mu      sync.Mutex
	current Layout
	version uint64

	name      string
	logger    *log.Logger
	publisher notify.Publisher
}

// NewEngine creates an engine starting from initial.
func NewEngine(initial Layout, opts ...Option) *Engine {
	e := &Engine{
		current:   initial,
		logger:    log.Default(),
		publisher: notify.NewNull(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the surface label set with WithName.
func (e *Engine) Name() string { return e.name }

// Snapshot returns the current layout and its version.
func (e *Engine) Snapshot() (Layout, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current, e.version
}

// Apply applies in to the current layout. A rejection is returned as the
// error and leaves the engine untouched; the Result still carries the
// current snapshot so callers can re-render.
func (e *Engine) Apply(ctx context.Context, in Intent) (Result, error) {
	start := time.Now()

	kind, subject := "", ""
	if n, nerr := normalize(in); nerr == nil {
		in = n
		kind, subject = string(n.Kind()), n.Subject()
	}

	e.mu.Lock()
	next, outcome, err := e.current.Apply(in)
	if outcome == OutcomeApplied {
		e.current = next
		e.version++
	}
	res := Result{Intent: in, Outcome: outcome, Layout: e.current, Version: e.version}
	e.mu.Unlock()

	observability.Engine().OnIntent(ctx, kind, subject, outcome.String(), time.Since(start), err)

	if err != nil {
		e.logger.Debug("intent rejected", "surface", e.name, "intent", kind, "widget", subject, "err", err)
		return res, err
	}
	e.logger.Debug("intent", "surface", e.name, "intent", kind, "widget", subject, "outcome", outcome, "version", res.Version)

	if res.Changed() {
		ev := notify.Event{
			Session:  e.name,
			Version:  res.Version,
			Intent:   kind,
			WidgetID: subject,
			Surface:  res.Layout.SurfaceIDs(),
			At:       time.Now().UTC(),
		}
		if perr := e.publisher.Publish(ctx, ev); perr != nil {
			e.logger.Warn("publish change", "surface", e.name, "version", res.Version, "err", perr)
		}
	}
	return res, nil
}

// Place applies a PlaceIntent. A nil position appends.
func (e *Engine) Place(ctx context.Context, id string, position *int) (Result, error) {
	return e.Apply(ctx, PlaceIntent{WidgetID: id, Position: position})
}

// Reorder applies a ReorderIntent.
func (e *Engine) Reorder(ctx context.Context, id, targetID string) (Result, error) {
	return e.Apply(ctx, ReorderIntent{WidgetID: id, TargetID: targetID})
}

// Remove applies a RemoveIntent.
func (e *Engine) Remove(ctx context.Context, id string) (Result, error) {
	return e.Apply(ctx, RemoveIntent{WidgetID: id})
}

// Resize applies a ResizeIntent.
func (e *Engine) Resize(ctx context.Context, id string, span int) (Result, error) {
	return e.Apply(ctx, ResizeIntent{WidgetID: id, Span: span})
}

// Nudge applies a NudgeIntent.
func (e *Engine) Nudge(ctx context.Context, id string, dir Direction) (Result, error) {
	return e.Apply(ctx, NudgeIntent{WidgetID: id, Direction: dir})
}
