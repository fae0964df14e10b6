// Package session manages editing sessions. Each session owns one
// [layout.Engine], and therefore one surface.
//
// Sessions live in memory and expire after a period of inactivity:
// every successful [Store.Get] slides the expiry forward by the store's TTL.
// Layouts are not persisted; an expired session is gone.
//
//	store := session.NewMemoryStore(session.DefaultTTL)
//	sess := session.New(seed, session.DefaultTTL, layout.WithLogger(logger))
//	_ = store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, id)
//	if errors.Is(err, errors.ErrCodeSessionNotFound) {
//	    // unknown or expired
//	}
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gridboard/pkg/layout"
)

// DefaultTTL is the default idle lifetime of a session.
const DefaultTTL = 2 * time.Hour

// Session is one user's editing session.
type Session struct {
	ID        string
	Engine    *layout.Engine
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session expired before now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get returns a copy of the session with id and extends its expiry.
	// Missing or expired sessions yield a SESSION_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a copy of sess, replacing any with the same id.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions and reports how many were dropped.
	Cleanup(ctx context.Context) (int, error)
}

// GenerateID returns a new random session id.
func GenerateID() string {
	return uuid.NewString()
}

// New starts a session editing seed. The engine is named after the session
// id so its log lines and change events can be correlated.
func New(seed layout.Layout, ttl time.Duration, opts ...layout.Option) *Session {
	id := GenerateID()
	now := time.Now()
	opts = append(opts, layout.WithName(id))
	return &Session{
		ID:        id,
		Engine:    layout.NewEngine(seed, opts...),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
