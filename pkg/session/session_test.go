package session

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/gridboard/pkg/catalog"
	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/layout"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T, ttl time.Duration) (*MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(ttl)
	s.now = clock.Now
	return s, clock
}

func newSession(t *testing.T, clock *fakeClock, ttl time.Duration) *Session {
	t.Helper()
	seed, err := layout.New(catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	sess := New(seed, ttl)
	sess.CreatedAt = clock.Now()
	sess.ExpiresAt = clock.Now().Add(ttl)
	return sess
}

func TestNew(t *testing.T) {
	seed, err := layout.New(catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	a := New(seed, time.Minute)
	b := New(seed, time.Minute)

	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids not unique: %q %q", a.ID, b.ID)
	}
	if a.Engine.Name() != a.ID {
		t.Errorf("engine name = %q, want %q", a.Engine.Name(), a.ID)
	}
	if got := a.ExpiresAt.Sub(a.CreatedAt); got != time.Minute {
		t.Errorf("ttl = %v", got)
	}

	if _, err := a.Engine.Place(context.Background(), "sales-1", nil); err != nil {
		t.Fatal(err)
	}
	if l, _ := b.Engine.Snapshot(); l.PlacedCount() != 0 {
		t.Error("sessions must not share a surface")
	}
}

func TestMemoryStoreGetSlidesExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, time.Hour)
	sess := newSession(t, clock, time.Hour)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}

	clock.Advance(50 * time.Minute)
	if _, err := store.Get(ctx, sess.ID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	clock.Advance(50 * time.Minute)
	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get() after slide error = %v", err)
	}
	if want := clock.Now().Add(time.Hour); !got.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, want)
	}

	clock.Advance(61 * time.Minute)
	if _, err := store.Get(ctx, sess.ID); !errs.Is(err, errs.ErrCodeSessionNotFound) {
		t.Fatalf("Get() expired error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expired session not dropped")
	}
}

func TestMemoryStoreCopiesSessions(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, time.Hour)
	sess := newSession(t, clock, time.Hour)
	created := sess.ExpiresAt
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}

	clock.Advance(10 * time.Minute)
	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.ExpiresAt.Equal(created) {
		t.Errorf("Get mutated the caller's session: ExpiresAt = %v, want %v", sess.ExpiresAt, created)
	}
	if got == sess {
		t.Error("Get returned the stored pointer")
	}
	if got.Engine != sess.Engine {
		t.Error("copies must share the engine")
	}

	got.ExpiresAt = time.Time{}
	again, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("editing a returned copy affected the store: %v", err)
	}
	if want := clock.Now().Add(time.Hour); !again.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", again.ExpiresAt, want)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errs.Is(err, errs.ErrCodeSessionNotFound) {
		t.Errorf("Get(missing) error = %v", err)
	}
	if _, err := store.Get(ctx, "a/b"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Get(a/b) error = %v", err)
	}
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
	if err := store.Set(ctx, nil); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Set(nil) error = %v", err)
	}
}

func TestMemoryStoreDeleteAndCleanup(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, time.Hour)

	short := newSession(t, clock, time.Minute)
	long := newSession(t, clock, 2*time.Hour)
	gone := newSession(t, clock, time.Hour)
	for _, s := range []*Session{short, long, gone} {
		if err := store.Set(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Delete(ctx, gone.ID); err != nil {
		t.Fatal(err)
	}
	clock.Advance(10 * time.Minute)

	n, err := store.Cleanup(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || store.Len() != 1 {
		t.Fatalf("Cleanup() = %d, Len() = %d; want 1, 1", n, store.Len())
	}
	if _, err := store.Get(ctx, long.ID); err != nil {
		t.Errorf("long-lived session lost: %v", err)
	}
}

func TestNewMemoryStoreDefaultTTL(t *testing.T) {
	if got := NewMemoryStore(0).TTL(); got != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTTL)
	}
}
