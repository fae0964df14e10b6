package session

import (
	"context"
	"sync"
	"time"

	errs "github.com/matzehuels/gridboard/pkg/errors"
)

// MemoryStore keeps sessions in a map. Safe for concurrent use. Set and Get
// copy the Session value; the Engine pointer is shared.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore returns an empty store whose sessions idle out after ttl.
// A non-positive ttl means DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// TTL returns the idle lifetime applied on each access.
func (s *MemoryStore) TTL() time.Duration { return s.ttl }

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	if err := errs.ValidateSessionID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, errs.New(errs.ErrCodeSessionNotFound, "session %q not found", id)
	}
	now := s.now()
	if sess.IsExpired(now) {
		delete(s.sessions, id)
		return nil, errs.New(errs.ErrCodeSessionNotFound, "session %q expired", id)
	}
	sess.ExpiresAt = now.Add(s.ttl)
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) Set(ctx context.Context, sess *Session) error {
	if sess == nil {
		return errs.New(errs.ErrCodeInvalidInput, "nil session")
	}
	if err := errs.ValidateSessionID(sess.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

var _ Store = (*MemoryStore)(nil)
