package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridboard/pkg/buildinfo"
	errs "github.com/matzehuels/gridboard/pkg/errors"
	gio "github.com/matzehuels/gridboard/pkg/io"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/session"
)

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID        string       `json:"id"`
	ExpiresAt time.Time    `json:"expires_at"`
	Snapshot  gio.Snapshot `json:"snapshot"`
}

// IntentResponse reports the result of one intent.
type IntentResponse struct {
	Outcome string         `json:"outcome"`
	Version uint64         `json:"version"`
	Surface gio.SurfaceDoc `json:"surface"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errs.New(errs.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New(s.seed, s.ttl, layout.WithLogger(s.logger), layout.WithPublisher(s.publisher))
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	l, version := sess.Engine.Snapshot()
	s.logger.Info("session created", "session", sess.ID)
	writeJSON(w, http.StatusCreated, SessionResponse{
		ID:        sess.ID,
		ExpiresAt: sess.ExpiresAt,
		Snapshot:  gio.NewSnapshot(l, version),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	l, version := sess.Engine.Snapshot()
	writeJSON(w, http.StatusOK, gio.NewSnapshot(l, version))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := errs.ValidateSessionID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	l, _ := sess.Engine.Snapshot()
	writeJSON(w, http.StatusOK, gio.NewCatalogDoc(l.Catalog()))
}

func (s *Server) handleSurface(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	l, _ := sess.Engine.Snapshot()
	writeJSON(w, http.StatusOK, gio.NewSurfaceDoc(l.Surface()))
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	in, err := gio.DecodeIntent(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := sess.Engine.Apply(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IntentResponse{
		Outcome: res.Outcome.String(),
		Version: res.Version,
		Surface: gio.NewSurfaceDoc(res.Layout.Surface()),
	})
}

// session resolves the {sessionID} path parameter, writing the error
// response itself when it fails.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}
