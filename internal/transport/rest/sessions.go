package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mojam-curator/internal/domain"
	"github.com/heartmarshall/mojam-curator/internal/service/session"
	"github.com/heartmarshall/mojam-curator/pkg/ctxutil"
)

type sessionService interface {
	Start(ctx context.Context, input session.StartInput) (session.View, error)
	Get(ctx context.Context, id string) (session.View, error)
	Close(ctx context.Context, id string) error
	Select(ctx context.Context, id, root string) (session.View, error)
	Next(ctx context.Context, id string) (session.View, error)
	Prev(ctx context.Context, id string) (session.View, error)
	Sort(ctx context.Context, id string, mode domain.SortMode) (session.View, error)
	Toggle(ctx context.Context, id, raw string) (session.View, error)
	SelectWord(ctx context.Context, id, word string) (session.View, error)
	AddPrefix(ctx context.Context, id, prefix string) (session.View, error)
	AddDiacritic(ctx context.Context, id, name string) (session.View, error)
	Edit(ctx context.Context, id, word string) (session.View, error)
	Delete(ctx context.Context, id string) (session.View, error)
	Reset(ctx context.Context, id string) (session.View, error)
}

// SessionHandler exposes editing sessions. Every action answers with the
// full session view.
type SessionHandler struct {
	sessions sessionService
	log      *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: logger.With("handler", "sessions")}
}

type startSessionRequest struct {
	Mojam string `json:"mojam"`
	Sort  string `json:"sort"`
	Root  string `json:"root"`
}

// actionRequest carries the argument of a session action. Which field is
// read depends on the action.
type actionRequest struct {
	Root      string `json:"root"`
	Word      string `json:"word"`
	Prefix    string `json:"prefix"`
	Diacritic string `json:"diacritic"`
	Sort      string `json:"sort"`
}

type sessionAction func(ctx context.Context, id string, req actionRequest) (session.View, error)

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, h.log, err)
			return
		}
	}

	view, err := h.sessions.Start(r.Context(), session.StartInput{
		Mojam: req.Mojam,
		Sort:  domain.SortMode(req.Sort),
		Root:  req.Root,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	r = withSessionID(r)
	view, err := h.sessions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	r = withSessionID(r)
	if err := h.sessions.Close(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Action handles POST /api/sessions/{id}/{action}.
func (h *SessionHandler) Action(w http.ResponseWriter, r *http.Request) {
	r = withSessionID(r)
	name := r.PathValue("action")
	act, ok := h.actions()[name]
	if !ok {
		respondError(w, r, h.log, domain.ErrNotFound)
		return
	}

	var req actionRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, h.log, err)
			return
		}
	}

	view, err := act(r.Context(), r.PathValue("id"), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// withSessionID tags the request context with the {id} path value so
// error logs can name the session.
func withSessionID(r *http.Request) *http.Request {
	return r.WithContext(ctxutil.WithSessionID(r.Context(), r.PathValue("id")))
}

func (h *SessionHandler) actions() map[string]sessionAction {
	s := h.sessions
	return map[string]sessionAction{
		"select": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.Select(ctx, id, req.Root)
		},
		"next": func(ctx context.Context, id string, _ actionRequest) (session.View, error) {
			return s.Next(ctx, id)
		},
		"prev": func(ctx context.Context, id string, _ actionRequest) (session.View, error) {
			return s.Prev(ctx, id)
		},
		"sort": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.Sort(ctx, id, domain.SortMode(req.Sort))
		},
		"toggle": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.Toggle(ctx, id, req.Word)
		},
		"select-word": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.SelectWord(ctx, id, req.Word)
		},
		"prefix": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.AddPrefix(ctx, id, req.Prefix)
		},
		"diacritic": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.AddDiacritic(ctx, id, req.Diacritic)
		},
		"edit": func(ctx context.Context, id string, req actionRequest) (session.View, error) {
			return s.Edit(ctx, id, req.Word)
		},
		"delete": func(ctx context.Context, id string, _ actionRequest) (session.View, error) {
			return s.Delete(ctx, id)
		},
		"reset": func(ctx context.Context, id string, _ actionRequest) (session.View, error) {
			return s.Reset(ctx, id)
		},
	}
}
