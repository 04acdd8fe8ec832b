package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mojam-curator/internal/domain"
	"github.com/heartmarshall/mojam-curator/internal/service/auth"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// AuthHandler exchanges the editor password for a bearer token.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	Editor      string `json:"editor"`
	ExpiresIn   int    `json:"expiresIn"`
}

// Login handles POST /api/auth/login. Tokens are never cached by
// intermediaries, and rejected attempts are logged with the client address.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	var in auth.LoginInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.log.WarnContext(r.Context(), "login rejected", slog.String("remote", r.RemoteAddr))
		}
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse(*result))
}
