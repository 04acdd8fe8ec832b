package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mojam-curator/internal/config"
	"github.com/heartmarshall/mojam-curator/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Legacy    *LegacyHandler
	Resources *ResourceHandler
	Text      *TextHandler
	Sessions  *SessionHandler
}

// RouterConfig holds what the router needs beyond the handlers.
type RouterConfig struct {
	Server    config.ServerConfig
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	// AuthEnabled puts every write behind RequireEditor.
	AuthEnabled bool
	Tokens      tokenValidator
	Limiter     *middleware.RateLimiter
}

// NewRouter mounts all endpoints on a ServeMux and wraps it in the global
// middleware chain.
func NewRouter(h Handlers, cfg RouterConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	editorOnly := middleware.Chain(middleware.When(cfg.AuthEnabled, middleware.RequireEditor))
	write := func(fn http.HandlerFunc) http.Handler { return editorOnly(fn) }
	open := func(fn http.HandlerFunc) http.Handler { return fn }

	// Rate limits apply only with a limiter; nil entries drop out of Chain.
	var limit, loginLimit, auth middleware.Middleware
	if cfg.Limiter != nil && cfg.RateLimit.Enabled {
		limit = cfg.Limiter.Limit(cfg.RateLimit.RequestsPerMin)
		loginLimit = cfg.Limiter.Limit(cfg.RateLimit.LoginPerMin)
	}
	if cfg.Tokens != nil {
		auth = middleware.Auth(cfg.Tokens)
	}

	// Probes
	mux.Handle("GET /live", open(h.Health.Live))
	mux.Handle("GET /ready", open(h.Health.Ready))
	mux.Handle("GET /health", open(h.Health.Health))

	// Login
	mux.Handle("POST /api/auth/login", middleware.Chain(loginLimit)(http.HandlerFunc(h.Auth.Login)))

	// Whole-document endpoints
	mux.Handle("GET /api/status", open(h.Legacy.Status))
	mux.Handle("GET /api/get-dataset", open(h.Legacy.GetDataset))
	mux.Handle("POST /api/save-dataset", write(h.Legacy.SaveDataset))
	mux.Handle("GET /api/get-resources", open(h.Legacy.GetResources))
	mux.Handle("POST /api/save-resources", write(h.Legacy.SaveResources))
	mux.Handle("POST /api/update-root", write(h.Legacy.UpdateRoot))
	mux.Handle("GET /api/get-spectrum", open(h.Legacy.GetSpectrum))
	mux.Handle("POST /api/save-spectrum", write(h.Legacy.SaveSpectrum))

	// Per-root resources
	mux.Handle("GET /api/mojams", open(h.Resources.Mojams))
	mux.Handle("GET /api/mojams/{mojam}/roots", open(h.Resources.Roots))
	mux.Handle("GET /api/mojams/{mojam}/roots/{root}", open(h.Resources.Root))
	mux.Handle("GET /api/mojams/{mojam}/progress", open(h.Resources.Progress))
	mux.Handle("PUT /api/mojams/{mojam}/roots/{root}/words", write(h.Resources.PutWords))
	mux.Handle("DELETE /api/mojams/{mojam}/roots/{root}/words", write(h.Resources.DeleteWords))
	mux.Handle("PUT /api/notes/{root}", write(h.Resources.PutNote))

	// Text engine
	mux.Handle("POST /api/text/segment", open(h.Text.Segment))
	mux.Handle("POST /api/text/extract", open(h.Text.Extract))
	mux.Handle("POST /api/text/highlight", open(h.Text.Highlight))

	// Sessions
	mux.Handle("POST /api/sessions", write(h.Sessions.Create))
	mux.Handle("GET /api/sessions/{id}", write(h.Sessions.Get))
	mux.Handle("DELETE /api/sessions/{id}", write(h.Sessions.Delete))
	mux.Handle("POST /api/sessions/{id}/{action}", write(h.Sessions.Action))

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		auth,
	}

	return middleware.Chain(mws...)(mux)
}
