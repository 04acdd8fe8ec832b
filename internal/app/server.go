package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mojam-curator/internal/auth"
	"github.com/heartmarshall/mojam-curator/internal/config"
	"github.com/heartmarshall/mojam-curator/internal/domain"
	authsvc "github.com/heartmarshall/mojam-curator/internal/service/auth"
	"github.com/heartmarshall/mojam-curator/internal/service/session"
	"github.com/heartmarshall/mojam-curator/internal/transport/middleware"
	"github.com/heartmarshall/mojam-curator/internal/transport/rest"
)

// Server is the HTTP handler together with the background parts it owns.
type Server struct {
	Handler   http.Handler
	Sessions  *session.Service
	Persister *session.Persister
	limiter   *middleware.RateLimiter
}

// NewServer wires sessions, auth and the REST router on top of comps.
func NewServer(comps *Components, cfg *config.Config, logger *slog.Logger) *Server {
	persister := session.NewPersister(logger, comps.Dataset, session.PersisterConfig{
		Debounce: cfg.Session.SaveDebounce,
		Attempts: cfg.Session.PersistAttempts,
		Backoff:  cfg.Session.PersistBackoff,
	})
	defaultSort, _ := domain.ParseSortMode(cfg.Curation.DefaultSort)
	sessions := session.NewService(logger, comps.Engine, comps.Corpus, comps.Dataset, persister, session.Config{
		DefaultMojam: cfg.Curation.DefaultMojam,
		DefaultSort:  defaultSort,
		IdleTTL:      cfg.Session.IdleTTL,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, jwtManager, cfg.Auth)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	routerCfg := rest.RouterConfig{
		Server:      cfg.Server,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		AuthEnabled: authService.Enabled(),
		Limiter:     limiter,
	}
	if authService.Enabled() {
		routerCfg.Tokens = authService
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(comps.Pool, persister, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		Legacy:    rest.NewLegacyHandler(comps.Corpus, comps.Dataset, sessions, logger),
		Resources: rest.NewResourceHandler(comps.Corpus, comps.Dataset, comps.Engine, logger),
		Text:      rest.NewTextHandler(comps.Engine.Tables(), logger),
		Sessions:  rest.NewSessionHandler(sessions, logger),
	}, routerCfg, logger)

	return &Server{
		Handler:   handler,
		Sessions:  sessions,
		Persister: persister,
		limiter:   limiter,
	}
}

// RunJanitor evicts idle sessions until ctx ends.
func (s *Server) RunJanitor(ctx context.Context, interval time.Duration) {
	s.Sessions.RunJanitor(ctx, interval)
}

// Close stops the rate limiter and writes every pending word list.
func (s *Server) Close(ctx context.Context) error {
	s.limiter.Stop()
	return s.Persister.Close(ctx)
}
