package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mojam-curator/internal/config"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// jwtManager defines the token operations needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(editor string) (string, error)
	ValidateAccessToken(token string) (string, error)
	TTL() time.Duration
}

// Service authenticates the editor. There is a single editor account whose
// bcrypt password hash lives in the configuration.
type Service struct {
	log *slog.Logger
	jwt jwtManager
	cfg config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log: logger.With("service", "auth"),
		jwt: jwt,
		cfg: cfg,
	}
}

// Enabled reports whether mutating requests need a token.
func (s *Service) Enabled() bool { return s.cfg.Enabled }

// ValidateToken validates an access token and returns the editor it was
// issued to. Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	editor, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return "", domain.ErrUnauthorized
	}
	return editor, nil
}
