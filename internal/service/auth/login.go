package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mojam-curator/internal/auth"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// Login checks the editor password and issues an access token.
// Returns ErrUnauthorized if no password is configured or it does not match.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if s.cfg.PasswordHash == "" {
		s.log.WarnContext(ctx, "login attempted without a configured password")
		return nil, domain.ErrUnauthorized
	}
	if err := auth.CheckPassword(s.cfg.PasswordHash, input.Password); err != nil {
		s.log.InfoContext(ctx, "login rejected")
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(s.cfg.EditorName)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "editor logged in", slog.String("editor", s.cfg.EditorName))

	return &AuthResult{
		AccessToken: token,
		Editor:      s.cfg.EditorName,
		ExpiresIn:   int(s.jwt.TTL().Seconds()),
	}, nil
}
