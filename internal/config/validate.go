package config

import (
	"fmt"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled {
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
		}
		if c.Auth.PasswordHash == "" {
			return fmt.Errorf("auth.password_hash is required when auth is enabled")
		}
	}

	if err := c.Curation.validate(); err != nil {
		return fmt.Errorf("curation: %w", err)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.LoginPerMin <= 0) {
		return fmt.Errorf("rate_limit: limits must be > 0")
	}

	return nil
}

func (c *CurationConfig) validate() error {
	if c.DefaultMojam == "" {
		return fmt.Errorf("default_mojam must not be empty")
	}
	if _, err := domain.ParseSortMode(c.DefaultSort); err != nil {
		return fmt.Errorf("default_sort: %w", err)
	}
	if c.MinDatasetRoots < 0 {
		return fmt.Errorf("min_dataset_roots must be >= 0 (got %d)", c.MinDatasetRoots)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if s.SaveDebounce < 0 {
		return fmt.Errorf("save_debounce must be >= 0 (got %v)", s.SaveDebounce)
	}
	if s.IdleTTL <= 0 {
		return fmt.Errorf("idle_ttl must be > 0 (got %v)", s.IdleTTL)
	}
	if s.PersistAttempts < 1 {
		return fmt.Errorf("persist_attempts must be >= 1 (got %d)", s.PersistAttempts)
	}
	return nil
}
