package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// Stats counts the stored corpus.
type Stats struct {
	Mojams int
	Roots  int
	Notes  int
}

// Resources returns the whole corpus, mojams and passages in stored order.
func (s *Service) Resources(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.passages.Corpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus.Resources: %w", err)
	}
	return collections, nil
}

// ReplaceResources swaps the stored corpus for collections in one
// transaction. Mojams absent from collections are deleted.
// Returns the number of stored passages.
func (s *Service) ReplaceResources(ctx context.Context, collections []domain.Collection) (int, error) {
	if len(collections) == 0 {
		return 0, domain.NewValidationError("resources", "at least one mojam is required")
	}
	if err := validateCollections(collections); err != nil {
		return 0, err
	}

	keep := make([]string, 0, len(collections))
	stored := 0
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range collections {
			n, err := s.passages.ReplaceMojam(txCtx, c.Mojam, c.Passages)
			if err != nil {
				return fmt.Errorf("replace mojam %s: %w", c.Mojam, err)
			}
			stored += n
			keep = append(keep, c.Mojam)
		}

		if _, err := s.passages.Prune(txCtx, keep); err != nil {
			return fmt.Errorf("prune mojams: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("corpus.ReplaceResources: %w", err)
	}
	s.index.invalidate()

	s.log.InfoContext(ctx, "resources replaced",
		slog.Int("mojams", len(collections)),
		slog.Int("passages", stored),
	)

	return stored, nil
}

// Stats counts mojams, passages and notes.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	mojams, err := s.passages.ListMojams(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus.Stats: %w", err)
	}

	roots, err := s.passages.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus.Stats: %w", err)
	}

	notes, err := s.notes.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus.Stats: %w", err)
	}

	return Stats{Mojams: len(mojams), Roots: roots, Notes: len(notes)}, nil
}
