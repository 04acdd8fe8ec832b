// Package corpus serves the mojam passages and the root notes: listing and
// searching roots, reading and editing passages, and whole-corpus import
// and export.
package corpus

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

type passageRepo interface {
	ListMojams(ctx context.Context) ([]domain.MojamSummary, error)
	ListRoots(ctx context.Context, mojam string, filter domain.RootFilter) ([]domain.RootSummary, error)
	Get(ctx context.Context, mojam, root string) (domain.Passage, error)
	Upsert(ctx context.Context, p domain.Passage) (domain.Passage, error)
	ReplaceMojam(ctx context.Context, mojam string, passages []domain.Passage) (int, error)
	Prune(ctx context.Context, keep []string) (int, error)
	Corpus(ctx context.Context) ([]domain.Collection, error)
	Count(ctx context.Context) (int, error)
}

type noteRepo interface {
	Get(ctx context.Context, root string) (domain.Note, error)
	All(ctx context.Context) ([]domain.Note, error)
	Upsert(ctx context.Context, n domain.Note) (domain.Note, error)
	ReplaceAll(ctx context.Context, notes []domain.Note) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides read and write access to passages and notes.
type Service struct {
	passages passageRepo
	notes    noteRepo
	tx       txManager
	index    *rootIndex
	log      *slog.Logger
}

// NewService creates a new corpus service.
func NewService(
	log *slog.Logger,
	passages passageRepo,
	notes noteRepo,
	tx txManager,
) *Service {
	return &Service{
		passages: passages,
		notes:    notes,
		tx:       tx,
		index:    newRootIndex(),
		log:      log.With("service", "corpus"),
	}
}
