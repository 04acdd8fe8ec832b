// Package dataset manages the curated word lists: per-root reads and
// writes, the guarded wholesale replace, and completion progress.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

type wordListRepo interface {
	Get(ctx context.Context, mojam, root string) (domain.WordList, error)
	Upsert(ctx context.Context, wl domain.WordList) (domain.WordList, error)
	Delete(ctx context.Context, mojam, root string) error
	Dataset(ctx context.Context) (domain.Dataset, error)
	ReplaceAll(ctx context.Context, d domain.Dataset) (int, error)
	CountRoots(ctx context.Context) (int, error)
	CountByMojam(ctx context.Context, mojam string) (int, error)
	CountOrphans(ctx context.Context, mojam string) (int, error)
	DeleteOrphans(ctx context.Context, mojam string) (int64, error)
}

type mojamLister interface {
	ListMojams(ctx context.Context) ([]domain.MojamSummary, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides word list operations.
type Service struct {
	lists    wordListRepo
	mojams   mojamLister
	tx       txManager
	minRoots int
	log      *slog.Logger
}

// NewService creates a new dataset service. minRoots is the smallest
// dataset ReplaceDataset accepts.
func NewService(
	log *slog.Logger,
	lists wordListRepo,
	mojams mojamLister,
	tx txManager,
	minRoots int,
) *Service {
	return &Service{
		lists:    lists,
		mojams:   mojams,
		tx:       tx,
		minRoots: minRoots,
		log:      log.With("service", "dataset"),
	}
}

// Dataset returns every stored list. An empty store reads as the default
// mojam with no roots.
func (s *Service) Dataset(ctx context.Context) (domain.Dataset, error) {
	d, err := s.lists.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataset.Dataset: %w", err)
	}
	if len(d) == 0 {
		d = domain.Dataset{domain.DefaultMojam: {}}
	}
	return d, nil
}

// ReplaceDataset swaps every stored list for d after the sanity gate.
// Returns the number of stored lists.
func (s *Service) ReplaceDataset(ctx context.Context, d domain.Dataset) (int, error) {
	stored, err := s.lists.CountRoots(ctx)
	if err != nil {
		return 0, fmt.Errorf("dataset.ReplaceDataset: %w", err)
	}

	if err := domain.CheckDatasetReplace(d, stored, s.minRoots); err != nil {
		s.log.WarnContext(ctx, "dataset replace rejected",
			slog.Int("stored_roots", stored),
			slog.Int("payload_roots", d.RootCount()),
			slog.String("reason", err.Error()),
		)
		return 0, err
	}

	var written int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		written, err = s.lists.ReplaceAll(txCtx, d)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("dataset.ReplaceDataset: %w", err)
	}

	s.log.InfoContext(ctx, "dataset replaced",
		slog.Int("mojams", len(d)),
		slog.Int("roots", written),
	)

	return written, nil
}

// Words returns the stored list of a root. found is false when the root has
// no list; an empty stored list reports found.
func (s *Service) Words(ctx context.Context, mojam, root string) (words []string, found bool, err error) {
	wl, err := s.lists.Get(ctx, mojam, root)
	if errors.Is(err, domain.ErrNotFound) {
		return []string{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dataset.Words: %w", err)
	}
	return wl.Words, true, nil
}

// SaveWordsInput holds the parameters for storing the list of a root.
type SaveWordsInput struct {
	Mojam string
	Root  string
	Words []string
}

// Validate checks all fields and collects all errors.
func (i SaveWordsInput) Validate() error {
	var errs domain.FieldErrors

	if strings.TrimSpace(i.Mojam) == "" {
		errs.Add("mojam", "required")
	}
	if strings.TrimSpace(i.Root) == "" {
		errs.Add("root", "required")
	}

	return errs.Err()
}

// SaveWords stores the list of a root. Words are trimmed and deduplicated;
// an empty list is stored as such.
func (s *Service) SaveWords(ctx context.Context, input SaveWordsInput) (domain.WordList, error) {
	if err := input.Validate(); err != nil {
		return domain.WordList{}, err
	}

	saved, err := s.lists.Upsert(ctx, domain.WordList{
		Mojam: input.Mojam,
		Root:  input.Root,
		Words: domain.NormalizeWords(input.Words),
	})
	if err != nil {
		return domain.WordList{}, fmt.Errorf("dataset.SaveWords: %w", err)
	}

	s.log.DebugContext(ctx, "words saved",
		slog.String("mojam", input.Mojam),
		slog.String("root", input.Root),
		slog.Int("words", len(saved.Words)),
	)

	return saved, nil
}

// DeleteWords removes the list of a root, returning it to the uncurated state.
func (s *Service) DeleteWords(ctx context.Context, mojam, root string) error {
	if err := s.lists.Delete(ctx, mojam, root); err != nil {
		return fmt.Errorf("dataset.DeleteWords: %w", err)
	}

	s.log.DebugContext(ctx, "words deleted",
		slog.String("mojam", mojam),
		slog.String("root", root),
	)

	return nil
}

// CuratedTotal returns the number of stored lists across all mojams.
func (s *Service) CuratedTotal(ctx context.Context) (int, error) {
	n, err := s.lists.CountRoots(ctx)
	if err != nil {
		return 0, fmt.Errorf("dataset.CuratedTotal: %w", err)
	}
	return n, nil
}

// Curated returns the number of roots of a mojam that own a list.
func (s *Service) Curated(ctx context.Context, mojam string) (int, error) {
	n, err := s.lists.CountByMojam(ctx, mojam)
	if err != nil {
		return 0, fmt.Errorf("dataset.Curated: %w", err)
	}
	return n, nil
}

// Progress reports how many roots of a mojam own a list.
// Returns domain.ErrNotFound for an unknown mojam.
func (s *Service) Progress(ctx context.Context, mojam string) (domain.Progress, error) {
	mojams, err := s.mojams.ListMojams(ctx)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("dataset.Progress: %w", err)
	}

	total := -1
	for _, m := range mojams {
		if m.Mojam == mojam {
			total = m.Roots
			break
		}
	}
	if total < 0 {
		return domain.Progress{}, fmt.Errorf("dataset.Progress: mojam %q: %w", mojam, domain.ErrNotFound)
	}

	completed, err := s.Curated(ctx, mojam)
	if err != nil {
		return domain.Progress{}, err
	}

	return domain.NewProgress(mojam, completed, total), nil
}

// PruneOrphans removes the lists of roots that no longer have a passage,
// in one mojam or, with an empty mojam, everywhere. With dryRun set nothing
// is deleted and the count of lists that would go is returned.
func (s *Service) PruneOrphans(ctx context.Context, mojam string, dryRun bool) (int, error) {
	if dryRun {
		n, err := s.lists.CountOrphans(ctx, mojam)
		if err != nil {
			return 0, fmt.Errorf("dataset.PruneOrphans: %w", err)
		}
		return n, nil
	}

	n, err := s.lists.DeleteOrphans(ctx, mojam)
	if err != nil {
		return 0, fmt.Errorf("dataset.PruneOrphans: %w", err)
	}

	s.log.InfoContext(ctx, "orphaned word lists pruned",
		slog.String("mojam", mojam),
		slog.Int64("deleted", n),
	)

	return int(n), nil
}
