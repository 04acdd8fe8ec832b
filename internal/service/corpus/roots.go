package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// RootDetail is a passage together with the note of its root.
type RootDetail struct {
	Passage domain.Passage
	Note    string
}

// ListMojams returns every mojam with its root count.
func (s *Service) ListMojams(ctx context.Context) ([]domain.MojamSummary, error) {
	mojams, err := s.passages.ListMojams(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus.ListMojams: %w", err)
	}
	return mojams, nil
}

// Summaries returns the roots of a mojam in import order.
func (s *Service) Summaries(ctx context.Context, mojam string) ([]domain.RootSummary, error) {
	summaries, err := s.passages.ListRoots(ctx, mojam, domain.RootFilter{})
	if err != nil {
		return nil, fmt.Errorf("corpus.Summaries: %w", err)
	}
	return summaries, nil
}

// ListRoots returns the roots of a mojam ordered by input.Sort. A prefix
// narrows the listing through the per-mojam trie; diacritics are ignored
// on both sides.
func (s *Service) ListRoots(ctx context.Context, input ListRootsInput) ([]domain.RootSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mode := input.Sort
	if mode == "" {
		mode = domain.SortDefault
	}

	prefix := strings.TrimSpace(input.Prefix)
	if prefix == "" {
		summaries, err := s.Summaries(ctx, input.Mojam)
		if err != nil {
			return nil, err
		}
		return domain.SortSummaries(summaries, mode), nil
	}

	trie, ok := s.index.lookup(input.Mojam)
	if !ok {
		summaries, err := s.Summaries(ctx, input.Mojam)
		if err != nil {
			return nil, err
		}
		trie = s.index.build(input.Mojam, summaries)
		s.log.DebugContext(ctx, "root index built",
			slog.String("mojam", input.Mojam),
			slog.Int("roots", len(summaries)),
		)
	}

	return domain.SortSummaries(search(trie, prefix), mode), nil
}

// GetRoot returns the passage of a root and its note. A missing note is
// reported as an empty string.
func (s *Service) GetRoot(ctx context.Context, mojam, root string) (RootDetail, error) {
	p, err := s.passages.Get(ctx, mojam, root)
	if err != nil {
		return RootDetail{}, fmt.Errorf("corpus.GetRoot: %w", err)
	}

	note, err := s.Note(ctx, root)
	if err != nil {
		return RootDetail{}, err
	}

	return RootDetail{Passage: p, Note: note}, nil
}

// UpdateRoot replaces the passage text of one root, creating the root (and
// its mojam) when absent.
func (s *Service) UpdateRoot(ctx context.Context, input UpdateRootInput) (domain.Passage, error) {
	if err := input.Validate(); err != nil {
		return domain.Passage{}, err
	}

	saved, err := s.passages.Upsert(ctx, domain.Passage{
		Mojam: input.Mojam,
		Root:  input.Root,
		Text:  *input.Text,
	})
	if err != nil {
		return domain.Passage{}, fmt.Errorf("corpus.UpdateRoot: %w", err)
	}
	s.index.invalidate(input.Mojam)

	s.log.InfoContext(ctx, "root updated",
		slog.String("mojam", input.Mojam),
		slog.String("root", input.Root),
		slog.Int("word_count", saved.WordCount),
	)

	return saved, nil
}

// Note returns the note of a root, or "" when it has none.
func (s *Service) Note(ctx context.Context, root string) (string, error) {
	n, err := s.notes.Get(ctx, root)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("corpus.Note: %w", err)
	}
	return n.Text, nil
}
