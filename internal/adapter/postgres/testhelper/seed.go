package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// UniqueMojam returns a mojam name no other test uses, so parallel tests
// sharing one database never see each other's rows.
func UniqueMojam(t *testing.T) string {
	t.Helper()
	return "معجم-" + uuid.New().String()[:8]
}

// SeedPassages inserts one passage per root of mojam, in argument order.
// roots alternates root and passage text: SeedPassages(t, pool, m, "أبب", "...", "أبا", "...").
func SeedPassages(t *testing.T, pool *pgxpool.Pool, mojam string, roots ...string) []domain.Passage {
	t.Helper()
	if len(roots)%2 != 0 {
		t.Fatalf("testhelper: SeedPassages needs root/text pairs, got %d values", len(roots))
	}
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO mojams (name, position)
		 VALUES ($1, (SELECT COALESCE(MAX(position) + 1, 0) FROM mojams))
		 ON CONFLICT (name) DO NOTHING`,
		mojam,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPassages insert mojam: %v", err)
	}

	passages := make([]domain.Passage, 0, len(roots)/2)
	for i := 0; i < len(roots); i += 2 {
		p := domain.Passage{
			Mojam:     mojam,
			Root:      roots[i],
			Text:      roots[i+1],
			Position:  i / 2,
			WordCount: domain.CountWords(roots[i+1]),
		}
		err := pool.QueryRow(ctx,
			`INSERT INTO passages (mojam, root, body, position, word_count)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING updated_at`,
			p.Mojam, p.Root, p.Text, p.Position, p.WordCount,
		).Scan(&p.UpdatedAt)
		if err != nil {
			t.Fatalf("testhelper: SeedPassages insert %s: %v", p.Root, err)
		}
		passages = append(passages, p)
	}

	return passages
}

// SeedWordList stores words for (mojam, root).
func SeedWordList(t *testing.T, pool *pgxpool.Pool, mojam, root string, words ...string) domain.WordList {
	t.Helper()
	if words == nil {
		words = []string{}
	}

	wl := domain.WordList{Mojam: mojam, Root: root, Words: words}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO word_lists (mojam, root, words) VALUES ($1, $2, $3)
		 RETURNING updated_at`,
		mojam, root, words,
	).Scan(&wl.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWordList insert %s/%s: %v", mojam, root, err)
	}

	return wl
}

// SeedNote stores a note for root, replacing any existing one.
func SeedNote(t *testing.T, pool *pgxpool.Pool, root, text string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO root_notes (root, body) VALUES ($1, $2)
		 ON CONFLICT (root) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		root, text,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert %s: %v", root, err)
	}
}
