// Package wordlist implements the curated word list repository using
// PostgreSQL. A stored list, even an empty one, marks its root as curated.
package wordlist

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mojam-curator/internal/adapter/postgres"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

const defaultBatchSize = 500

// Repo provides word list persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	batchSize int
}

// New creates a new word list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, batchSize: defaultBatchSize}
}

// WithBatchSize bounds the statements sent per pgx batch on bulk writes.
func (r *Repo) WithBatchSize(n int) *Repo {
	if n > 0 {
		r.batchSize = n
	}
	return r
}

// Get returns the stored list of a root.
// Returns domain.ErrNotFound if the root has no list.
func (r *Repo) Get(ctx context.Context, mojam, root string) (domain.WordList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("mojam", "root", "words", "updated_at").
		From("word_lists").
		Where(squirrel.Eq{"mojam": mojam, "root": root})

	wl, err := scanWordList(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.WordList{}, postgres.MapError(err, "word_list", postgres.Key(mojam, root))
	}

	return wl, nil
}

// ListByMojam returns every stored list of a mojam keyed by root.
func (r *Repo) ListByMojam(ctx context.Context, mojam string) (map[string][]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("root", "words").
		From("word_lists").
		Where(squirrel.Eq{"mojam": mojam})

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var (
			root  string
			words []string
		)
		if err := rows.Scan(&root, &words); err != nil {
			return nil, fmt.Errorf("scan word list: %w", err)
		}
		result[root] = nonNil(words)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}

	return result, nil
}

// Upsert stores the words of a root, replacing any previous list.
func (r *Repo) Upsert(ctx context.Context, wl domain.WordList) (domain.WordList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Insert("word_lists").
		Columns("mojam", "root", "words", "updated_at").
		Values(wl.Mojam, wl.Root, nonNil(wl.Words), squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (mojam, root) DO UPDATE
			SET words = EXCLUDED.words, updated_at = now()
			RETURNING mojam, root, words, updated_at`)

	saved, err := scanWordList(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.WordList{}, postgres.MapError(err, "word_list", postgres.Key(wl.Mojam, wl.Root))
	}

	return saved, nil
}

// Delete removes the list of a root. Deleting a missing list is not an error.
func (r *Repo) Delete(ctx context.Context, mojam, root string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Delete("word_lists").
		Where(squirrel.Eq{"mojam": mojam, "root": root})

	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		return postgres.MapError(err, "word_list", postgres.Key(mojam, root))
	}

	return nil
}

// Dataset returns every stored list. Mojams without lists are absent.
func (r *Repo) Dataset(ctx context.Context) (domain.Dataset, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("mojam", "root", "words").
		From("word_lists").
		OrderBy("mojam", "root")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	defer rows.Close()

	result := domain.Dataset{}
	for rows.Next() {
		var (
			mojam, root string
			words       []string
		)
		if err := rows.Scan(&mojam, &root, &words); err != nil {
			return nil, fmt.Errorf("scan word list: %w", err)
		}
		if result[mojam] == nil {
			result[mojam] = make(map[string][]string)
		}
		result[mojam][root] = nonNil(words)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	return result, nil
}

// ReplaceAll swaps every stored list for the contents of d. Callers run it
// inside a transaction and apply the dataset sanity gate first.
// Returns the number of stored lists.
func (r *Repo) ReplaceAll(ctx context.Context, d domain.Dataset) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := postgres.Exec(ctx, q, postgres.Builder().Delete("word_lists")); err != nil {
		return 0, fmt.Errorf("clear word lists: %w", err)
	}

	now := time.Now().UTC()
	stored := 0
	batch := &pgx.Batch{}
	flush := func() error {
		n, err := postgres.SendBatch(ctx, q, batch)
		stored += n
		batch = &pgx.Batch{}
		if err != nil {
			return fmt.Errorf("store word lists: %w", err)
		}
		return nil
	}

	for mojam, roots := range d {
		for root, words := range roots {
			stmt := postgres.Builder().
				Insert("word_lists").
				Columns("mojam", "root", "words", "updated_at").
				Values(mojam, root, domain.NormalizeWords(words), now)
			if err := postgres.QueueSql(batch, stmt); err != nil {
				return stored, err
			}
			if batch.Len() >= r.batchSize {
				if err := flush(); err != nil {
					return stored, err
				}
			}
		}
	}

	if err := flush(); err != nil {
		return stored, err
	}

	return stored, nil
}

// orphaned matches lists whose root has no passage in its mojam.
const orphaned = "NOT EXISTS (SELECT 1 FROM passages p WHERE p.mojam = word_lists.mojam AND p.root = word_lists.root)"

func orphanFilter(mojam string) squirrel.Sqlizer {
	if mojam == "" {
		return squirrel.Expr(orphaned)
	}
	return squirrel.And{squirrel.Eq{"mojam": mojam}, squirrel.Expr(orphaned)}
}

// CountOrphans returns the number of lists left without a passage, in one
// mojam or, with an empty mojam, in all of them.
func (r *Repo) CountOrphans(ctx context.Context, mojam string) (int, error) {
	return r.count(ctx, orphanFilter(mojam))
}

// DeleteOrphans removes the lists CountOrphans would count and returns how
// many were removed.
func (r *Repo) DeleteOrphans(ctx context.Context, mojam string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Delete("word_lists").
		Where(orphanFilter(mojam))

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return 0, fmt.Errorf("delete orphaned word lists: %w", err)
	}

	return n, nil
}

// CountRoots returns the number of stored lists across all mojams.
func (r *Repo) CountRoots(ctx context.Context) (int, error) {
	return r.count(ctx, nil)
}

// CountByMojam returns the number of stored lists of one mojam.
func (r *Repo) CountByMojam(ctx context.Context, mojam string) (int, error) {
	return r.count(ctx, squirrel.Eq{"mojam": mojam})
}

func (r *Repo) count(ctx context.Context, where squirrel.Sqlizer) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select("COUNT(*)").From("word_lists")
	if where != nil {
		stmt = stmt.Where(where)
	}

	var n int
	if err := postgres.QueryRow(ctx, q, stmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("count word lists: %w", err)
	}

	return n, nil
}

func scanWordList(row pgx.Row) (domain.WordList, error) {
	var wl domain.WordList
	if err := row.Scan(&wl.Mojam, &wl.Root, &wl.Words, &wl.UpdatedAt); err != nil {
		return domain.WordList{}, err
	}
	wl.Words = nonNil(wl.Words)
	return wl, nil
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
