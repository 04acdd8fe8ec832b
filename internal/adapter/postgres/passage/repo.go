// Package passage implements the mojam passage repository using PostgreSQL.
// Passages are keyed by (mojam, root); the position column keeps import
// order, which is the "default" root ordering of the curation view.
package passage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mojam-curator/internal/adapter/postgres"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

const defaultBatchSize = 500

// nextMojamPosition is appended to new mojams so export keeps their order.
const nextMojamPosition = "(SELECT COALESCE(MAX(position) + 1, 0) FROM mojams)"

// Repo provides passage persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	batchSize int
}

// New creates a new passage repository.
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

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListMojams returns every mojam with its root count, in creation order.
// Returns an empty slice (not nil) when the corpus is empty.
func (r *Repo) ListMojams(ctx context.Context) ([]domain.MojamSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("m.name", "m.position", "COUNT(p.root)").
		From("mojams m").
		LeftJoin("passages p ON p.mojam = m.name").
		GroupBy("m.name", "m.position").
		OrderBy("m.position", "m.name")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list mojams: %w", err)
	}
	defer rows.Close()

	result := []domain.MojamSummary{}
	for rows.Next() {
		var m domain.MojamSummary
		if err := rows.Scan(&m.Mojam, &m.Position, &m.Roots); err != nil {
			return nil, fmt.Errorf("scan mojam: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list mojams: %w", err)
	}

	return result, nil
}

// ListRoots returns the roots of a mojam in stored order, optionally
// narrowed to a prefix. Unknown mojams yield an empty slice.
func (r *Repo) ListRoots(ctx context.Context, mojam string, filter domain.RootFilter) ([]domain.RootSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("root", "position", "word_count").
		From("passages").
		Where(squirrel.Eq{"mojam": mojam}).
		OrderBy("position", "root")

	if filter.Prefix != "" {
		stmt = stmt.Where(squirrel.Like{"root": escapeLike(filter.Prefix) + "%"})
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(uint64(filter.Limit))
	}

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list roots: %w", err)
	}
	defer rows.Close()

	result := []domain.RootSummary{}
	for rows.Next() {
		var s domain.RootSummary
		if err := rows.Scan(&s.Root, &s.Position, &s.WordCount); err != nil {
			return nil, fmt.Errorf("scan root: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roots: %w", err)
	}

	return result, nil
}

// Get returns one passage.
// Returns domain.ErrNotFound if the mojam has no such root.
func (r *Repo) Get(ctx context.Context, mojam, root string) (domain.Passage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("mojam", "root", "body", "position", "word_count", "updated_at").
		From("passages").
		Where(squirrel.Eq{"mojam": mojam, "root": root})

	p, err := scanPassage(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Passage{}, postgres.MapError(err, "passage", postgres.Key(mojam, root))
	}

	return p, nil
}

// Corpus returns every mojam with its passages, mojams and passages in
// stored order.
func (r *Repo) Corpus(ctx context.Context) ([]domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("m.name", "p.root", "COALESCE(p.body, '')", "COALESCE(p.position, 0)",
			"COALESCE(p.word_count, 0)", "COALESCE(p.updated_at, m.created_at)").
		From("mojams m").
		LeftJoin("passages p ON p.mojam = m.name").
		OrderBy("m.position", "m.name", "p.position", "p.root")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	defer rows.Close()

	result := []domain.Collection{}
	for rows.Next() {
		var (
			p    domain.Passage
			root *string
		)
		if err := rows.Scan(&p.Mojam, &root, &p.Text, &p.Position, &p.WordCount, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan passage: %w", err)
		}

		if len(result) == 0 || result[len(result)-1].Mojam != p.Mojam {
			result = append(result, domain.Collection{Mojam: p.Mojam, Passages: []domain.Passage{}})
		}
		// A mojam without passages still yields its (empty) collection.
		if root == nil {
			continue
		}
		p.Root = *root
		last := &result[len(result)-1]
		last.Passages = append(last.Passages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	return result, nil
}

// Count returns the number of passages across all mojams.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := postgres.QueryRow(ctx, q, postgres.Builder().Select("COUNT(*)").From("passages")).Scan(&n); err != nil {
		return 0, fmt.Errorf("count passages: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert stores the passage text of a root. A new root is appended after
// the last position of its mojam; an existing one keeps its position.
// Unknown mojams are created.
func (r *Repo) Upsert(ctx context.Context, p domain.Passage) (domain.Passage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := r.ensureMojam(ctx, q, p.Mojam); err != nil {
		return domain.Passage{}, err
	}

	stmt := postgres.Builder().
		Insert("passages").
		Columns("mojam", "root", "body", "position", "word_count", "updated_at").
		Values(
			p.Mojam, p.Root, p.Text,
			squirrel.Expr("(SELECT COALESCE(MAX(position) + 1, 0) FROM passages WHERE mojam = ?)", p.Mojam),
			domain.CountWords(p.Text),
			squirrel.Expr("now()"),
		).
		Suffix(`ON CONFLICT (mojam, root) DO UPDATE
			SET body = EXCLUDED.body, word_count = EXCLUDED.word_count, updated_at = now()
			RETURNING mojam, root, body, position, word_count, updated_at`)

	saved, err := scanPassage(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Passage{}, postgres.MapError(err, "passage", postgres.Key(p.Mojam, p.Root))
	}

	return saved, nil
}

// ReplaceMojam swaps all passages of a mojam for the given ones, positions
// following slice order. Callers run it inside a transaction.
// Returns the number of inserted passages.
func (r *Repo) ReplaceMojam(ctx context.Context, mojam string, passages []domain.Passage) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := r.ensureMojam(ctx, q, mojam); err != nil {
		return 0, err
	}

	del := postgres.Builder().Delete("passages").Where(squirrel.Eq{"mojam": mojam})
	if _, err := postgres.Exec(ctx, q, del); err != nil {
		return 0, postgres.MapError(err, "mojam", mojam)
	}

	now := time.Now().UTC()
	inserted := 0
	for start := 0; start < len(passages); start += r.batchSize {
		end := min(start+r.batchSize, len(passages))

		batch := &pgx.Batch{}
		for i, p := range passages[start:end] {
			stmt := postgres.Builder().
				Insert("passages").
				Columns("mojam", "root", "body", "position", "word_count", "updated_at").
				Values(mojam, p.Root, p.Text, start+i, domain.CountWords(p.Text), now)
			if err := postgres.QueueSql(batch, stmt); err != nil {
				return inserted, err
			}
		}

		n, err := postgres.SendBatch(ctx, q, batch)
		inserted += n
		if err != nil {
			return inserted, postgres.MapError(err, "mojam", mojam)
		}
	}

	return inserted, nil
}

// Prune deletes every mojam not named in keep, with its passages.
// Returns the number of deleted mojams.
func (r *Repo) Prune(ctx context.Context, keep []string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Delete("mojams")
	if len(keep) > 0 {
		stmt = stmt.Where(squirrel.NotEq{"name": keep})
	}

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return 0, fmt.Errorf("prune mojams: %w", err)
	}

	return int(n), nil
}

func (r *Repo) ensureMojam(ctx context.Context, q postgres.Querier, mojam string) error {
	stmt := postgres.Builder().
		Insert("mojams").
		Columns("name", "position").
		Values(mojam, squirrel.Expr(nextMojamPosition)).
		Suffix("ON CONFLICT (name) DO NOTHING")

	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		return postgres.MapError(err, "mojam", mojam)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanPassage(row pgx.Row) (domain.Passage, error) {
	var p domain.Passage
	err := row.Scan(&p.Mojam, &p.Root, &p.Text, &p.Position, &p.WordCount, &p.UpdatedAt)
	return p, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
