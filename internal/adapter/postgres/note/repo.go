// Package note implements the root note repository using PostgreSQL.
// Notes are keyed by root alone and shared by every mojam.
package note

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

// Repo provides root note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the note of a root.
// Returns domain.ErrNotFound if the root has none.
func (r *Repo) Get(ctx context.Context, root string) (domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("root", "body", "updated_at").
		From("root_notes").
		Where(squirrel.Eq{"root": root})

	var n domain.Note
	if err := postgres.QueryRow(ctx, q, stmt).Scan(&n.Root, &n.Text, &n.UpdatedAt); err != nil {
		return domain.Note{}, postgres.MapError(err, "root_note", root)
	}

	return n, nil
}

// All returns every note ordered by root.
func (r *Repo) All(ctx context.Context) ([]domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("root", "body", "updated_at").
		From("root_notes").
		OrderBy("root")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		var n domain.Note
		err := row.Scan(&n.Root, &n.Text, &n.UpdatedAt)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Upsert stores the note of a root.
func (r *Repo) Upsert(ctx context.Context, n domain.Note) (domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Insert("root_notes").
		Columns("root", "body", "updated_at").
		Values(n.Root, n.Text, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (root) DO UPDATE
			SET body = EXCLUDED.body, updated_at = now()
			RETURNING root, body, updated_at`)

	var saved domain.Note
	if err := postgres.QueryRow(ctx, q, stmt).Scan(&saved.Root, &saved.Text, &saved.UpdatedAt); err != nil {
		return domain.Note{}, postgres.MapError(err, "root_note", n.Root)
	}

	return saved, nil
}

// ReplaceAll swaps every note for the given ones. Callers run it inside a
// transaction. Returns the number of stored notes.
func (r *Repo) ReplaceAll(ctx context.Context, notes []domain.Note) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := postgres.Exec(ctx, q, postgres.Builder().Delete("root_notes")); err != nil {
		return 0, fmt.Errorf("clear notes: %w", err)
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, n := range notes {
		stmt := postgres.Builder().
			Insert("root_notes").
			Columns("root", "body", "updated_at").
			Values(n.Root, n.Text, now)
		if err := postgres.QueueSql(batch, stmt); err != nil {
			return 0, err
		}
	}

	stored, err := postgres.SendBatch(ctx, q, batch)
	if err != nil {
		return stored, postgres.MapError(err, "root_note", "batch")
	}

	return stored, nil
}
