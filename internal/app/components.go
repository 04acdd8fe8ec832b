package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mojam-curator/internal/adapter/postgres"
	"github.com/heartmarshall/mojam-curator/internal/adapter/postgres/note"
	"github.com/heartmarshall/mojam-curator/internal/adapter/postgres/passage"
	"github.com/heartmarshall/mojam-curator/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/mojam-curator/internal/config"
	"github.com/heartmarshall/mojam-curator/internal/curation"
	"github.com/heartmarshall/mojam-curator/internal/service/corpus"
	"github.com/heartmarshall/mojam-curator/internal/service/dataset"
)

// Components are the storage-backed services shared by the server and the
// CLI.
type Components struct {
	Pool    *pgxpool.Pool
	Tx      *postgres.TxManager
	Corpus  *corpus.Service
	Dataset *dataset.Service
	Engine  *curation.Engine
}

// Connect opens the database, applies migrations when configured to, and
// builds the corpus and dataset services on top of it.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return NewComponents(pool, cfg.Curation, logger), nil
}

// NewComponents builds the services on an open pool.
func NewComponents(pool *pgxpool.Pool, cfg config.CurationConfig, logger *slog.Logger) *Components {
	txm := postgres.NewTxManager(pool)
	passages := passage.New(pool).WithBatchSize(cfg.BatchSize)
	notes := note.New(pool)
	lists := wordlist.New(pool).WithBatchSize(cfg.BatchSize)

	return &Components{
		Pool:    pool,
		Tx:      txm,
		Corpus:  corpus.NewService(logger, passages, notes, txm),
		Dataset: dataset.NewService(logger, lists, passages, txm, cfg.MinDatasetRoots),
		Engine:  curation.NewEngine(nil),
	}
}

// Close releases the database pool.
func (c *Components) Close() {
	c.Pool.Close()
}
