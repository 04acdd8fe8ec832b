package snapshot

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

type corpusStore interface {
	Resources(ctx context.Context) ([]domain.Collection, error)
	ReplaceResources(ctx context.Context, collections []domain.Collection) (int, error)
	Spectrum(ctx context.Context) ([]domain.Note, error)
	ReplaceSpectrum(ctx context.Context, notes []domain.Note) (int, error)
}

type datasetStore interface {
	Dataset(ctx context.Context) (domain.Dataset, error)
	ReplaceDataset(ctx context.Context, d domain.Dataset) (int, error)
}

type txManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// RenderFunc turns a passage and its accepted words into HTML.
type RenderFunc func(text string, words []string) string

// Counts summarises one import or export.
type Counts struct {
	Mojams int
	Roots  int
	Lists  int
	Notes  int
	Pages  int
}

// Transfer moves whole documents between a snapshot directory and the
// store.
type Transfer struct {
	dir     *Dir
	corpus  corpusStore
	dataset datasetStore
	tx      txManager
	log     *slog.Logger
}

// NewTransfer creates a Transfer. Export reads the store inside one
// read-only transaction of tx.
func NewTransfer(dir *Dir, corpus corpusStore, dataset datasetStore, tx txManager, log *slog.Logger) *Transfer {
	return &Transfer{
		dir:     dir,
		corpus:  corpus,
		dataset: dataset,
		tx:      tx,
		log:     log.With("component", "transfer"),
	}
}

// Import loads the three snapshot files into the store. A dataset without
// any root is skipped rather than sent through the replace gate.
func (t *Transfer) Import(ctx context.Context) (Counts, error) {
	var c Counts

	collections, err := t.dir.Resources()
	if err != nil {
		return c, err
	}
	if c.Roots, err = t.corpus.ReplaceResources(ctx, collections); err != nil {
		return c, fmt.Errorf("snapshot.Import resources: %w", err)
	}
	c.Mojams = len(collections)

	ds, err := t.dir.Dataset()
	if err != nil {
		return c, err
	}
	if ds.RootCount() == 0 {
		t.log.InfoContext(ctx, "dataset has no roots, skipped")
	} else if c.Lists, err = t.dataset.ReplaceDataset(ctx, ds); err != nil {
		return c, fmt.Errorf("snapshot.Import dataset: %w", err)
	}

	notes, err := t.dir.Spectrum()
	if err != nil {
		return c, err
	}
	if c.Notes, err = t.corpus.ReplaceSpectrum(ctx, notes); err != nil {
		return c, fmt.Errorf("snapshot.Import spectrum: %w", err)
	}

	t.log.InfoContext(ctx, "snapshot imported",
		slog.String("dir", t.dir.Path()),
		slog.Int("mojams", c.Mojams),
		slog.Int("roots", c.Roots),
		slog.Int("lists", c.Lists),
		slog.Int("notes", c.Notes),
	)
	return c, nil
}

// Export writes the store into the three snapshot files. With render set,
// one HTML page per root is written under html/<mojam>/ as well, using up
// to workers goroutines.
func (t *Transfer) Export(ctx context.Context, render RenderFunc, workers int) (Counts, error) {
	var c Counts

	var (
		collections []domain.Collection
		ds          domain.Dataset
		notes       []domain.Note
	)
	err := t.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if collections, err = t.corpus.Resources(ctx); err != nil {
			return fmt.Errorf("snapshot.Export resources: %w", err)
		}
		if ds, err = t.dataset.Dataset(ctx); err != nil {
			return fmt.Errorf("snapshot.Export dataset: %w", err)
		}
		if notes, err = t.corpus.Spectrum(ctx); err != nil {
			return fmt.Errorf("snapshot.Export spectrum: %w", err)
		}
		return nil
	})
	if err != nil {
		return c, err
	}

	if err := t.dir.WriteResources(collections); err != nil {
		return c, err
	}
	if err := t.dir.WriteDataset(ds); err != nil {
		return c, err
	}
	if err := t.dir.WriteSpectrum(notes); err != nil {
		return c, err
	}

	c.Mojams = len(collections)
	for _, col := range collections {
		c.Roots += col.RootCount()
	}
	c.Lists = ds.RootCount()
	c.Notes = len(notes)

	if render != nil {
		if c.Pages, err = t.writePages(ctx, collections, ds, render, workers); err != nil {
			return c, err
		}
	}

	t.log.InfoContext(ctx, "snapshot exported",
		slog.String("dir", t.dir.Path()),
		slog.Int("roots", c.Roots),
		slog.Int("pages", c.Pages),
	)
	return c, nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head><meta charset="utf-8"><title>{{.Mojam}} - {{.Root}}</title></head>
<body>
<h1>{{.Root}}</h1>
<p>{{.Body}}</p>
</body>
</html>
`))

type page struct {
	Mojam string
	Root  string
	Body  template.HTML
}

func (t *Transfer) writePages(
	ctx context.Context,
	collections []domain.Collection,
	ds domain.Dataset,
	render RenderFunc,
	workers int,
) (int, error) {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	written := 0
	for _, col := range collections {
		dir := filepath.Join(t.dir.Path(), "html", safeName(col.Mojam))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("snapshot: create %s: %w", dir, err)
		}

		for _, p := range col.Passages {
			if ctx.Err() != nil {
				break
			}
			words := ds[col.Mojam][p.Root]
			path := filepath.Join(dir, safeName(p.Root)+".html")
			g.Go(func() error {
				var b strings.Builder
				err := pageTemplate.Execute(&b, page{
					Mojam: col.Mojam,
					Root:  p.Root,
					// The renderer escapes the passage itself.
					Body: template.HTML(render(p.Text, words)), //nolint:gosec
				})
				if err != nil {
					return fmt.Errorf("snapshot: render %s/%s: %w", col.Mojam, p.Root, err)
				}
				if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
					return fmt.Errorf("snapshot: write %s: %w", path, err)
				}
				return nil
			})
			written++
		}
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return written, nil
}

// safeName keeps a mojam or root usable as a single path element.
func safeName(s string) string {
	s = strings.NewReplacer("/", "_", `\`, "_", string(filepath.Separator), "_").Replace(s)
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}
