package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// File names inside a snapshot directory.
const (
	ResourcesFile = "resources.json"
	DatasetFile   = "dataset.json"
	SpectrumFile  = "spectrum.json"
)

// SampleResources is what a directory without resources.json holds.
func SampleResources() []domain.Collection {
	texts := []struct{ root, text string }{
		{"أبا", "الأباء بالفتح والمد: القًّصَبُ، والواحدة أباءَهٌ. ويقال هو أَجَمةُ الحَلْفاء."},
		{"أبب", "الأبُّ: المَرْعى. قال الله تعالى: \"وفاكِهَةً وأًبّاً\"."},
	}

	c := domain.Collection{Mojam: domain.DefaultMojam}
	for i, t := range texts {
		c.Passages = append(c.Passages, domain.Passage{
			Mojam:     domain.DefaultMojam,
			Root:      t.root,
			Text:      t.text,
			Position:  i,
			WordCount: domain.CountWords(t.text),
		})
	}
	return []domain.Collection{c}
}

// Dir is a snapshot directory on disk.
type Dir struct {
	path string
	log  *slog.Logger
}

// NewDir returns a Dir rooted at path. The directory is created on first write.
func NewDir(path string, log *slog.Logger) *Dir {
	return &Dir{path: path, log: log.With("component", "snapshot")}
}

// Path returns the directory path.
func (d *Dir) Path() string { return d.path }

// Resources reads resources.json, or the sample corpus when it is missing.
func (d *Dir) Resources() ([]domain.Collection, error) {
	var out []domain.Collection
	found, err := d.read(ResourcesFile, func(r io.Reader) error {
		var err error
		out, err = DecodeResources(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return SampleResources(), nil
	}
	return out, nil
}

// WriteResources replaces resources.json.
func (d *Dir) WriteResources(collections []domain.Collection) error {
	return d.write(ResourcesFile, func(w io.Writer) error { return EncodeResources(w, collections) })
}

// Dataset reads dataset.json. A missing file reads as the default mojam
// with no curated roots.
func (d *Dir) Dataset() (domain.Dataset, error) {
	var out domain.Dataset
	found, err := d.read(DatasetFile, func(r io.Reader) error {
		var err error
		out, err = DecodeDataset(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.Dataset{domain.DefaultMojam: {}}, nil
	}
	return out, nil
}

// WriteDataset replaces dataset.json.
func (d *Dir) WriteDataset(ds domain.Dataset) error {
	return d.write(DatasetFile, func(w io.Writer) error { return EncodeDataset(w, ds) })
}

// Spectrum reads spectrum.json. A missing file reads as no notes.
func (d *Dir) Spectrum() ([]domain.Note, error) {
	out := []domain.Note{}
	_, err := d.read(SpectrumFile, func(r io.Reader) error {
		var err error
		out, err = DecodeSpectrum(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WriteSpectrum replaces spectrum.json.
func (d *Dir) WriteSpectrum(notes []domain.Note) error {
	return d.write(SpectrumFile, func(w io.Writer) error { return EncodeSpectrum(w, notes) })
}

func (d *Dir) read(name string, decode func(io.Reader) error) (bool, error) {
	path := filepath.Join(d.path, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		d.log.Info("snapshot file not found, using default", slog.String("file", path))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("snapshot: open %s: %w", name, err)
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return true, fmt.Errorf("snapshot: %s: %w", name, err)
	}
	return true, nil
}

// write encodes into a temporary file and renames it over name, so readers
// never see a partial document.
func (d *Dir) write(name string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", name, err)
	}

	final := filepath.Join(d.path, name)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("snapshot: rename %s: %w", name, err)
	}

	d.log.Info("snapshot written", slog.String("file", final), slog.Int("bytes", buf.Len()))
	return nil
}
