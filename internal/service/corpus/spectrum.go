package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// Spectrum returns every root note ordered by root.
func (s *Service) Spectrum(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.notes.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus.Spectrum: %w", err)
	}
	return notes, nil
}

// ReplaceSpectrum swaps every stored note for notes in one transaction.
// An empty slice clears the notes.
func (s *Service) ReplaceSpectrum(ctx context.Context, notes []domain.Note) (int, error) {
	if err := validateNotes(notes); err != nil {
		return 0, err
	}

	var stored int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		stored, err = s.notes.ReplaceAll(txCtx, notes)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("corpus.ReplaceSpectrum: %w", err)
	}

	s.log.InfoContext(ctx, "spectrum replaced", slog.Int("notes", stored))

	return stored, nil
}

// UpdateNote replaces the note of one root.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (domain.Note, error) {
	if err := input.Validate(); err != nil {
		return domain.Note{}, err
	}

	saved, err := s.notes.Upsert(ctx, domain.Note{Root: input.Root, Text: input.Text})
	if err != nil {
		return domain.Note{}, fmt.Errorf("corpus.UpdateNote: %w", err)
	}

	return saved, nil
}
