package corpus

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// ListRootsInput holds the parameters for listing the roots of a mojam.
type ListRootsInput struct {
	Mojam  string
	Sort   domain.SortMode
	Prefix string
}

// Validate checks all fields and collects all errors.
func (i ListRootsInput) Validate() error {
	var errs domain.FieldErrors

	if strings.TrimSpace(i.Mojam) == "" {
		errs.Add("mojam", "required")
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs.Add("sort", fmt.Sprintf("unknown sort mode %q", i.Sort))
	}

	return errs.Err()
}

// UpdateRootInput holds the parameters for replacing the passage of a root.
// Text is required but may be empty.
type UpdateRootInput struct {
	Mojam string
	Root  string
	Text  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateRootInput) Validate() error {
	var errs domain.FieldErrors

	if strings.TrimSpace(i.Mojam) == "" {
		errs.Add("mojam", "required")
	}
	if strings.TrimSpace(i.Root) == "" {
		errs.Add("root", "required")
	}
	if i.Text == nil {
		errs.Add("text", "required")
	}

	return errs.Err()
}

// UpdateNoteInput holds the parameters for replacing the note of a root.
type UpdateNoteInput struct {
	Root string
	Text string
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	if strings.TrimSpace(i.Root) == "" {
		return domain.NewValidationError("root", "required")
	}
	return nil
}

// validateCollections rejects blank or repeated mojam names and blank or
// repeated roots within a mojam.
func validateCollections(collections []domain.Collection) error {
	var errs domain.FieldErrors

	mojams := make(map[string]struct{}, len(collections))
	for _, c := range collections {
		if strings.TrimSpace(c.Mojam) == "" {
			errs.Add("mojam", "required")
			continue
		}
		if _, dup := mojams[c.Mojam]; dup {
			errs.Add(c.Mojam, "duplicate mojam")
			continue
		}
		mojams[c.Mojam] = struct{}{}

		roots := make(map[string]struct{}, len(c.Passages))
		for _, p := range c.Passages {
			if strings.TrimSpace(p.Root) == "" {
				errs.Add(c.Mojam, "empty root")
				continue
			}
			if _, dup := roots[p.Root]; dup {
				errs.Add(c.Mojam + "/" + p.Root, "duplicate root")
				continue
			}
			roots[p.Root] = struct{}{}
		}
	}

	return errs.Err()
}

// validateNotes rejects blank roots.
func validateNotes(notes []domain.Note) error {
	for _, n := range notes {
		if strings.TrimSpace(n.Root) == "" {
			return domain.NewValidationError("root", "required")
		}
	}
	return nil
}
