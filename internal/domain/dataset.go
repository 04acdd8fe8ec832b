package domain

import "fmt"

// CheckDatasetReplace guards a wholesale dataset write. It rejects an empty
// payload, a payload with fewer than minRoots roots, and a payload smaller
// than what is stored, so a partially loaded client cannot wipe the data.
func CheckDatasetReplace(next Dataset, storedRoots, minRoots int) error {
	if len(next) == 0 {
		return NewValidationError("dataset", "cannot save empty dataset")
	}

	total := next.RootCount()
	if total < minRoots {
		return NewValidationError("dataset", fmt.Sprintf("cannot save dataset with only %d roots", total))
	}
	if storedRoots > total {
		return NewValidationError("dataset",
			fmt.Sprintf("cannot overwrite %d roots with only %d roots", storedRoots, total))
	}

	return nil
}
