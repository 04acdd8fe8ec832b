package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// SortMode orders the roots of a mojam.
type SortMode string

const (
	// SortDefault keeps import order.
	SortDefault SortMode = "default"
	// SortLength orders by passage word count, shortest first.
	SortLength SortMode = "length"
	// SortAlpha orders by root spelling.
	SortAlpha SortMode = "alpha"
)

func (m SortMode) String() string { return string(m) }

func (m SortMode) IsValid() bool {
	switch m {
	case SortDefault, SortLength, SortAlpha:
		return true
	}
	return false
}

// Next returns the mode that follows m in the editor's toggle cycle.
func (m SortMode) Next() SortMode {
	switch m {
	case SortDefault:
		return SortLength
	case SortLength:
		return SortAlpha
	default:
		return SortDefault
	}
}

// ParseSortMode parses s; an empty string means SortDefault.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortDefault, nil
	}
	m := SortMode(s)
	if !m.IsValid() {
		return "", NewValidationError("sort", fmt.Sprintf("unknown sort mode %q", s))
	}
	return m, nil
}

// SortSummaries returns a copy of summaries ordered by mode. Ties keep
// import order.
func SortSummaries(summaries []RootSummary, mode SortMode) []RootSummary {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b RootSummary) int {
		return cmp.Compare(a.Position, b.Position)
	})

	switch mode {
	case SortLength:
		slices.SortStableFunc(sorted, func(a, b RootSummary) int {
			return cmp.Compare(a.WordCount, b.WordCount)
		})
	case SortAlpha:
		slices.SortStableFunc(sorted, func(a, b RootSummary) int {
			return cmp.Compare(a.Root, b.Root)
		})
	}

	return sorted
}

// SortRoots returns the root names of summaries ordered by mode.
func SortRoots(summaries []RootSummary, mode SortMode) []string {
	sorted := SortSummaries(summaries, mode)
	roots := make([]string, len(sorted))
	for i, s := range sorted {
		roots[i] = s.Root
	}
	return roots
}
