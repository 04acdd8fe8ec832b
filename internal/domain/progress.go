package domain

import "math"

// Progress reports how many roots of a mojam have a curated word list.
type Progress struct {
	Mojam      string
	Total      int
	Completed  int
	Percentage int
}

// CompletionPercentage returns completed/total as a whole percentage in
// [0, 100]. An empty mojam is 0% done.
func CompletionPercentage(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// NewProgress builds a Progress with its percentage filled in.
func NewProgress(mojam string, completed, total int) Progress {
	return Progress{
		Mojam:      mojam,
		Total:      total,
		Completed:  completed,
		Percentage: CompletionPercentage(completed, total),
	}
}
