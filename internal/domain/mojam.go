package domain

import (
	"strings"
	"time"
)

// DefaultMojam is the dictionary used when a request names none.
const DefaultMojam = "لسان العرب"

// Passage is the prose a mojam holds for one root.
type Passage struct {
	Mojam     string
	Root      string
	Text      string
	Position  int
	WordCount int
	UpdatedAt time.Time
}

// RootSummary describes a root of a mojam without its text.
type RootSummary struct {
	Root      string
	Position  int
	WordCount int
}

// MojamSummary describes a mojam without its passages.
type MojamSummary struct {
	Mojam    string
	Position int
	Roots    int
}

// RootFilter narrows a root listing. Zero values match everything.
type RootFilter struct {
	Prefix string
	Limit  int
}

// Collection is the passages of one mojam in stored order.
type Collection struct {
	Mojam    string
	Passages []Passage
}

// RootCount returns the number of passages in the collection.
func (c Collection) RootCount() int { return len(c.Passages) }

// WordList is the curated word forms of a root: ordered and duplicate-free.
type WordList struct {
	Mojam     string
	Root      string
	Words     []string
	UpdatedAt time.Time
}

// Note is generated commentary attached to a root, shared by all mojams.
type Note struct {
	Root      string
	Text      string
	UpdatedAt time.Time
}

// Dataset maps mojam -> root -> curated words.
type Dataset map[string]map[string][]string

// RootCount returns the number of roots across all mojams.
func (d Dataset) RootCount() int {
	total := 0
	for _, roots := range d {
		total += len(roots)
	}
	return total
}

// CountWords counts whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// NormalizeWords trims every word, drops blanks and keeps the first
// occurrence of each word. The result is never nil.
func NormalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
