// Package arabic implements the text engine behind root curation: sentence
// segmentation, candidate extraction for a root, and highlighting of accepted
// word forms inside a passage.
//
// All functions are pure and safe for concurrent use. The package-level
// functions use DefaultTables; callers that need a different dialect or
// heuristic build their own Tables and call its methods.
package arabic

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// RuneRange is an inclusive range of code points.
type RuneRange struct {
	Lo, Hi rune
}

// Tables holds the letter classes, prefix lists and markers the algorithms
// consult. The zero value is not usable; start from DefaultTables.
type Tables struct {
	// HamzaForms are folded to Hamza before comparison.
	HamzaForms []rune
	Hamza      rune

	// WeakLetters in a candidate token are each replaced with WeakFold, so any
	// of them can align with any weak letter of the root.
	WeakLetters []rune
	WeakFold    string

	// Alef in the root core is skipped without consuming a token letter.
	Alef rune

	// StripPrefixes are single-letter prefixes removed from extracted
	// candidates, checked in order.
	StripPrefixes []rune
	// DoubledPrefix is stripped once from a candidate starting with it twice
	// when the root itself starts with it.
	DoubledPrefix rune

	// HighlightPrefixes are tried in order when a token is not an exact match.
	HighlightPrefixes []string

	// ShortVowels are stripped once from the start of a trimmed candidate.
	ShortVowels []rune

	// Diacritics are the combining marks treated as part of a word.
	Diacritics []RuneRange

	// Punctuation is removed from tokens in addition to Unicode class P.
	Punctuation string

	HighlightOpen  string
	HighlightClose string
}

// Diacritic names accepted by DiacriticByName.
const (
	Fatha = "فتحة"
	Kasra = "كسرة"
	Damma = "ضمة"
)

// DefaultTables returns a fresh copy of the standard tables.
func DefaultTables() *Tables {
	return &Tables{
		HamzaForms:        []rune{'أ', 'ئ', 'ؤ', 'إ'},
		Hamza:             'ء',
		WeakLetters:       []rune{'ا', 'و', 'ي'},
		WeakFold:          "ايو",
		Alef:              'ا',
		StripPrefixes:     []rune{'ك', 'ب', 'ل', 'ف', 'و'},
		DoubledPrefix:     'و',
		HighlightPrefixes: []string{"لل", "و", "ب", "ل", "ف", "ك"},
		ShortVowels:       []rune{'َ', 'ُ', 'ِ'},
		Diacritics: []RuneRange{
			{Lo: 'ؐ', Hi: 'ؚ'},
			{Lo: 'ً', Hi: 'ْ'},
			{Lo: 'ۖ', Hi: 'ۭ'},
		},
		Punctuation:    "،:؟؛«»",
		HighlightOpen:  "<span style='color:#66d855'>",
		HighlightClose: "</span>",
	}
}

var defaultTables = DefaultTables()

// DiacriticByName maps an editor-facing diacritic name to its mark. Both the
// Arabic names and their transliterations are accepted.
func DiacriticByName(name string) (rune, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Fatha, "fatha":
		return 'َ', true
	case Kasra, "kasra":
		return 'ِ', true
	case Damma, "damma":
		return 'ُ', true
	}
	return 0, false
}

// IsDiacritic reports whether r is one of the combining marks in t.
func (t *Tables) IsDiacritic(r rune) bool {
	for _, rr := range t.Diacritics {
		if r >= rr.Lo && r <= rr.Hi {
			return true
		}
	}
	return false
}

// StripDiacritics removes every combining mark from s.
func (t *Tables) StripDiacritics(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(t.IsDiacritic)), s)
	if err != nil {
		return s
	}
	return out
}

// StripDiacritics removes every combining mark in the default tables from s.
func StripDiacritics(s string) string {
	return defaultTables.StripDiacritics(s)
}

func (t *Tables) foldHamza(s string) string {
	out, _, err := transform.String(runes.Map(func(r rune) rune {
		if slices.Contains(t.HamzaForms, r) {
			return t.Hamza
		}
		return r
	}), s)
	if err != nil {
		return s
	}
	return out
}

func (t *Tables) isPunct(r rune) bool {
	return unicode.IsPunct(r) || strings.ContainsRune(t.Punctuation, r)
}

func (t *Tables) isShortVowel(r rune) bool {
	return slices.Contains(t.ShortVowels, r)
}

func (t *Tables) isWordRune(r rune) bool {
	return unicode.IsLetter(r) || t.IsDiacritic(r)
}

func hasRunePrefix(s string, r rune) bool {
	for _, first := range s {
		return first == r
	}
	return false
}
