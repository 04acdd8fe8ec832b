package arabic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanClicked turns a word picked from a rendered passage into the form that
// is stored for root, using the default tables.
func CleanClicked(word, root string) string {
	return defaultTables.CleanClicked(word, root)
}

// CleanClicked removes punctuation and whitespace from word, then drops one
// attached prefix letter the root does not start with (only when something
// remains after it), one doubled prefix letter, and one leading short vowel.
// It returns "" when nothing is left.
func (t *Tables) CleanClicked(word, root string) string {
	rs := []rune(strings.Map(func(r rune) rune {
		if t.isPunct(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, word))
	if len(rs) == 0 {
		return ""
	}

	for _, p := range t.StripPrefixes {
		if rs[0] == p && !hasRunePrefix(root, p) && len(rs) > 1 {
			rs = rs[1:]
			break
		}
	}

	if len(rs) > 1 && rs[0] == t.DoubledPrefix && rs[1] == t.DoubledPrefix && hasRunePrefix(root, t.DoubledPrefix) {
		rs = rs[1:]
	}

	if len(rs) > 0 && t.isShortVowel(rs[0]) {
		rs = rs[1:]
	}

	return strings.TrimSpace(string(rs))
}

// InsertAfterFirst places mark right after the first rune of word.
func InsertAfterFirst(word string, mark rune) string {
	if word == "" {
		return word
	}
	_, n := utf8.DecodeRuneInString(word)
	return word[:n] + string(mark) + word[n:]
}
