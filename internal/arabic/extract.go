package arabic

import (
	"slices"
	"strings"
	"unicode"
)

// Extract returns the distinct tokens of passage judged related to root,
// using the default tables.
func Extract(passage, root string) []string {
	return defaultTables.Extract(passage, root)
}

// Extract returns the distinct whitespace-delimited tokens of passage whose
// normalized form contains the root letters as a subsequence. Each match is
// returned in its original spelling with one attached prefix and one leading
// short vowel trimmed, in first-seen order. The result is never nil.
func (t *Tables) Extract(passage, root string) []string {
	result := []string{}

	core := t.rootCore(root)
	if len(core) == 0 {
		return result
	}
	shaddah, doubled := shaddahLetter(root)

	seen := make(map[string]struct{})
	for _, token := range strings.Fields(passage) {
		clean := strings.Map(func(r rune) rune {
			if t.isPunct(r) {
				return -1
			}
			return r
		}, token)
		if clean == "" {
			continue
		}

		folded := t.foldToken(clean)
		if doubled {
			folded = doubleRune(folded, shaddah)
		}
		if !t.matchesRoot(core, folded) {
			continue
		}

		candidate := t.trimCandidate(clean, root)
		if candidate == "" {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		result = append(result, candidate)
	}

	return result
}

// rootCore folds hamza forms and keeps letters only. Weak letters of the
// root are deliberately not folded; only candidate tokens are.
func (t *Tables) rootCore(root string) []rune {
	var core []rune
	for _, r := range t.foldHamza(root) {
		if unicode.IsLetter(r) {
			core = append(core, r)
		}
	}
	return core
}

// shaddahLetter reports the repeated final letter of a raw root, if any.
func shaddahLetter(root string) (rune, bool) {
	rs := []rune(root)
	if len(rs) < 2 || rs[len(rs)-1] != rs[len(rs)-2] {
		return 0, false
	}
	return rs[len(rs)-1], true
}

func (t *Tables) foldToken(token string) []rune {
	fold := []rune(t.WeakFold)
	var out []rune
	for _, r := range t.foldHamza(token) {
		if slices.Contains(t.WeakLetters, r) {
			out = append(out, fold...)
			continue
		}
		out = append(out, r)
	}
	return out
}

func doubleRune(word []rune, letter rune) []rune {
	out := make([]rune, 0, len(word))
	for _, r := range word {
		out = append(out, r)
		if r == letter {
			out = append(out, r)
		}
	}
	return out
}

// matchesRoot runs the subsequence scan. An Alef in the core advances the
// core cursor alone; a match is declared as soon as the core is consumed.
func (t *Tables) matchesRoot(core, word []rune) bool {
	i, j := 0, 0
	for i < len(core) && j < len(word) {
		switch {
		case core[i] == t.Alef:
			i++
		case core[i] == word[j]:
			i++
			j++
		default:
			j++
		}
		if i == len(core) {
			return true
		}
	}
	return false
}

// trimCandidate removes at most one attached prefix letter that the root does
// not start with, then at most one leading short vowel.
func (t *Tables) trimCandidate(word, root string) string {
	rs := []rune(word)
	if len(rs) == 0 {
		return ""
	}

	for _, p := range t.StripPrefixes {
		if rs[0] != p {
			continue
		}
		switch {
		case !hasRunePrefix(root, p):
			rs = rs[1:]
		case p == t.DoubledPrefix && len(rs) > 1 && rs[1] == p:
			rs = rs[1:]
		}
		break
	}

	if len(rs) > 0 && t.isShortVowel(rs[0]) {
		rs = rs[1:]
	}
	return string(rs)
}
