package arabic

import (
	"strings"
	"unicode/utf8"
)

// Token is a maximal run of word runes (letters and diacritics) or of
// anything else. Offset is the byte offset of Text in the tokenized input.
type Token struct {
	Text   string
	Offset int
	Word   bool
}

// Tokenize partitions text into alternating word and non-word tokens.
// Concatenating the tokens' Text reproduces text exactly.
func (t *Tables) Tokenize(text string) []Token {
	var tokens []Token

	start := 0
	inWord := false
	for i, r := range text {
		w := t.isWordRune(r)
		if i > start && w != inWord {
			tokens = append(tokens, Token{Text: text[start:i], Offset: start, Word: inWord})
			start = i
		}
		inWord = w
	}
	if start < len(text) {
		tokens = append(tokens, Token{Text: text[start:], Offset: start, Word: inWord})
	}

	return tokens
}

// Highlight marks accepted words in text using the default tables.
func Highlight(text string, accepted []string) string {
	return defaultTables.Highlight(text, accepted)
}

// Highlight escapes '<' and '>' in text and wraps every word token that is an
// accepted word, or an accepted word behind one of the highlight prefixes, in
// the highlight markers. A prefixed match leaves the prefix (with its own
// diacritics) outside the marker. Tokens are marked whole or not at all.
func (t *Tables) Highlight(text string, accepted []string) string {
	if len(accepted) == 0 {
		return EscapeHTML(text)
	}

	set := make(map[string]struct{}, len(accepted))
	for _, w := range accepted {
		set[w] = struct{}{}
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for _, tok := range t.Tokenize(text) {
		if !tok.Word {
			b.WriteString(EscapeHTML(tok.Text))
			continue
		}
		t.writeWord(&b, tok.Text, set)
	}
	return b.String()
}

func (t *Tables) writeWord(b *strings.Builder, word string, set map[string]struct{}) {
	if _, ok := set[word]; ok {
		t.mark(b, word)
		return
	}

	plainWord := t.StripDiacritics(word)
	for _, prefix := range t.HighlightPrefixes {
		plainPrefix := t.StripDiacritics(prefix)
		if !strings.HasPrefix(plainWord, plainPrefix) {
			continue
		}
		head, core := t.splitAfterPlain(word, utf8.RuneCountInString(plainPrefix))
		if core == "" {
			continue
		}
		if _, ok := set[core]; ok {
			b.WriteString(head)
			t.mark(b, core)
			return
		}
	}

	b.WriteString(word)
}

func (t *Tables) mark(b *strings.Builder, s string) {
	b.WriteString(t.HighlightOpen)
	b.WriteString(s)
	b.WriteString(t.HighlightClose)
}

// splitAfterPlain cuts word just before its (n+1)-th non-diacritic rune, so
// marks that follow the first n letters stay in head.
func (t *Tables) splitAfterPlain(word string, n int) (head, core string) {
	end := 0
	plain := 0
	for i, r := range word {
		if !t.IsDiacritic(r) {
			plain++
		}
		if plain > n {
			break
		}
		end = i + utf8.RuneLen(r)
	}
	return word[:end], word[end:]
}

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// EscapeHTML replaces '<' and '>' with their entities. Nothing else is touched.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var htmlUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">")

// UnescapeHTML reverses EscapeHTML.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
