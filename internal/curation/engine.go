package curation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/mojam-curator/internal/arabic"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// PassageBreak separates highlighted segments in a rendered passage.
const PassageBreak = "<br/><br/>"

// RootInput is what the caller has loaded for a root before selecting it.
type RootInput struct {
	Root    string
	Passage string
	Note    string
	// Saved is the stored word list; HasSaved distinguishes an empty stored
	// list from no list at all.
	Saved    []string
	HasSaved bool
}

// Engine applies transitions with one set of text tables.
type Engine struct {
	tables *arabic.Tables
}

// NewEngine creates an Engine. A nil tables argument selects the defaults.
func NewEngine(tables *arabic.Tables) *Engine {
	if tables == nil {
		tables = arabic.DefaultTables()
	}
	return &Engine{tables: tables}
}

// Tables returns the text tables used by e.
func (e *Engine) Tables() *arabic.Tables { return e.tables }

// Load installs the root list of the mojam and the number of roots that
// already own a word list.
func (e *Engine) Load(s State, summaries []domain.RootSummary, curated int) State {
	s = s.clone()
	s.Roots = domain.SortRoots(summaries, s.Sort)
	s.Completed = curated
	s.Index = -1
	if s.Root != "" {
		s.Index = slices.Index(s.Roots, s.Root)
	}
	if curated > 0 {
		s.Phase = PhaseLoadedPopulated
	} else {
		s.Phase = PhaseLoadedEmpty
	}
	return s
}

// Resort reorders the roots, keeping the current root selected.
func (e *Engine) Resort(s State, summaries []domain.RootSummary, mode domain.SortMode) State {
	s = s.clone()
	s.Sort = mode
	s.Roots = domain.SortRoots(summaries, mode)
	s.Index = slices.Index(s.Roots, s.Root)
	return s
}

// Select makes in.Root current. A pending change to the previous root is
// flushed. A stored list is used as is; without one, candidates are
// extracted from the passage and persisted.
func (e *Engine) Select(s State, in RootInput) (State, []Intent, error) {
	if s.Phase == PhaseUninitialized {
		return s, nil, ErrNotLoaded
	}
	idx := slices.Index(s.Roots, in.Root)
	if idx < 0 {
		return s, nil, fmt.Errorf("curation: root %q: %w", in.Root, domain.ErrNotFound)
	}

	var intents []Intent
	if s.Dirty && s.Root != "" && s.Root != in.Root {
		intents = append(intents, Intent{Kind: IntentFlush, Mojam: s.Mojam, Root: s.Root})
	}

	next := s.clone()
	next.Index = idx
	next.Root = in.Root
	next.Passage = in.Passage
	next.Note = in.Note
	next.Selected = ""
	next.Dirty = false

	switch {
	case in.HasSaved:
		next.Words = domain.NormalizeWords(in.Saved)
		next.HasList = true
	case strings.TrimSpace(in.Passage) != "":
		next.Words = e.tables.Extract(in.Passage, in.Root)
		next.HasList = true
		next.Completed++
		next.Dirty = true
		intents = append(intents, next.persistIntent())
	default:
		next.Words = []string{}
		next.HasList = false
	}

	intents = next.emit(intents...)
	return next, intents, nil
}

// Toggle adds a word picked from the passage, or removes it when already
// listed. An added word becomes the selection; removal keeps the selection.
func (e *Engine) Toggle(s State, raw string) (State, []Intent) {
	if s.Root == "" {
		return s, nil
	}
	word := e.tables.CleanClicked(raw, s.Root)
	if word == "" {
		return s, nil
	}

	next := s.clone()
	if i := slices.Index(next.Words, word); i >= 0 {
		next.Words = slices.Delete(next.Words, i, i+1)
	} else {
		next.Words = append(next.Words, word)
		next.Selected = word
	}
	return e.changed(next)
}

// SelectWord selects a listed word; an empty or unknown word clears the
// selection.
func (e *Engine) SelectWord(s State, word string) State {
	if slices.Contains(s.Words, word) {
		s.Selected = word
	} else {
		s.Selected = ""
	}
	return s
}

// AddPrefix prepends prefix to the selected word in place.
func (e *Engine) AddPrefix(s State, prefix string) (State, []Intent) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return s, nil
	}
	return e.replaceSelected(s, prefix+s.Selected)
}

// AddDiacritic inserts mark after the first letter of the selected word.
func (e *Engine) AddDiacritic(s State, mark rune) (State, []Intent) {
	return e.replaceSelected(s, arabic.InsertAfterFirst(s.Selected, mark))
}

// Edit replaces the selected word; a blank replacement deletes it.
func (e *Engine) Edit(s State, word string) (State, []Intent) {
	word = strings.TrimSpace(word)
	if word == "" {
		return e.Delete(s)
	}
	return e.replaceSelected(s, word)
}

// Delete removes the selected word and clears the selection.
func (e *Engine) Delete(s State) (State, []Intent) {
	i := s.selectedIndex()
	if i < 0 {
		return s, nil
	}
	next := s.clone()
	next.Words = slices.Delete(next.Words, i, i+1)
	next.Selected = ""
	return e.changed(next)
}

// Reset drops the word list of the current root. The caller moves on with
// NextRoot.
func (e *Engine) Reset(s State) (State, []Intent) {
	if s.Root == "" {
		return s, nil
	}
	next := s.clone()
	if next.HasList && next.Completed > 0 {
		next.Completed--
	}
	next.Words = []string{}
	next.Selected = ""
	next.HasList = false
	next.Dirty = false
	intents := next.emit(Intent{Kind: IntentDeleteWords, Mojam: next.Mojam, Root: next.Root})
	return next, intents
}

// Render highlights the words of s in its passage, segment by segment.
func (e *Engine) Render(s State) string {
	segments := arabic.Segment(s.Passage)
	out := make([]string, len(segments))
	for i, seg := range segments {
		out[i] = e.tables.Highlight(seg, s.Words)
	}
	return strings.Join(out, PassageBreak)
}

func (s State) selectedIndex() int {
	if s.Selected == "" {
		return -1
	}
	return slices.Index(s.Words, s.Selected)
}

func (e *Engine) replaceSelected(s State, word string) (State, []Intent) {
	i := s.selectedIndex()
	if i < 0 || word == "" {
		return s, nil
	}
	next := s.clone()
	next.Words[i] = word
	next.Selected = word
	return e.changed(next)
}

// changed finalizes a word-list mutation.
func (e *Engine) changed(next State) (State, []Intent) {
	next.Words = domain.NormalizeWords(next.Words)
	if !next.HasList {
		next.HasList = true
		next.Completed++
	}
	next.Dirty = true
	intents := next.emit(next.persistIntent())
	return next, intents
}
