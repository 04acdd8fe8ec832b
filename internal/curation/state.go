// Package curation holds the editing state of one curator walking through the
// roots of a mojam. State values are never mutated in place: every transition
// returns a new State and the side effects it asks for as Intents, leaving
// all I/O to the caller.
package curation

import (
	"errors"
	"slices"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// ErrNotLoaded is returned by transitions that need the root list.
var ErrNotLoaded = errors.New("curation: roots not loaded")

// LoadPhase tells whether the dataset behind a state has been read, and
// whether it held anything. No intents are emitted before it is loaded.
type LoadPhase int

const (
	PhaseUninitialized LoadPhase = iota
	PhaseLoadedEmpty
	PhaseLoadedPopulated
)

func (p LoadPhase) String() string {
	switch p {
	case PhaseLoadedEmpty:
		return "loaded-empty"
	case PhaseLoadedPopulated:
		return "loaded-populated"
	default:
		return "uninitialized"
	}
}

// IntentKind names a side effect requested by a transition.
type IntentKind int

const (
	// IntentPersistWords stores Words for (Mojam, Root); callers may debounce it.
	IntentPersistWords IntentKind = iota + 1
	// IntentDeleteWords removes the stored list of (Mojam, Root).
	IntentDeleteWords
	// IntentFlush asks for any pending write of (Mojam, Root) to happen now.
	IntentFlush
)

func (k IntentKind) String() string {
	switch k {
	case IntentPersistWords:
		return "persist"
	case IntentDeleteWords:
		return "delete"
	case IntentFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Intent is a side effect for the caller to carry out.
type Intent struct {
	Kind  IntentKind
	Mojam string
	Root  string
	Words []string
}

// State is a snapshot of one editing session.
type State struct {
	Mojam string
	Sort  domain.SortMode
	Roots []string

	// Index is the position of Root in Roots, -1 before a root is selected.
	Index    int
	Root     string
	Passage  string
	Note     string
	Words    []string
	Selected string

	// HasList is set once Root owns a word list, even an empty one.
	HasList bool
	// Dirty is set when Words changed since Root was selected.
	Dirty bool

	// Completed counts roots of Mojam that own a word list.
	Completed int
	Phase     LoadPhase
}

// New returns an uninitialized state for mojam.
func New(mojam string, sort domain.SortMode) State {
	if mojam == "" {
		mojam = domain.DefaultMojam
	}
	if !sort.IsValid() {
		sort = domain.SortDefault
	}
	return State{Mojam: mojam, Sort: sort, Index: -1}
}

// Percentage is the share of roots that own a word list.
func (s State) Percentage() int {
	return domain.CompletionPercentage(s.Completed, len(s.Roots))
}

// NextRoot returns the root after the current one.
func (s State) NextRoot() (string, bool) {
	if s.Index+1 >= len(s.Roots) {
		return "", false
	}
	return s.Roots[s.Index+1], true
}

// PrevRoot returns the root before the current one.
func (s State) PrevRoot() (string, bool) {
	if s.Index <= 0 || s.Index > len(s.Roots) {
		return "", false
	}
	return s.Roots[s.Index-1], true
}

// clone copies the slices a transition may modify.
func (s State) clone() State {
	s.Roots = slices.Clone(s.Roots)
	s.Words = slices.Clone(s.Words)
	return s
}

// emit filters intents through the load phase and records that the dataset
// now holds data.
func (s *State) emit(intents ...Intent) []Intent {
	if s.Phase == PhaseUninitialized {
		return nil
	}
	for _, in := range intents {
		if in.Kind == IntentPersistWords {
			s.Phase = PhaseLoadedPopulated
		}
	}
	return intents
}

func (s State) persistIntent() Intent {
	return Intent{
		Kind:  IntentPersistWords,
		Mojam: s.Mojam,
		Root:  s.Root,
		Words: slices.Clone(s.Words),
	}
}
