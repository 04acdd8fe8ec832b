// Package session runs editing sessions: it loads what a curation transition
// needs, applies the transition, and hands the resulting intents to the
// Persister.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mojam-curator/internal/arabic"
	"github.com/heartmarshall/mojam-curator/internal/curation"
	"github.com/heartmarshall/mojam-curator/internal/domain"
	"github.com/heartmarshall/mojam-curator/internal/service/corpus"
)

type passageSource interface {
	Summaries(ctx context.Context, mojam string) ([]domain.RootSummary, error)
	GetRoot(ctx context.Context, mojam, root string) (corpus.RootDetail, error)
}

type wordReader interface {
	Words(ctx context.Context, mojam, root string) (words []string, found bool, err error)
	Curated(ctx context.Context, mojam string) (int, error)
}

type intentSink interface {
	Submit(intents ...curation.Intent)
	Latest(mojam, root string) (words []string, hasList, ok bool)
}

// Config holds session defaults.
type Config struct {
	DefaultMojam string
	DefaultSort  domain.SortMode
	IdleTTL      time.Duration
}

type entry struct {
	mu      sync.Mutex
	state   curation.State
	touched time.Time
}

// Service keeps the open sessions in memory.
type Service struct {
	engine  *curation.Engine
	corpus  passageSource
	words   wordReader
	sink    intentSink
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
	newID   func() string
	mu      sync.Mutex
	entries map[string]*entry
}

func NewService(
	log *slog.Logger,
	engine *curation.Engine,
	corpus passageSource,
	words wordReader,
	sink intentSink,
	cfg Config,
) *Service {
	if cfg.DefaultMojam == "" {
		cfg.DefaultMojam = domain.DefaultMojam
	}
	if !cfg.DefaultSort.IsValid() {
		cfg.DefaultSort = domain.SortLength
	}
	return &Service{
		engine:  engine,
		corpus:  corpus,
		words:   words,
		sink:    sink,
		cfg:     cfg,
		log:     log.With("service", "session"),
		now:     time.Now,
		newID:   uuid.NewString,
		entries: make(map[string]*entry),
	}
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Start opens a session on a mojam and selects input.Root, or the first root
// in sort order when none is given.
func (s *Service) Start(ctx context.Context, input StartInput) (View, error) {
	if err := input.Validate(); err != nil {
		return View{}, err
	}

	mojam := input.Mojam
	if mojam == "" {
		mojam = s.cfg.DefaultMojam
	}
	mode := input.Sort
	if mode == "" {
		mode = s.cfg.DefaultSort
	}

	summaries, err := s.corpus.Summaries(ctx, mojam)
	if err != nil {
		return View{}, fmt.Errorf("session.Start: %w", err)
	}
	curated, err := s.words.Curated(ctx, mojam)
	if err != nil {
		return View{}, fmt.Errorf("session.Start: %w", err)
	}

	st := s.engine.Load(curation.New(mojam, mode), summaries, curated)

	first := input.Root
	if first == "" && len(st.Roots) > 0 {
		first = st.Roots[0]
	}
	if first != "" {
		st, err = s.selectRoot(ctx, st, first)
		if err != nil {
			return View{}, fmt.Errorf("session.Start: %w", err)
		}
	}

	id := s.newID()
	s.mu.Lock()
	s.entries[id] = &entry{state: st, touched: s.now()}
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", id),
		slog.String("mojam", mojam),
		slog.Int("roots", len(st.Roots)),
	)

	return s.view(id, st), nil
}

// Get returns the current view of a session.
func (s *Service) Get(_ context.Context, id string) (View, error) {
	e, err := s.entry(id)
	if err != nil {
		return View{}, fmt.Errorf("session.Get: %w", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = s.now()
	return s.view(id, e.state), nil
}

// Close ends a session. A dirty root is written right away.
func (s *Service) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("session.Close: session %s: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	s.flush(e.state)
	e.mu.Unlock()

	s.log.InfoContext(ctx, "session closed", slog.String("session_id", id))
	return nil
}

// EvictIdle closes sessions untouched for longer than the idle TTL and
// returns how many were closed.
func (s *Service) EvictIdle(now time.Time) int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}

	var idle []*entry
	s.mu.Lock()
	for id, e := range s.entries {
		e.mu.Lock()
		if now.Sub(e.touched) > s.cfg.IdleTTL {
			idle = append(idle, e)
			delete(s.entries, id)
		}
		e.mu.Unlock()
	}
	s.mu.Unlock()

	for _, e := range idle {
		e.mu.Lock()
		s.flush(e.state)
		e.mu.Unlock()
	}
	if len(idle) > 0 {
		s.log.Info("idle sessions evicted", slog.Int("count", len(idle)))
	}
	return len(idle)
}

// RunJanitor evicts idle sessions every interval until ctx ends.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.EvictIdle(now)
		}
	}
}

// Count returns the number of open sessions.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

// Select makes root current.
func (s *Service) Select(ctx context.Context, id, root string) (View, error) {
	return s.apply(ctx, id, "session.Select", func(st curation.State) (curation.State, error) {
		if root == "" {
			return st, domain.NewValidationError("root", "required")
		}
		return s.selectRoot(ctx, st, root)
	})
}

// Next moves to the following root. At the last root it is a no-op.
func (s *Service) Next(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, id, "session.Next", func(st curation.State) (curation.State, error) {
		root, ok := st.NextRoot()
		if !ok {
			return st, nil
		}
		return s.selectRoot(ctx, st, root)
	})
}

// Prev moves to the preceding root. At the first root it is a no-op.
func (s *Service) Prev(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, id, "session.Prev", func(st curation.State) (curation.State, error) {
		root, ok := st.PrevRoot()
		if !ok {
			return st, nil
		}
		return s.selectRoot(ctx, st, root)
	})
}

// Sort reorders the roots. An empty mode advances to the next mode in the
// cycle default, length, alpha.
func (s *Service) Sort(ctx context.Context, id string, mode domain.SortMode) (View, error) {
	return s.apply(ctx, id, "session.Sort", func(st curation.State) (curation.State, error) {
		if mode == "" {
			mode = st.Sort.Next()
		}
		if !mode.IsValid() {
			return st, domain.NewValidationError("sort", "must be one of default, length, alpha")
		}
		summaries, err := s.corpus.Summaries(ctx, st.Mojam)
		if err != nil {
			return st, err
		}
		return s.engine.Resort(st, summaries, mode), nil
	})
}

// ---------------------------------------------------------------------------
// Word list edits
// ---------------------------------------------------------------------------

// Toggle adds or removes a word clicked in the passage.
func (s *Service) Toggle(ctx context.Context, id, raw string) (View, error) {
	return s.mutate(ctx, id, "session.Toggle", func(st curation.State) (curation.State, []curation.Intent, error) {
		next, intents := s.engine.Toggle(st, raw)
		return next, intents, nil
	})
}

// SelectWord marks a listed word as the target of later edits.
func (s *Service) SelectWord(ctx context.Context, id, word string) (View, error) {
	return s.mutate(ctx, id, "session.SelectWord", func(st curation.State) (curation.State, []curation.Intent, error) {
		return s.engine.SelectWord(st, word), nil, nil
	})
}

// AddPrefix prepends prefix to the selected word.
func (s *Service) AddPrefix(ctx context.Context, id, prefix string) (View, error) {
	return s.mutate(ctx, id, "session.AddPrefix", func(st curation.State) (curation.State, []curation.Intent, error) {
		next, intents := s.engine.AddPrefix(st, prefix)
		return next, intents, nil
	})
}

// AddDiacritic inserts the named mark after the first letter of the selected
// word.
func (s *Service) AddDiacritic(ctx context.Context, id, name string) (View, error) {
	return s.mutate(ctx, id, "session.AddDiacritic", func(st curation.State) (curation.State, []curation.Intent, error) {
		mark, ok := arabic.DiacriticByName(name)
		if !ok {
			return st, nil, domain.NewValidationError("diacritic", "must be one of fatha, kasra, damma")
		}
		next, intents := s.engine.AddDiacritic(st, mark)
		return next, intents, nil
	})
}

// Edit replaces the selected word. A blank word deletes it.
func (s *Service) Edit(ctx context.Context, id, word string) (View, error) {
	return s.mutate(ctx, id, "session.Edit", func(st curation.State) (curation.State, []curation.Intent, error) {
		next, intents := s.engine.Edit(st, word)
		return next, intents, nil
	})
}

// Delete removes the selected word.
func (s *Service) Delete(ctx context.Context, id string) (View, error) {
	return s.mutate(ctx, id, "session.Delete", func(st curation.State) (curation.State, []curation.Intent, error) {
		next, intents := s.engine.Delete(st)
		return next, intents, nil
	})
}

// Reset drops the word list of the current root and moves on to the next
// root when there is one.
func (s *Service) Reset(ctx context.Context, id string) (View, error) {
	return s.mutate(ctx, id, "session.Reset", func(st curation.State) (curation.State, []curation.Intent, error) {
		next, intents := s.engine.Reset(st)
		s.sink.Submit(intents...)

		root, ok := next.NextRoot()
		if !ok || next.Root == "" {
			return next, nil, nil
		}
		advanced, err := s.selectRoot(ctx, next, root)
		if err != nil {
			// The delete already went out; keep the reset root current.
			s.log.WarnContext(ctx, "advance after reset failed",
				slog.String("session_id", id),
				slog.String("root", root),
				slog.String("error", err.Error()),
			)
			return next, nil, nil
		}
		return advanced, nil, nil
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *Service) entry(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// apply runs a transition that does its own intent handling.
func (s *Service) apply(
	ctx context.Context,
	id, op string,
	fn func(curation.State) (curation.State, error),
) (View, error) {
	return s.mutate(ctx, id, op, func(st curation.State) (curation.State, []curation.Intent, error) {
		next, err := fn(st)
		return next, nil, err
	})
}

// mutate serializes fn against the session, stores its state and submits
// its intents. On error the session keeps its previous state.
func (s *Service) mutate(
	ctx context.Context,
	id, op string,
	fn func(curation.State) (curation.State, []curation.Intent, error),
) (View, error) {
	e, err := s.entry(id)
	if err != nil {
		return View{}, fmt.Errorf("%s: %w", op, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next, intents, err := fn(e.state)
	if err != nil {
		return View{}, fmt.Errorf("%s: %w", op, err)
	}
	s.sink.Submit(intents...)

	e.state = next
	e.touched = s.now()
	return s.view(id, next), nil
}

// selectRoot loads a root and applies the selection. A change still waiting
// in the persister takes precedence over the stored list.
func (s *Service) selectRoot(ctx context.Context, st curation.State, root string) (curation.State, error) {
	detail, err := s.corpus.GetRoot(ctx, st.Mojam, root)
	if err != nil {
		return st, err
	}

	words, hasList, ok := s.sink.Latest(st.Mojam, root)
	if !ok {
		words, hasList, err = s.words.Words(ctx, st.Mojam, root)
		if err != nil {
			return st, err
		}
	}

	next, intents, err := s.engine.Select(st, curation.RootInput{
		Root:     root,
		Passage:  detail.Passage.Text,
		Note:     detail.Note,
		Saved:    words,
		HasSaved: hasList,
	})
	if err != nil {
		return st, err
	}
	s.sink.Submit(intents...)
	return next, nil
}

func (s *Service) flush(st curation.State) {
	if st.Root == "" || !st.Dirty {
		return
	}
	s.sink.Submit(curation.Intent{Kind: curation.IntentFlush, Mojam: st.Mojam, Root: st.Root})
}
