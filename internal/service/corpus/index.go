package corpus

import (
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/heartmarshall/mojam-curator/internal/arabic"
	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// rootIndex caches one prefix trie per mojam. Keys are roots with their
// diacritics stripped, so a bare prefix finds vocalized roots too. Several
// roots may share a key; the item is the slice of their summaries.
type rootIndex struct {
	mu    sync.RWMutex
	tries map[string]*patricia.Trie
}

func newRootIndex() *rootIndex {
	return &rootIndex{tries: make(map[string]*patricia.Trie)}
}

func (x *rootIndex) lookup(mojam string) (*patricia.Trie, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	trie, ok := x.tries[mojam]
	return trie, ok
}

func (x *rootIndex) build(mojam string, summaries []domain.RootSummary) *patricia.Trie {
	trie := patricia.NewTrie()
	for _, s := range summaries {
		key := patricia.Prefix(arabic.StripDiacritics(s.Root))
		if existing, ok := trie.Get(key).([]domain.RootSummary); ok {
			trie.Set(key, append(existing, s))
			continue
		}
		trie.Insert(key, []domain.RootSummary{s})
	}

	x.mu.Lock()
	x.tries[mojam] = trie
	x.mu.Unlock()

	return trie
}

// invalidate drops the tries of the given mojams, or all of them.
func (x *rootIndex) invalidate(mojams ...string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if len(mojams) == 0 {
		clear(x.tries)
		return
	}
	for _, m := range mojams {
		delete(x.tries, m)
	}
}

// search returns the summaries whose stripped root starts with prefix.
func search(trie *patricia.Trie, prefix string) []domain.RootSummary {
	result := []domain.RootSummary{}
	_ = trie.VisitSubtree(patricia.Prefix(arabic.StripDiacritics(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		if summaries, ok := item.([]domain.RootSummary); ok {
			result = append(result, summaries...)
		}
		return nil
	})
	return result
}
