package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/mojam-curator/internal/curation"
	"github.com/heartmarshall/mojam-curator/internal/domain"
	"github.com/heartmarshall/mojam-curator/internal/service/dataset"
)

type wordWriter interface {
	SaveWords(ctx context.Context, input dataset.SaveWordsInput) (domain.WordList, error)
	DeleteWords(ctx context.Context, mojam, root string) error
}

// PersisterConfig tunes the write-behind behaviour.
type PersisterConfig struct {
	Debounce     time.Duration
	Attempts     int
	Backoff      time.Duration
	WriteTimeout time.Duration
}

type listKey struct {
	mojam string
	root  string
}

type job struct {
	intent curation.Intent
	seq    uint64
	// barrier is closed by the worker once every earlier job is done.
	barrier chan struct{}
}

type pendingWrite struct {
	intent curation.Intent
	seq    uint64
	timer  *time.Timer
}

// Persister carries out curation intents behind the request path. Word list
// writes are debounced per root and the latest value wins; deletes and
// flushes go out at once. A single worker executes writes in submission
// order, retrying with linear backoff. Failures are logged and dropped.
type Persister struct {
	w   wordWriter
	cfg PersisterConfig
	log *slog.Logger

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	mu      sync.Mutex
	seq     uint64
	pending map[listKey]*pendingWrite
	// queue is unbounded and only appended to under mu, so jobs leave
	// pending and enter the queue in one step.
	queue []job
	// latest holds the newest intent per root until it is written, so a
	// reader never sees the store behind an accepted edit.
	latest map[listKey]job
	// written is the seq of the last job executed per root. Older jobs for
	// the same root are skipped.
	written map[listKey]uint64
	closed  bool
}

// NewPersister starts the write worker. Close stops it.
func NewPersister(log *slog.Logger, w wordWriter, cfg PersisterConfig) *Persister {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	p := &Persister{
		w:       w,
		cfg:     cfg,
		log:     log.With("component", "persister"),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		pending: make(map[listKey]*pendingWrite),
		latest:  make(map[listKey]job),
		written: make(map[listKey]uint64),
	}
	go p.run()

	return p
}

// Submit accepts intents from a curation transition. It only takes the
// persister lock: a slow or failing store grows the queue instead of
// blocking the caller.
func (p *Persister) Submit(intents ...curation.Intent) {
	var ready []job

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		if len(intents) > 0 {
			p.log.Warn("persister closed, intents dropped", slog.Int("count", len(intents)))
		}
		return
	}

	for _, in := range intents {
		k := listKey{mojam: in.Mojam, root: in.Root}
		switch in.Kind {
		case curation.IntentPersistWords:
			p.seq++
			j := job{intent: in, seq: p.seq}
			p.latest[k] = j
			if p.cfg.Debounce <= 0 {
				p.cancelLocked(k)
				ready = append(ready, j)
				continue
			}
			p.scheduleLocked(k, j)

		case curation.IntentDeleteWords:
			p.cancelLocked(k)
			p.seq++
			j := job{intent: in, seq: p.seq}
			p.latest[k] = j
			ready = append(ready, j)

		case curation.IntentFlush:
			if pw, ok := p.pending[k]; ok {
				pw.timer.Stop()
				delete(p.pending, k)
				ready = append(ready, job{intent: pw.intent, seq: pw.seq})
			}
		}
	}
	p.enqueueLocked(ready...)
}

// Latest reports the newest accepted but unwritten state of a root's list.
// ok is false when nothing is outstanding; hasList is false when the
// outstanding intent deletes the list.
func (p *Persister) Latest(mojam, root string) (words []string, hasList, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	j, ok := p.latest[listKey{mojam: mojam, root: root}]
	if !ok {
		return nil, false, false
	}
	if j.intent.Kind == curation.IntentDeleteWords {
		return []string{}, false, true
	}
	return append([]string(nil), j.intent.Words...), true, true
}

// Pending returns the number of roots with an unwritten change.
func (p *Persister) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.latest)
}

// Flush writes every debounced change now and waits until all submitted
// writes are done or ctx ends.
func (p *Persister) Flush(ctx context.Context) error {
	barrier := make(chan struct{})

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.enqueueLocked(p.drainLocked()...)
	p.enqueueLocked(job{barrier: barrier})
	p.mu.Unlock()

	select {
	case <-barrier:
		return nil
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes outstanding writes and stops the worker. Later submissions
// are dropped.
func (p *Persister) Close(ctx context.Context) error {
	err := p.Flush(ctx)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return err
	}
	p.closed = true
	for k, pw := range p.pending {
		pw.timer.Stop()
		delete(p.pending, k)
	}
	p.mu.Unlock()

	close(p.stop)
	select {
	case <-p.done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}

	if n := p.Pending(); n > 0 {
		p.log.Warn("persister closed with unwritten changes", slog.Int("roots", n))
	}
	return err
}

func (p *Persister) scheduleLocked(k listKey, j job) {
	if pw, ok := p.pending[k]; ok {
		pw.intent = j.intent
		pw.seq = j.seq
		pw.timer.Reset(p.cfg.Debounce)
		return
	}

	pw := &pendingWrite{intent: j.intent, seq: j.seq}
	pw.timer = time.AfterFunc(p.cfg.Debounce, func() { p.fire(k) })
	p.pending[k] = pw
}

func (p *Persister) cancelLocked(k listKey) {
	if pw, ok := p.pending[k]; ok {
		pw.timer.Stop()
		delete(p.pending, k)
	}
}

func (p *Persister) drainLocked() []job {
	ready := make([]job, 0, len(p.pending))
	for k, pw := range p.pending {
		pw.timer.Stop()
		delete(p.pending, k)
		ready = append(ready, job{intent: pw.intent, seq: pw.seq})
	}
	return ready
}

// fire moves a debounced write to the queue once its timer expires.
func (p *Persister) fire(k listKey) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.pending[k]
	if !ok || p.closed {
		return
	}
	delete(p.pending, k)
	p.enqueueLocked(job{intent: pw.intent, seq: pw.seq})
}

func (p *Persister) enqueueLocked(jobs ...job) {
	if len(jobs) == 0 {
		return
	}
	p.queue = append(p.queue, jobs...)
	if n := len(p.queue); n > 0 && n%256 == 0 {
		p.log.Warn("write queue growing", slog.Int("queued", n))
	}
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) next() (job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return job{}, false
	}
	j := p.queue[0]
	p.queue[0] = job{}
	p.queue = p.queue[1:]
	return j, true
}

func (p *Persister) run() {
	defer close(p.done)
	for {
		if j, ok := p.next(); ok {
			p.execute(j)
			continue
		}
		select {
		case <-p.wake:
		case <-p.stop:
			for j, ok := p.next(); ok; j, ok = p.next() {
				p.execute(j)
			}
			return
		}
	}
}

// stale reports whether a newer job for the same root already ran, and
// otherwise records j as the newest.
func (p *Persister) stale(j job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	k := listKey{mojam: j.intent.Mojam, root: j.intent.Root}
	if last, ok := p.written[k]; ok && last > j.seq {
		return true
	}
	p.written[k] = j.seq
	return false
}

func (p *Persister) execute(j job) {
	if j.barrier != nil {
		close(j.barrier)
		return
	}

	in := j.intent
	if p.stale(j) {
		p.log.Debug("stale write skipped",
			slog.String("kind", in.Kind.String()),
			slog.String("mojam", in.Mojam),
			slog.String("root", in.Root),
		)
		return
	}

	var err error
	for attempt := 1; attempt <= p.cfg.Attempts; attempt++ {
		err = p.write(in)
		if err == nil || errors.Is(err, domain.ErrValidation) {
			break
		}
		if attempt < p.cfg.Attempts {
			p.log.Warn("write failed, retrying",
				slog.String("kind", in.Kind.String()),
				slog.String("mojam", in.Mojam),
				slog.String("root", in.Root),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			time.Sleep(p.cfg.Backoff * time.Duration(attempt))
		}
	}

	p.mu.Lock()
	k := listKey{mojam: in.Mojam, root: in.Root}
	if cur, ok := p.latest[k]; ok && cur.seq == j.seq {
		delete(p.latest, k)
	}
	p.mu.Unlock()

	if err != nil {
		p.log.Error("write failed",
			slog.String("kind", in.Kind.String()),
			slog.String("mojam", in.Mojam),
			slog.String("root", in.Root),
			slog.Int("attempts", p.cfg.Attempts),
			slog.String("error", err.Error()),
		)
		return
	}

	p.log.Debug("write done",
		slog.String("kind", in.Kind.String()),
		slog.String("mojam", in.Mojam),
		slog.String("root", in.Root),
	)
}

func (p *Persister) write(in curation.Intent) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.WriteTimeout)
	defer cancel()

	switch in.Kind {
	case curation.IntentPersistWords:
		_, err := p.w.SaveWords(ctx, dataset.SaveWordsInput{Mojam: in.Mojam, Root: in.Root, Words: in.Words})
		return err
	case curation.IntentDeleteWords:
		return p.w.DeleteWords(ctx, in.Mojam, in.Root)
	default:
		return nil
	}
}
