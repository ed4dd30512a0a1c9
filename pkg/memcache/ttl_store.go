// pkg/mem/ttl_store.go
package mem

import (
	"context"
	"sync"
	"time"

	"koreatrip/pkg/utils"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLStore is a mutex-guarded map whose entries go stale ttl after they were stored.
// Expired entries are dropped lazily on Get and in bulk by Sweep.
// maxEntries <= 0 disables the size bound.
type TTLStore[V any] struct {
	mu         sync.Mutex
	data       map[string]entry[V]
	ttl        time.Duration
	maxEntries int
	clock      utils.Clock
	onEvict    func(key string)
}

func NewTTLStore[V any](ttl time.Duration, maxEntries int, clock utils.Clock) *TTLStore[V] {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &TTLStore[V]{
		data:       make(map[string]entry[V]),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// OnEvict registers a hook called (under the lock) for every entry removed
// because it expired or because the store was full.
func (s *TTLStore[V]) OnEvict(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

func (s *TTLStore[V]) TTL() time.Duration { return s.ttl }

func (s *TTLStore[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		s.evictOldestLocked()
	}
	s.data[key] = entry[V]{value: value, storedAt: s.clock.Now()}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.data[key]
	if !ok {
		return zero, false
	}
	if s.expired(e) {
		s.deleteLocked(key) // cleanup expired
		return zero, false
	}
	return e.value, true
}

// Sweep removes every expired entry and reports how many were removed.
func (s *TTLStore[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.data {
		if s.expired(e) {
			s.deleteLocked(key)
			removed++
		}
	}
	return removed
}

func (s *TTLStore[V]) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.data)
	s.data = make(map[string]entry[V])
	return n
}

func (s *TTLStore[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func (s *TTLStore[V]) expired(e entry[V]) bool {
	return s.clock.Now().Sub(e.storedAt) >= s.ttl
}

func (s *TTLStore[V]) deleteLocked(key string) {
	delete(s.data, key)
	if s.onEvict != nil {
		s.onEvict(key)
	}
}

func (s *TTLStore[V]) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for key, e := range s.data {
		if !found || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = key, e.storedAt, true
		}
	}
	if found {
		s.deleteLocked(oldestKey)
	}
}

// Sweeper runs a sweep function on a fixed interval until stopped.
type Sweeper struct {
	interval time.Duration
	sweep    func() int
	report   func(removed int)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(interval time.Duration, sweep func() int, report func(removed int)) *Sweeper {
	return &Sweeper{interval: interval, sweep: sweep, report: report}
}

// Start is a no-op if the sweeper is already running.
func (w *Sweeper) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil || w.interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed := w.sweep()
				if w.report != nil {
					w.report(removed)
				}
			case <-ctx.Done():
				return
			}
		}
	}(w.done)
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (w *Sweeper) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (w *Sweeper) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}
