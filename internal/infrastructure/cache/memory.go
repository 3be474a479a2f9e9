package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"mtg-cards/internal/domain/card"
)

const DefaultTTL = 10 * time.Minute

// Memory is an in-process TTL cache. Expired entries are evicted lazily, on
// the read that finds them stale; there is no background sweeper. The key
// space is uncapped and there is no LRU, so adversarial high-cardinality query
// traffic can grow the map without bound until each key is read again past its
// TTL. Acceptable for the low-cardinality search workload this serves.
type Memory struct {
	ttl    time.Duration
	logger *log.Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory(ttl time.Duration, logger *log.Logger) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		entries: make(map[string]Entry),
	}
}

func (m *Memory) Get(ctx context.Context, key string) (card.ResultPayload, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return card.ResultPayload{}, false
	}

	if m.now().Sub(e.CreatedAt) >= m.ttl {
		m.mu.Lock()
		// Recheck under the write lock: a concurrent Set may have refreshed
		// the entry between the two lock acquisitions.
		if cur, ok := m.entries[key]; ok && cur.CreatedAt.Equal(e.CreatedAt) {
			delete(m.entries, key)
			if m.logger != nil {
				m.logger.Printf("[Cache] evicted expired entry key=%s", key)
			}
		}
		m.mu.Unlock()
		return card.ResultPayload{}, false
	}
	return e.Payload, true
}

func (m *Memory) Set(ctx context.Context, key string, payload card.ResultPayload) {
	m.mu.Lock()
	m.entries[key] = Entry{Payload: payload, CreatedAt: m.now()}
	m.mu.Unlock()
}

func (m *Memory) Clear(ctx context.Context) int {
	m.mu.Lock()
	n := len(m.entries)
	m.entries = make(map[string]Entry)
	m.mu.Unlock()
	if m.logger != nil && n > 0 {
		m.logger.Printf("[Cache] cleared %d entries", n)
	}
	return n
}

func (m *Memory) Stats(ctx context.Context) Stats {
	now := m.now()
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{Total: len(m.entries)}
	for _, e := range m.entries {
		if now.Sub(e.CreatedAt) < m.ttl {
			s.Valid++
		} else {
			s.Expired++
		}
	}
	return s
}

var _ Store = (*Memory)(nil)
