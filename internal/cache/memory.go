package cache

import (
	"context"
	"sync"
	"time"

	"github.com/colegottdank/debateai-engagement/internal/clock"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Expiry is judged against the injected
// clock, so tests advance time instead of sleeping.
type Memory struct {
	mu         sync.Mutex
	clock      clock.Clock
	maxEntries int
	items      map[string]memoryEntry
}

// NewMemory creates a cache holding at most maxEntries keys (<= 0 means 1024).
func NewMemory(clk clock.Clock, maxEntries int) *Memory {
	if clk == nil {
		clk = clock.System()
	}
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &Memory{
		clock:      clk,
		maxEntries: maxEntries,
		items:      make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	if !m.clock.Now().Before(e.expiresAt) {
		delete(m.items, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if _, exists := m.items[key]; !exists && len(m.items) >= m.maxEntries {
		m.evictLocked(now)
	}
	m.items[key] = memoryEntry{value: value, expiresAt: now.Add(ttl)}
	return nil
}

func (m *Memory) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// evictLocked drops expired entries, then the entry closest to expiry if still full.
func (m *Memory) evictLocked(now time.Time) {
	var (
		victim  string
		soonest time.Time
	)
	for k, e := range m.items {
		if !now.Before(e.expiresAt) {
			delete(m.items, k)
			continue
		}
		if victim == "" || e.expiresAt.Before(soonest) {
			victim, soonest = k, e.expiresAt
		}
	}
	if len(m.items) >= m.maxEntries && victim != "" {
		delete(m.items, victim)
	}
}
