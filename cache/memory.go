package cache

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

type entry struct {
	value   []byte
	expires time.Time
}

// sweepInterval is how often Set drops expired entries that nobody read again.
const sweepInterval = time.Minute

// Memory is an in-process Cache. Expired entries are dropped when they are
// read, and by a periodic sweep on Set.
type Memory struct {
	clock     clock.Clock
	mu        sync.Mutex
	entries   map[string]entry
	lastSweep time.Time
}

func NewMemory(clock clock.Clock) *Memory {
	return &Memory{
		clock:     clock,
		entries:   make(map[string]entry),
		lastSweep: clock.Now(),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, found := m.entries[key]
	if !found {
		return nil, false, nil
	}
	if !m.clock.Now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweep(now)
	}

	m.entries[key] = entry{
		value:   value,
		expires: now.Add(ttl),
	}
	return nil
}

func (m *Memory) sweep(now time.Time) {
	for key, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, key)
		}
	}
	m.lastSweep = now
}
