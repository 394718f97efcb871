package cache

import (
	"context"
	"sync"
	"time"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is a bounded in-process cache. When full, the oldest entry is
// evicted.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	order      []string
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

// NewMemory returns a Memory cache holding up to maxEntries values for ttl
// each. A non-positive maxEntries uses the default bound; a zero ttl never
// expires entries.
func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	if maxEntries <= 0 {
		maxEntries = constants.DefaultCacheMaxEntries
	}
	return &Memory{
		entries:    make(map[string]entry, maxEntries),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Get returns the value stored under key if it has not expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		m.remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expires time.Time
	if m.ttl > 0 {
		expires = m.now().Add(m.ttl)
	}

	if _, exists := m.entries[key]; !exists {
		for len(m.order) >= m.maxEntries {
			m.remove(m.order[0])
		}
		m.order = append(m.order, key)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.entries[key] = entry{value: stored, expires: expires}
	return nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) remove(key string) {
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
