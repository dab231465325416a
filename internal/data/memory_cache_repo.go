package data

import (
	"context"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/L-P/mme/internal/core"
)

var _ core.CacheRepository = (*MemoryCacheRepo)(nil)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero never expires
}

// MemoryCacheRepo is an in-process CacheRepository used when Redis is
// disabled. Expired entries are dropped lazily on access.
type MemoryCacheRepo struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCacheRepo creates an empty cache. now defaults to time.Now.
func NewMemoryCacheRepo(now func() time.Time) *MemoryCacheRepo {
	if now == nil {
		now = time.Now
	}
	return &MemoryCacheRepo{entries: make(map[string]memoryEntry), now: now}
}

// Set stores a copy of value under key.
func (m *MemoryCacheRepo) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errEmptyKey
	}

	e := memoryEntry{value: slices.Clone(value)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()

	return nil
}

// Get returns a copy of the value under key, or nil when absent or expired.
func (m *MemoryCacheRepo) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errEmptyKey
	}

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if m.expired(e) {
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && m.expired(cur) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, nil
	}

	return slices.Clone(e.value), nil
}

// Delete removes key and reports whether a live entry was there.
func (m *MemoryCacheRepo) Delete(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	delete(m.entries, key)

	return ok && !m.expired(e), nil
}

// DeleteMatching removes every key matching the glob pattern, using the same
// syntax as Redis SCAN MATCH for the *, ? and [] forms.
func (m *MemoryCacheRepo) DeleteMatching(_ context.Context, pattern string) (int64, error) {
	if pattern == "" {
		return 0, errEmptyKey
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for k, e := range m.entries {
		if ok, _ := path.Match(pattern, k); !ok {
			continue
		}
		if !m.expired(e) {
			n++
		}
		delete(m.entries, k)
	}
	return n, nil
}

// Health always succeeds.
func (m *MemoryCacheRepo) Health(context.Context) error {
	return nil
}

func (m *MemoryCacheRepo) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}
