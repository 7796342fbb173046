package repository

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheEntries caps the in-memory cache when no size is given.
const DefaultCacheEntries = 10_000

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a process-local CacheRepository. Entries expire after ttl
// and the map never grows past maxEntries.
type MemoryCache struct {
	mu         sync.Mutex
	data       map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return NewMemoryCacheWithCapacity(ttl, DefaultCacheEntries)
}

func NewMemoryCacheWithCapacity(ttl time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	return &MemoryCache{
		data:       make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if m.expired(entry, m.now()) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.evict(now)
	}

	entry := cacheEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

// Len returns the number of cached entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *MemoryCache) expired(entry cacheEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

// evict drops expired entries, then the one closest to expiry if the cache
// is still full. Must be called with mu held.
func (m *MemoryCache) evict(now time.Time) {
	var oldestKey string
	var oldest time.Time
	for key, entry := range m.data {
		if m.expired(entry, now) {
			delete(m.data, key)
			continue
		}
		if oldestKey == "" || entry.expiresAt.Before(oldest) {
			oldestKey, oldest = key, entry.expiresAt
		}
	}
	if len(m.data) >= m.maxEntries && oldestKey != "" {
		delete(m.data, oldestKey)
	}
}
