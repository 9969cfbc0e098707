package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	val []byte
	exp time.Time
}

// MemoryStore is a mutex-guarded in-process store used when Redis is not
// reachable at startup, and by tests. Entries expire lazily on read. Values
// are copied on both Set and Get so no caller can tear a stored entry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration

	now func() time.Time // overridable in tests
}

// NewMemoryStore returns an empty store whose entries live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     clampTTL(ttl),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || s.now().After(e.exp) {
		return nil, false
	}
	out := make([]byte, len(e.val))
	copy(out, e.val)
	return out, true
}

func (s *MemoryStore) Set(_ context.Context, key string, val []byte) {
	cp := make([]byte, len(val))
	copy(cp, val)
	s.mu.Lock()
	s.entries[key] = memoryEntry{val: cp, exp: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

func (s *MemoryStore) Invalidate(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *MemoryStore) InvalidateAll(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
}
