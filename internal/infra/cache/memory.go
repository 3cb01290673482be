package cache

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type memoryEntry struct {
	slots     []domain.AvailableSlot
	expiresAt time.Time
}

// MemoryCache in-process кэш с TTL. Используется, когда Redis выключен.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache now позволяет подменять часы в тестах, nil - time.Now
func NewMemoryCache(now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]domain.AvailableSlot, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	out := make([]domain.AvailableSlot, len(entry.slots))
	copy(out, entry.slots)
	return out, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, slots []domain.AvailableSlot, ttl time.Duration) error {
	stored := make([]domain.AvailableSlot, len(slots))
	copy(stored, slots)

	c.mu.Lock()
	c.entries[key] = memoryEntry{slots: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Len количество записей (включая просроченные, ещё не вычищенные)
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
