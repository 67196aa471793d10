// Package localcache provides the in-process fallback mirror for
// notifications, used while the durable store is unreachable.
package localcache

import (
	"sync"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// DefaultCapacity bounds the cache when no explicit capacity is given.
const DefaultCapacity = 50

// InMemoryNotificationCache is a bounded, newest-first mirror of
// notifications that could not reach the durable store. It is
// non-authoritative: entries serve degraded reads for the local process and
// are drained back to the store by the replay job.
//
// Safe for concurrent use.
type InMemoryNotificationCache struct {
	mu       sync.Mutex
	entries  []*notification.Notification
	capacity int
}

// NewInMemoryNotificationCache creates a cache bounded to the given capacity.
// A non-positive capacity falls back to DefaultCapacity.
func NewInMemoryNotificationCache(capacity int) *InMemoryNotificationCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &InMemoryNotificationCache{
		entries:  make([]*notification.Notification, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a notification at the head of the cache. Once the bound is
// reached the oldest entry is dropped.
func (c *InMemoryNotificationCache) Append(aggregate *notification.Notification) {
	if aggregate == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append([]*notification.Notification{aggregate}, c.entries...)
	if len(c.entries) > c.capacity {
		c.entries = c.entries[:c.capacity]
	}
}

// GetAll returns the cached notifications, newest first.
func (c *InMemoryNotificationCache) GetAll() []*notification.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]*notification.Notification, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}

// MarkAsRead flips the cached copy's read state, if present.
func (c *InMemoryNotificationCache) MarkAsRead(id kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		if entry.ID().IsEqual(id) {
			entry.MarkAsRead(time.Now().UTC())
			return
		}
	}
}

// Remove drops the cached copy, if present.
func (c *InMemoryNotificationCache) Remove(id kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, entry := range c.entries {
		if entry.ID().IsEqual(id) {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Drain removes and returns every cached notification, oldest first, so a
// replay can re-apply them to the durable store in creation order.
func (c *InMemoryNotificationCache) Drain() []*notification.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := make([]*notification.Notification, 0, len(c.entries))
	for i := len(c.entries) - 1; i >= 0; i-- {
		drained = append(drained, c.entries[i])
	}

	c.entries = c.entries[:0]
	return drained
}
