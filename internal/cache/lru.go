// Package cache implements a small LRU cache with per-entry TTL.
//
// Used to bound the in-memory maps the nightwatch service keeps (per-user
// warning cooldowns, per-channel activity windows) so memory stays capped
// under long-running operation.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a capacity-bounded cache with TTL support. Safe for concurrent use.
type LRU[V any] struct {
	capacity   int
	defaultTTL time.Duration
	mu         sync.Mutex

	entries map[string]*entry[V]
	order   *list.List // most recently used at the front
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	element   *list.Element
}

// NewLRU creates a new LRU cache.
func NewLRU[V any](capacity int, defaultTTL time.Duration) *LRU[V] {
	if capacity <= 0 {
		capacity = 1000
	}
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}

	return &LRU[V]{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		entries:    make(map[string]*entry[V]),
		order:      list.New(),
	}
}

// Get retrieves a value. Expired entries are removed and reported absent.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.remove(e)
		return zero, false
	}

	c.order.MoveToFront(e.element)
	return e.value, true
}

// Set stores a value with the given TTL, evicting the oldest entry when at
// capacity. A non-positive TTL uses the cache default.
func (c *LRU[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = time.Now().Add(ttl)
		c.order.MoveToFront(e.element)
		return
	}

	for len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest.Value.(*entry[V]))
	}

	e := &entry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	e.element = c.order.PushFront(e)
	c.entries[key] = e
}

// Delete removes a key if present.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.remove(e)
	}
}

// Len returns the number of live entries, counting any not yet evicted
// expired ones.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LRU[V]) remove(e *entry[V]) {
	c.order.Remove(e.element)
	delete(c.entries, e.key)
}
