package pokeapi

import (
	"sync"
	"time"
)

type cacheItem struct {
	data      []byte
	timestamp time.Time
}

// Cache is a bounded response cache with per-entry expiry
// At capacity the oldest inserted key is evicted first
type Cache struct {
	mu      sync.Mutex
	items   map[string]cacheItem
	keys    []string // Insertion order for eviction
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// NewCache creates a cache holding up to maxSize entries for ttl each
func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		items:   make(map[string]cacheItem),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get returns the cached bytes for key; expired entries are removed
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(item.timestamp) > c.ttl {
		delete(c.items, key)
		c.removeKey(key)
		return nil, false
	}
	return item.data, true
}

// Set stores data under key, evicting the oldest entry when full
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize <= 0 {
		return
	}
	if _, exists := c.items[key]; exists {
		c.removeKey(key)
	}
	for len(c.keys) >= c.maxSize {
		oldest := c.keys[0]
		c.keys = c.keys[1:]
		delete(c.items, oldest)
	}

	c.items[key] = cacheItem{data: data, timestamp: c.now()}
	c.keys = append(c.keys, key)
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops every entry
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheItem)
	c.keys = nil
}

func (c *Cache) removeKey(key string) {
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}
