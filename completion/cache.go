package completion

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache keeps ranked completions for a short time, keyed by request signature
type Cache struct {
	lru *expirable.LRU[string, []string]
}

// NewCache creates a cache bounded to size entries that expire after ttl
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 512
	}

	return &Cache{lru: expirable.NewLRU[string, []string](size, nil, ttl)}
}

// Get returns a copy of the cached completions
func (c *Cache) Get(key string) ([]string, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	return append([]string(nil), v...), true
}

// Add stores completions under key
func (c *Cache) Add(key string, values []string) {
	c.lru.Add(key, append([]string(nil), values...))
}

// Purge drops every entry
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len returns the number of live entries
func (c *Cache) Len() int {
	return c.lru.Len()
}
