// Package cache is a keyed TTL read cache in front of the list endpoints.
// Every mutation invalidates, so a stale page lives at most one TTL.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultTTL = time.Minute

	// Key prefixes. Invalidation works per prefix so a post mutation does
	// not evict the category list and vice versa.
	KeyPosts      = "posts"
	KeyCategories = "categories"
	KeyTags       = "tags"
)

type Cache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *Cache {
	return &Cache{store: gocache.New(ttl, 2*ttl)}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *Cache) Set(key string, value interface{}) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Invalidate drops every entry under the given prefix.
func (c *Cache) Invalidate(prefix string) {
	for key := range c.store.Items() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			c.store.Delete(key)
		}
	}
}
