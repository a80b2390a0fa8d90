// Package cache provides a bounded cache in front of the BK-tree and Trie
// query paths, so repeated lookups against the same query string don't
// re-walk the index.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// QueryCache caches the result of a fuzzy or pattern query by its query
// string. It replaces a hand-rolled access-time table with an off-the-shelf
// bounded LRU: eviction is O(1) instead of the linear scan a manual
// access-time map would need.
type QueryCache struct {
	inner *lru.Cache[string, []string]
}

// New returns a QueryCache holding at most size entries. size must be > 0.
func New(size int) (*QueryCache, error) {
	inner, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &QueryCache{inner: inner}, nil
}

// Get returns the cached result for key, if present.
func (c *QueryCache) Get(key string) ([]string, bool) {
	return c.inner.Get(key)
}

// Put stores result under key, evicting the least-recently-used entry if
// the cache is at capacity.
func (c *QueryCache) Put(key string, result []string) {
	c.inner.Add(key, result)
}

// Len returns the number of entries currently cached.
func (c *QueryCache) Len() int {
	return c.inner.Len()
}

// Purge clears the cache. Callers should do this after a rebuild, since a
// cached miss/hit computed against the old index is no longer valid.
func (c *QueryCache) Purge() {
	c.inner.Purge()
}
