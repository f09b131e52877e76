package fuzzydist

import (
	"container/list"
	"sync"

	"github.com/Alfex4936/fuzzydist/internal/model"
)

// cache is an LRU of query → ranked matches. Safe for concurrent use.
// Entries are copied on the way in and out so callers can mutate results.
type cache struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	key     string
	matches []model.Match
}

func newCache(maxSize int) *cache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// get returns a copy of the cached matches, or nil on a miss.
func (c *cache) get(key string) []model.Match {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(elem)
	return copyMatches(elem.Value.(*cacheEntry).matches)
}

// set stores a copy of matches under key, evicting the oldest entry when
// the cache is full.
func (c *cache) set(key string, matches []model.Match) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).matches = copyMatches(matches)
		return
	}

	if c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
	c.items[key] = c.lru.PushFront(&cacheEntry{key: key, matches: copyMatches(matches)})
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func copyMatches(matches []model.Match) []model.Match {
	out := make([]model.Match, len(matches))
	copy(out, matches)
	return out
}
