package words

import (
	"crypto/md5"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lexigon/wordlesolver/constraints"
	"github.com/lexigon/wordlesolver/feedback"
)

// cacheKey is a unique key for a (history, universe) pair.
type cacheKey string

// FilterCache wraps constraints.Filter with LRU caching keyed by a
// hash of the guess history plus the universe length, mirroring the
// teacher's CachedFilterCandidateWords/GenerateCacheKey (the teacher
// imports hashicorp/golang-lru in strategies/util.go but never lists
// it in go.mod; this wires the dependency the teacher was always
// missing).
type FilterCache struct {
	cache *lru.Cache[cacheKey, []string]
	mu    sync.RWMutex
}

// NewFilterCache creates a cache holding at most maxEntries results.
func NewFilterCache(maxEntries int) (*FilterCache, error) {
	cache, err := lru.New[cacheKey, []string](maxEntries)
	if err != nil {
		return nil, err
	}
	return &FilterCache{cache: cache}, nil
}

// generateCacheKey hashes the ordered history plus the universe size
// into a compact key. Universe identity is approximated by length:
// the repository only ever filters from its own fixed guess lexicon,
// so two calls with the same history and the same universe length are
// guaranteed to be filtering the same backing list.
func generateCacheKey(history feedback.GuessHistory, universeLen int) cacheKey {
	s := fmt.Sprintf("len:%d|", universeLen)
	for _, rec := range history {
		s += rec.Word + ":" + rec.Pattern.String() + "|"
	}
	hash := md5.Sum([]byte(s))
	return cacheKey(fmt.Sprintf("%x", hash))
}

// Filter returns constraints.Filter(universe, history), serving from
// cache when the same (history, universe length) pair was already
// computed.
func (c *FilterCache) Filter(universe []string, history feedback.GuessHistory) []string {
	key := generateCacheKey(history, len(universe))

	c.mu.RLock()
	if cached, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		result := make([]string, len(cached))
		copy(result, cached)
		return result
	}
	c.mu.RUnlock()

	filtered := constraints.Filter(universe, history)

	c.mu.Lock()
	c.cache.Add(key, filtered)
	c.mu.Unlock()

	return filtered
}

// Stats returns the current number of cached entries.
func (c *FilterCache) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]int{"size": c.cache.Len()}
}

// Clear purges every cached entry.
func (c *FilterCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}
