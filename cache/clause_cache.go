// Package cache memoizes compiled domain filters so repeated filters skip
// the parse and compile passes.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Konsultn-Engineering/sqldomain/frag"
)

// CachedClause is one compiled WHERE clause: fragment text with markers
// intact plus its ordered parameter values. Entries are immutable once
// stored; consumers copy the params into a fresh fragment rather than
// aliasing the slice.
type CachedClause struct {
	Text   string
	Params []frag.Value
}

// ClauseCache is an LRU of compiled clauses keyed by input fingerprint.
// Safe for concurrent use.
type ClauseCache struct {
	cache *lru.Cache[uint64, *CachedClause]
}

func NewClauseCache(size int) *ClauseCache {
	c, _ := lru.New[uint64, *CachedClause](size)
	return &ClauseCache{cache: c}
}

func (c *ClauseCache) Get(key uint64) (*CachedClause, bool) {
	return c.cache.Get(key)
}

func (c *ClauseCache) Set(key uint64, clause *CachedClause) {
	c.cache.Add(key, clause)
}

func (c *ClauseCache) Len() int {
	return c.cache.Len()
}

func (c *ClauseCache) Purge() {
	c.cache.Purge()
}
