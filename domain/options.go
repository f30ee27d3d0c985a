package domain

import "github.com/Konsultn-Engineering/sqldomain/cache"

// Option configures a Compiler.
type Option func(*Compiler)

// WithColumnNaming sets the strategy that maps filter field names to column
// names before quoting. Default is identity.
func WithColumnNaming(s ColumnNamingStrategy) Option {
	return func(c *Compiler) {
		c.columns = s
	}
}

// WithCache memoizes compiled filters in an LRU of the given size, keyed by
// a fingerprint of the raw filter bytes.
func WithCache(size int) Option {
	return func(c *Compiler) {
		c.cache = cache.NewClauseCache(size)
	}
}
