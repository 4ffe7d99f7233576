package regexcache

import (
	"time"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCapacity bounds the shared cache. Ten entries amortize the
// translation and compilation of the patterns a typical schema set
// reuses without letting hostile inputs pin unbounded memory.
const DefaultCapacity = 10

// DefaultMatchTimeout is the backtracking budget applied to every
// compiled matcher. A match that exceeds it fails with an error
// instead of running unbounded.
const DefaultMatchTimeout = time.Second

// Default is the process-wide cache shared by all schema compilations.
var Default = New(DefaultCapacity)

// Cache is a bounded, mutex-guarded LRU of compiled matchers keyed by
// the original, untranslated pattern. A lookup hit promotes the entry
// to most-recently-used; an insert at capacity evicts the
// least-recently-used entry. Entries are immutable once inserted.
type Cache struct {
	entries      *lru.Cache
	matchTimeout time.Duration
}

// New creates a cache holding at most capacity compiled matchers.
// Capacity must be positive.
func New(capacity int) *Cache {
	return NewWithTimeout(capacity, DefaultMatchTimeout)
}

// NewWithTimeout creates a cache whose matchers carry the given
// backtracking budget instead of DefaultMatchTimeout.
func NewWithTimeout(capacity int, timeout time.Duration) *Cache {
	entries, err := lru.New(capacity)
	if err != nil {
		panic(err)
	}
	return &Cache{entries: entries, matchTimeout: timeout}
}

// Compile returns the compiled matcher for pattern, translating and
// compiling on a cache miss. The matcher is shared and safe for
// concurrent use; no matching ever happens while the cache lock is
// held.
//
// Parameters:
//
//	pattern string: The original ECMA 262 pattern.
//
// Returns:
//
//	*regexp2.Regexp: The translated, compiled matcher.
//	error: The matcher compiler's error if the translated pattern is
//	malformed.
func (c *Cache) Compile(pattern string) (*regexp2.Regexp, error) {
	if cached, ok := c.entries.Get(pattern); ok {
		return cached.(*regexp2.Regexp), nil
	}
	re, err := regexp2.Compile(Convert(pattern), regexp2.None)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = c.matchTimeout
	c.entries.Add(pattern, re)
	return re, nil
}

// Contains reports whether pattern is cached without updating its
// recency.
func (c *Cache) Contains(pattern string) bool {
	return c.entries.Contains(pattern)
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	return c.entries.Len()
}
