// Package cache stores generated prompts keyed by request.
package cache

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Policy selects a cache implementation
type Policy string

const (
	PolicyUnbounded Policy = "unbounded"
	PolicyLRU       Policy = "lru"
	PolicyNone      Policy = "none"
)

// DefaultSize is the LRU capacity used when none is configured
const DefaultSize = 512

// Cache maps request keys to finished prompts. Implementations are safe for concurrent use.
type Cache interface {
	Get(key string) (string, bool)
	Add(key, value string)
	Len() int
	Purge()
}

// Key builds the cache key for a resolved request. keywords are used verbatim.
func Key(category, platform, keywords string) string {
	return strings.Join([]string{category, platform, keywords}, "|")
}

// New returns the cache for policy. size only applies to the lru policy.
func New(policy Policy, size int) (Cache, error) {
	switch policy {
	case PolicyUnbounded, "":
		return NewUnbounded(), nil
	case PolicyLRU:
		return NewLRU(size)
	case PolicyNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache policy %q", policy)
	}
}

// Unbounded keeps every entry until Purge
type Unbounded struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewUnbounded() *Unbounded {
	return &Unbounded{entries: make(map[string]string)}
}

func (c *Unbounded) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Unbounded) Add(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *Unbounded) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Unbounded) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// LRU evicts the least recently used entry once size is reached
type LRU struct {
	inner *lru.Cache[string, string]
}

// NewLRU creates an LRU cache. A non-positive size uses DefaultSize.
func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		size = DefaultSize
	}
	inner, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &LRU{inner: inner}, nil
}

func (c *LRU) Get(key string) (string, bool) {
	return c.inner.Get(key)
}

func (c *LRU) Add(key, value string) {
	c.inner.Add(key, value)
}

func (c *LRU) Len() int {
	return c.inner.Len()
}

func (c *LRU) Purge() {
	c.inner.Purge()
}

// Noop never stores anything
type Noop struct{}

func (Noop) Get(string) (string, bool) { return "", false }
func (Noop) Add(string, string)        {}
func (Noop) Len() int                  { return 0 }
func (Noop) Purge()                    {}
