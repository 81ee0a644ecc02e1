// Package prompts contains the MCP prompt implementations for mcpbase.
package prompts

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config holds configuration needed by prompts.
type Config struct {
	CacheMaxItems int // bound on cached rendered prompts
}

// renderCache memoizes rendered prompt text keyed by the argument tuple.
// Rendering is cheap but prompts are requested repeatedly with identical
// arguments by retrying clients, so an LRU keeps the hot ones around.
type renderCache struct {
	cache *lru.Cache[string, string]
}

func newRenderCache(maxItems int) (*renderCache, error) {
	if maxItems <= 0 {
		maxItems = 128
	}
	c, err := lru.New[string, string](maxItems)
	if err != nil {
		return nil, err
	}
	return &renderCache{cache: c}, nil
}

func (c *renderCache) get(key string) (string, bool) {
	return c.cache.Get(key)
}

func (c *renderCache) put(key, rendered string) {
	c.cache.Add(key, rendered)
}
