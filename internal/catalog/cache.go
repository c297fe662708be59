package catalog

import (
	"context"
	"sync"
)

// Cache memoizes a Source until Invalidate is called. The chat session
// invalidates it when the watcher reports a change.
type Cache struct {
	src Source

	mu  sync.Mutex
	cat *Catalog
}

func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

func (c *Cache) Load(ctx context.Context) (*Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cat != nil {
		return c.cat, nil
	}
	cat, err := c.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.cat = cat
	return cat, nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.cat = nil
	c.mu.Unlock()
}
