package cache

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
)

// Interface is the small cache surface the command handlers use. Entries are
// best-effort: the worker never relies on a hit, only benefits from one.
type Interface interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Cache wraps bigcache with a fixed per-entry TTL.
type Cache struct {
	bigCache *bigcache.BigCache
}

// New creates a cache whose entries expire after ttl.
func New(ctx context.Context, ttl time.Duration) (*Cache, error) {
	config := bigcache.DefaultConfig(ttl)
	bigCache, err := bigcache.New(ctx, config)
	if err != nil {
		return nil, err
	}
	return &Cache{bigCache: bigCache}, nil
}

func (c *Cache) Set(key string, value []byte) error {
	return c.bigCache.Set(key, value)
}

func (c *Cache) Get(key string) ([]byte, error) {
	return c.bigCache.Get(key)
}

func (c *Cache) Delete(key string) error {
	return c.bigCache.Delete(key)
}
