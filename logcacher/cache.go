// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logcacher provides a cache wrapper that logs operations.
package logcacher

import (
	"go.uber.org/zap"

	"github.com/mirestone/cache"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a Cacher and logs every operation at debug level. It adds no
// behavior and inherits the wrapped cache's synchronization contract.
type Cache[K comparable, V any] struct {
	cache.Cacher[K, V]
	log *zap.Logger
}

// New creates a new logging cache wrapper.
func New[K comparable, V any](log *zap.Logger, c cache.Cacher[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		Cacher: c,
		log:    log,
	}
}

func (c *Cache[K, V]) Put(key K, value V) bool {
	stored := c.Cacher.Put(key, value)
	c.log.Debug("cache put",
		zap.Any("key", key),
		zap.Int("len", c.Cacher.Len()))
	return stored
}

func (c *Cache[K, V]) PutIfAbsent(key K, value V) bool {
	stored := c.Cacher.PutIfAbsent(key, value)
	c.log.Debug("cache put-if-absent",
		zap.Any("key", key),
		zap.Bool("stored", stored),
		zap.Int("len", c.Cacher.Len()))
	return stored
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, has := c.Cacher.Get(key)
	c.log.Debug("cache get",
		zap.Any("key", key),
		zap.Bool("hit", has))
	return value, has
}

func (c *Cache[K, V]) GetRef(key K) (*V, bool) {
	ref, has := c.Cacher.GetRef(key)
	c.log.Debug("cache get-ref",
		zap.Any("key", key),
		zap.Bool("hit", has))
	return ref, has
}

func (c *Cache[K, _]) Evict(key K) bool {
	removed := c.Cacher.Evict(key)
	c.log.Debug("cache evict",
		zap.Any("key", key),
		zap.Bool("removed", removed),
		zap.Int("len", c.Cacher.Len()))
	return removed
}

func (c *Cache[_, _]) Flush() {
	c.Cacher.Flush()
	c.log.Debug("cache flush")
}
