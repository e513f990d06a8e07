// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metercacher provides metered cache implementations.
package metercacher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mirestone/cache"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a Cacher with Prometheus metrics.
type Cache[K comparable, V any] struct {
	cache.Cacher[K, V]
	metrics *cacheMetrics
}

// New creates a new metered cache wrapper registered under the given
// namespace.
func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	c cache.Cacher[K, V],
) (*Cache[K, V], error) {
	metrics, err := newMetrics(namespace, registerer)
	return &Cache[K, V]{
		Cacher:  c,
		metrics: metrics,
	}, err
}

func (c *Cache[K, V]) Put(key K, value V) bool {
	start := time.Now()
	stored := c.Cacher.Put(key, value)
	putDuration := time.Since(start)

	c.metrics.putCount.Inc()
	c.metrics.putTime.Add(float64(putDuration))
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())
	return stored
}

func (c *Cache[K, V]) PutIfAbsent(key K, value V) bool {
	start := time.Now()
	stored := c.Cacher.PutIfAbsent(key, value)
	putDuration := time.Since(start)

	c.metrics.putCount.Inc()
	c.metrics.putTime.Add(float64(putDuration))
	if !stored {
		c.metrics.putRejected.Inc()
	}
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())
	return stored
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	start := time.Now()
	value, has := c.Cacher.Get(key)
	c.observeGet(time.Since(start), has)
	return value, has
}

func (c *Cache[K, V]) GetRef(key K) (*V, bool) {
	start := time.Now()
	ref, has := c.Cacher.GetRef(key)
	c.observeGet(time.Since(start), has)
	return ref, has
}

func (c *Cache[_, _]) observeGet(d time.Duration, hit bool) {
	labels := missLabels
	if hit {
		labels = hitLabels
	}
	c.metrics.getCount.With(labels).Inc()
	c.metrics.getTime.With(labels).Add(float64(d))
}

func (c *Cache[K, _]) Evict(key K) bool {
	removed := c.Cacher.Evict(key)
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())
	return removed
}

func (c *Cache[_, _]) Flush() {
	c.Cacher.Flush()
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())
}
