// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bounded implements a capacity-bounded cache with a configurable
// eviction policy (LRU, FIFO or Random).
package bounded

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mirestone/cache"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// entry is a cache entry. The sequence fields come from a single monotonic
// counter, so ordering comparisons are strict and tie-free.
type entry[K comparable, V any] struct {
	key         K
	value       V
	insertedSeq uint64
	accessedSeq uint64
}

// Cache is a keyed cache holding at most a fixed number of entries. When a
// new key is inserted at full capacity, exactly one victim is evicted first,
// chosen by the policy fixed at construction.
//
// Cache is not safe for concurrent use; callers synchronize externally.
type Cache[K comparable, V any] struct {
	policy   cache.Policy
	capacity int
	seq      uint64
	entries  map[K]*entry[K, V]
	order    []K // insertion order, oldest first
	rng      *rand.Rand
	onEvict  func(K, V)
	stats    Stats
}

// Option configures a Cache at construction.
type Option[K comparable, V any] func(*Cache[K, V])

// WithRand sets the randomness source consulted by the Random policy.
// Supplying a seeded source makes victim selection reproducible.
func WithRand[K comparable, V any](rng *rand.Rand) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.rng = rng
	}
}

// WithOnEvict registers a callback invoked whenever a policy eviction
// displaces an entry to make room. It is not called for explicit Evict or
// Flush.
func WithOnEvict[K comparable, V any](onEvict func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = onEvict
	}
}

// New creates a cache with the given eviction policy and entry capacity.
// A non-positive capacity fails with cache.ErrInvalidCapacity.
func New[K comparable, V any](policy cache.Policy, capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	switch policy {
	case cache.LRU, cache.FIFO, cache.Random:
	default:
		return nil, fmt.Errorf("%w: %s", cache.ErrUnknownPolicy, policy)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", cache.ErrInvalidCapacity, capacity)
	}
	c := &Cache[K, V]{
		policy:   policy,
		capacity: capacity,
		entries:  make(map[K]*entry[K, V], capacity),
		order:    make([]K, 0, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c, nil
}

// NewDefault creates an LRU cache with cache.DefaultCapacity entries.
func NewDefault[K comparable, V any]() *Cache[K, V] {
	c, _ := New[K, V](cache.LRU, cache.DefaultCapacity)
	return c
}

// FromConfig creates a cache from a validated configuration.
func FromConfig[K comparable, V any](cfg cache.Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New[K, V](cfg.Policy, cfg.MaxSize, opts...)
}

// Put inserts an element into the cache, replacing the value and refreshing
// the ordering metadata when the key already exists. Reports true.
func (c *Cache[K, V]) Put(key K, value V) bool {
	return c.put(key, value, true)
}

// PutIfAbsent inserts the element only if the key is not already present.
// When it is, the call is a no-op and reports false.
func (c *Cache[K, V]) PutIfAbsent(key K, value V) bool {
	return c.put(key, value, false)
}

func (c *Cache[K, V]) put(key K, value V, overwrite bool) bool {
	if e, ok := c.entries[key]; ok {
		if !overwrite {
			c.stats.RejectedPuts++
			return false
		}
		c.seq++
		e.value = value
		e.insertedSeq = c.seq
		e.accessedSeq = c.seq
		c.moveToBack(key)
		c.stats.Puts++
		return true
	}

	// Eviction is a precondition of inserting a new key at capacity.
	if len(c.entries) == c.capacity {
		c.evictVictim()
	}

	c.seq++
	c.entries[key] = &entry[K, V]{
		key:         key,
		value:       value,
		insertedSeq: c.seq,
		accessedSeq: c.seq,
	}
	c.order = append(c.order, key)
	c.stats.Puts++
	return true
}

// Get returns the entry with the key, if it exists. Under the LRU policy a
// hit refreshes the entry's recency; FIFO and Random order is unaffected by
// reads.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if e, ok := c.lookup(key); ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// GetRef returns a pointer to the stored value so the caller can mutate it
// in place. The pointer must not be used after the next mutating cache
// operation, which may evict or replace the entry. Recency side effects
// match Get.
func (c *Cache[K, V]) GetRef(key K) (*V, bool) {
	if e, ok := c.lookup(key); ok {
		return &e.value, true
	}
	return nil, false
}

func (c *Cache[K, V]) lookup(key K) (*entry[K, V], bool) {
	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	if c.policy == cache.LRU {
		c.seq++
		e.accessedSeq = c.seq
	}
	c.stats.Hits++
	return e, true
}

// Evict removes the specified entry from the cache, reporting whether an
// entry was present. Evicting an absent key leaves the cache unchanged.
func (c *Cache[K, V]) Evict(key K) bool {
	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	c.removeFromOrder(key)
	c.stats.Removals++
	return true
}

// Flush removes all entries from the cache.
func (c *Cache[K, V]) Flush() {
	clear(c.entries)
	c.order = c.order[:0]
}

// Len returns the number of elements in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// PortionFilled returns fraction of cache currently filled (0 --> 1).
func (c *Cache[K, V]) PortionFilled() float64 {
	return float64(len(c.entries)) / float64(c.capacity)
}

// Policy returns the eviction policy fixed at construction.
func (c *Cache[K, V]) Policy() cache.Policy {
	return c.policy
}

// Cap returns the entry capacity fixed at construction.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Stats returns a snapshot of the operation counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// String renders a human-readable summary of the cache contents in insertion
// order. The format is presentation-only and not stable for parsing.
func (c *Cache[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cache(policy=%s, len=%d/%d){", c.policy, len(c.entries), c.capacity)
	for i, key := range c.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", key, c.entries[key].value)
	}
	b.WriteString("}")
	return b.String()
}

// evictVictim removes exactly one entry chosen by the active policy.
func (c *Cache[K, V]) evictVictim() {
	var victim *entry[K, V]
	switch c.policy {
	case cache.LRU:
		// Scanning in insertion order means the earliest insertion wins
		// any tie on the access sequence.
		for _, key := range c.order {
			e := c.entries[key]
			if victim == nil || e.accessedSeq < victim.accessedSeq {
				victim = e
			}
		}
	case cache.FIFO:
		victim = c.entries[c.order[0]]
	case cache.Random:
		victim = c.entries[c.order[c.rng.Intn(len(c.order))]]
	}
	if victim == nil {
		return
	}

	delete(c.entries, victim.key)
	c.removeFromOrder(victim.key)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
}

func (c *Cache[K, V]) moveToBack(key K) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *Cache[K, V]) removeFromOrder(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
