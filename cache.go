// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cache provides caching interfaces and shared cache configuration.
package cache

import "errors"

// DefaultCapacity is the entry bound used when no capacity is configured.
const DefaultCapacity = 1000

var (
	// ErrInvalidCapacity is returned when a cache is constructed with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")

	// ErrUnknownPolicy is returned when an eviction policy name cannot be
	// parsed.
	ErrUnknownPolicy = errors.New("cache: unknown eviction policy")
)

// Cacher acts as a best effort key value store bounded by a fixed capacity.
//
// Lookup misses and rejected overwrites are ordinary results, never errors.
// Implementations are not required to be safe for concurrent use; callers
// that share a Cacher across goroutines must synchronize externally.
type Cacher[K comparable, V any] interface {
	// Put inserts an element into the cache, replacing any existing value
	// for the key and refreshing its ordering metadata. Reports true.
	Put(key K, value V) bool

	// PutIfAbsent inserts the element only if the key is not present.
	// Reports false, leaving the existing entry untouched, when it is.
	PutIfAbsent(key K, value V) bool

	// Get returns the entry with the key, if it exists.
	Get(key K) (V, bool)

	// GetRef returns a pointer to the stored value for in-place mutation.
	// The pointer is valid only until the next mutating cache operation.
	GetRef(key K) (*V, bool)

	// Evict removes the specified entry from the cache, reporting whether
	// an entry was present.
	Evict(key K) bool

	// Flush removes all entries from the cache.
	Flush()

	// Len returns the number of elements in the cache.
	Len() int

	// PortionFilled returns fraction of cache currently filled (0 --> 1).
	PortionFilled() float64
}
