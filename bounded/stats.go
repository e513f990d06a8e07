// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bounded

// Stats contains cache operation counters. Counters only grow; Flush does
// not reset them.
type Stats struct {
	// Puts counts stores, both new insertions and overwrites.
	Puts uint64

	// RejectedPuts counts PutIfAbsent calls that found the key present.
	RejectedPuts uint64

	// Hits and Misses count lookups through Get and GetRef.
	Hits   uint64
	Misses uint64

	// Evictions counts entries displaced by the policy to make room.
	Evictions uint64

	// Removals counts explicit Evict calls that removed an entry.
	Removals uint64
}
