// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy selects which entry is evicted when a full cache admits a new key.
// The set is closed; victim selection switches over it exhaustively.
type Policy uint8

const (
	// LRU evicts the entry with the oldest last access, counting both reads
	// and writes as accesses. Ties go to the earliest insertion.
	LRU Policy = iota

	// FIFO evicts the entry with the oldest insertion. Reads never refresh
	// FIFO order.
	FIFO

	// Random evicts an entry chosen uniformly among current entries.
	Random
)

// ParsePolicy converts a policy name to a Policy. Matching is
// case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "lru":
		return LRU, nil
	case "fifo":
		return FIFO, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p Policy) String() string {
	switch p {
	case LRU:
		return "LRU"
	case FIFO:
		return "FIFO"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler so a Policy can appear directly
// in configuration structs.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

var _ yaml.Unmarshaler = (*Policy)(nil)
