// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the construction-time cache settings. Policy and capacity are
// fixed for the cache's lifetime; changing either means building a new cache.
type Config struct {
	Policy  Policy `yaml:"policy"`
	MaxSize int    `yaml:"max_size"`
}

// DefaultConfig returns the settings used when a field is left unset: LRU
// eviction with DefaultCapacity entries.
func DefaultConfig() Config {
	return Config{
		Policy:  LRU,
		MaxSize: DefaultCapacity,
	}
}

// Validate checks that the configuration can produce a usable cache.
func (c Config) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("%w: max_size %d", ErrInvalidCapacity, c.MaxSize)
	}
	return nil
}

// ParseConfig decodes a YAML cache configuration. Unset fields fall back to
// DefaultConfig values; an explicit non-positive max_size is rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cache: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML cache configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cache: reading config: %w", err)
	}
	return ParseConfig(data)
}
