// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseConfig([]byte("policy: fifo\nmax_size: 25\n"))
	require.NoError(err)
	require.Equal(FIFO, cfg.Policy)
	require.Equal(25, cfg.MaxSize)
}

func TestParseConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseConfig([]byte("{}"))
	require.NoError(err)
	require.Equal(LRU, cfg.Policy)
	require.Equal(DefaultCapacity, cfg.MaxSize)

	// Setting one field keeps the default for the other.
	cfg, err = ParseConfig([]byte("policy: random\n"))
	require.NoError(err)
	require.Equal(Random, cfg.Policy)
	require.Equal(DefaultCapacity, cfg.MaxSize)
}

func TestParseConfigInvalid(t *testing.T) {
	require := require.New(t)

	_, err := ParseConfig([]byte("policy: lfu\n"))
	require.ErrorIs(err, ErrUnknownPolicy)

	_, err = ParseConfig([]byte("max_size: 0\n"))
	require.ErrorIs(err, ErrInvalidCapacity)

	_, err = ParseConfig([]byte("max_size: -3\n"))
	require.ErrorIs(err, ErrInvalidCapacity)

	_, err = ParseConfig([]byte("\tmax_size: 1\n"))
	require.Error(err)
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(os.WriteFile(path, []byte("policy: lru\nmax_size: 7\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(err)
	require.Equal(LRU, cfg.Policy)
	require.Equal(7, cfg.MaxSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(err)
}
