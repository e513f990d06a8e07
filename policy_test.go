// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePolicy(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name string
		want Policy
	}{
		{"lru", LRU},
		{"LRU", LRU},
		{"fifo", FIFO},
		{"FIFO", FIFO},
		{"random", Random},
		{"Random", Random},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.name)
		require.NoError(err)
		require.Equal(tt.want, got)
	}

	_, err := ParsePolicy("mru")
	require.ErrorIs(err, ErrUnknownPolicy)
	_, err = ParsePolicy("")
	require.ErrorIs(err, ErrUnknownPolicy)
}

func TestPolicyString(t *testing.T) {
	require := require.New(t)

	require.Equal("LRU", LRU.String())
	require.Equal("FIFO", FIFO.String())
	require.Equal("Random", Random.String())
	require.Equal("Policy(9)", Policy(9).String())
}

func TestPolicyStringRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, p := range []Policy{LRU, FIFO, Random} {
		parsed, err := ParsePolicy(p.String())
		require.NoError(err)
		require.Equal(p, parsed)
	}
}

func TestPolicyUnmarshalYAML(t *testing.T) {
	require := require.New(t)

	var p Policy
	require.NoError(yaml.Unmarshal([]byte(`fifo`), &p))
	require.Equal(FIFO, p)

	err := yaml.Unmarshal([]byte(`bogus`), &p)
	require.ErrorIs(err, ErrUnknownPolicy)
}
