// Copyright (C) 2026, Mirestone Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logcacher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mirestone/cache"
	"github.com/mirestone/cache/bounded"
)

func newLogged(t *testing.T) (*Cache[string, int], *observer.ObservedLogs) {
	t.Helper()
	require := require.New(t)

	inner, err := bounded.New[string, int](cache.FIFO, 2)
	require.NoError(err)

	core, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(core), inner), logs
}

func TestLoggedCacheEmitsEntries(t *testing.T) {
	require := require.New(t)

	c, logs := newLogged(t)

	c.Put("a", 1)
	c.PutIfAbsent("a", 2)
	c.Get("a")
	c.Get("missing")
	c.GetRef("a")
	c.Evict("a")
	c.Flush()

	messages := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	require.Equal([]string{
		"cache put",
		"cache put-if-absent",
		"cache get",
		"cache get",
		"cache get-ref",
		"cache evict",
		"cache flush",
	}, messages)

	miss := logs.All()[3]
	require.Equal(false, miss.ContextMap()["hit"])
	require.Equal("missing", miss.ContextMap()["key"])
}

func TestLoggedCachePreservesBehavior(t *testing.T) {
	require := require.New(t)

	c, _ := newLogged(t)

	require.True(c.Put("a", 1))
	require.False(c.PutIfAbsent("a", 2))

	val, ok := c.Get("a")
	require.True(ok)
	require.Equal(1, val)

	require.True(c.Evict("a"))
	require.False(c.Evict("a"))
	require.Zero(c.Len())
}
