package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/clock"
)

func TestMemory_ExpiresWithClock(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewMemory(clk, 10)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	clk.Advance(59 * time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.True(t, ok)

	clk.Advance(time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemory_Bounded(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewMemory(clk, 2)

	require.NoError(t, c.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, c.Set(ctx, "long", []byte("2"), time.Hour))
	require.NoError(t, c.Set(ctx, "new", []byte("3"), time.Hour))

	assert.Equal(t, 2, c.Len())
	_, ok, _ := c.Get(ctx, "short")
	assert.False(t, ok, "entry closest to expiry is evicted first")
	_, ok, _ = c.Get(ctx, "new")
	assert.True(t, ok)
}

func TestMemory_DelAndZeroTTL(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(nil, 0)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok, "zero ttl is not stored")

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Del(ctx, "k"))
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(nil, 0)

	type row struct {
		UserID string
		Points int64
	}
	require.NoError(t, cache.SetJSON(ctx, c, "rows", []row{{"u1", 10}}, time.Minute))

	var out []row
	ok, err := cache.GetJSON(ctx, c, "rows", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []row{{"u1", 10}}, out)

	require.NoError(t, c.Set(ctx, "bad", []byte("{"), time.Minute))
	ok, err = cache.GetJSON(ctx, c, "bad", &out)
	require.NoError(t, err)
	assert.False(t, ok, "undecodable entries are treated as a miss")
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c cache.Cache = cache.Noop{}

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
