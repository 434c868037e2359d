package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	// Stored bytes are copied, not aliased.
	val[0] = 'x'
	val2, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val2)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "short", []byte("1"), 10*time.Millisecond))

	exists, err := c.Exists(ctx, "short")
	require.NoError(t, err)
	assert.True(t, exists)

	time.Sleep(20 * time.Millisecond)

	exists, err = c.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Deleting an absent key is not an error.
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestMemoryCache_Increment(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	t.Run("counts up", func(t *testing.T) {
		for want := int64(1); want <= 3; want++ {
			n, err := c.Increment(ctx, "attempts", time.Minute)
			require.NoError(t, err)
			assert.Equal(t, want, n)
		}
	})

	t.Run("fixed window", func(t *testing.T) {
		// The window starts at the first increment; later increments must
		// not extend it.
		n, err := c.Increment(ctx, "win", 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		time.Sleep(20 * time.Millisecond)
		n, err = c.Increment(ctx, "win", 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		time.Sleep(20 * time.Millisecond)

		// Past the original expiry the counter restarts.
		n, err = c.Increment(ctx, "win", 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
