package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLock_AcquireAndContend(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewOrderLock(client)
	ctx := context.Background()

	acquired, err := lock.Acquire(ctx, "order-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	// Second acquire for the same order loses.
	acquired, err = lock.Acquire(ctx, "order-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	// A different order is unaffected.
	acquired, err = lock.Acquire(ctx, "order-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestOrderLock_Release(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewOrderLock(client)
	ctx := context.Background()

	acquired, err := lock.Acquire(ctx, "order-1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	err = lock.Release(ctx, "order-1")
	require.NoError(t, err)

	acquired, err = lock.Acquire(ctx, "order-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestOrderLock_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewOrderLock(client)
	ctx := context.Background()

	acquired, err := lock.Acquire(ctx, "order-1", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// A crashed holder's lock frees itself after the TTL.
	s.FastForward(2 * time.Second)

	acquired, err = lock.Acquire(ctx, "order-1", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRateLimitStore_Allow(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := store.Allow(ctx, "user-1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}

	res, err := store.Allow(ctx, "user-1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
	assert.Equal(t, int64(3), res.Limit)
}
