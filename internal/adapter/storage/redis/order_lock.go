package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// OrderLock implements ports.OrderLocker using Redis SET NX. The TTL
// bounds how long a crashed holder can block other refunds for the same
// order.
type OrderLock struct {
	client *goredis.Client
	prefix string
}

// NewOrderLock creates a new Redis-backed order lock.
func NewOrderLock(client *goredis.Client) *OrderLock {
	return &OrderLock{
		client: client,
		prefix: "refund_lock:",
	}
}

// Acquire atomically takes the per-order lock. Returns true if the
// caller now holds it, false if another refund for the order is already
// in flight.
func (l *OrderLock) Acquire(ctx context.Context, orderRef string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+orderRef, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — lock is held
			return false, nil
		}
		return false, fmt.Errorf("redis order lock acquire: %w", err)
	}
	return result == "OK", nil
}

// Release drops the per-order lock.
func (l *OrderLock) Release(ctx context.Context, orderRef string) error {
	if err := l.client.Del(ctx, l.prefix+orderRef).Err(); err != nil {
		return fmt.Errorf("redis order lock release: %w", err)
	}
	return nil
}
