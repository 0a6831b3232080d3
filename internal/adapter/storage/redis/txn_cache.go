package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vcard-payments/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// TransactionCache implements ports.TransactionCache using Redis. Keys
// are scoped per user and per page size, so a limit=5 read never serves
// a stale limit=50 page.
type TransactionCache struct {
	client *goredis.Client
	prefix string
}

// NewTransactionCache creates a new Redis-backed transaction cache.
func NewTransactionCache(client *goredis.Client) *TransactionCache {
	return &TransactionCache{
		client: client,
		prefix: "user_txns:",
	}
}

func (c *TransactionCache) key(userID uuid.UUID, limit int) string {
	return fmt.Sprintf("%s%s:%d", c.prefix, userID, limit)
}

// Get retrieves a cached transaction page. Returns nil, nil on a miss.
func (c *TransactionCache) Get(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	val, err := c.client.Get(ctx, c.key(userID, limit)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis transaction cache get: %w", err)
	}

	var entries []domain.LedgerEntry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, fmt.Errorf("decode cached transactions: %w", err)
	}
	if entries == nil {
		// An empty page is a valid cached value, not a miss.
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

// Set stores a transaction page with TTL.
func (c *TransactionCache) Set(ctx context.Context, userID uuid.UUID, limit int, entries []domain.LedgerEntry, ttl time.Duration) error {
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	val, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode transactions for cache: %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID, limit), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis transaction cache set: %w", err)
	}
	return nil
}
