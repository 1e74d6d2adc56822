package cache

import (
	"context"
	"time"

	"storefront-inventory/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "inventory:adjust:"

// IdempotencyGuard deduplicates adjustment requests carrying an
// Idempotency-Key header. SET NX claims the key; a replay within the TTL
// loses the claim and is rejected before any quantity change.
type IdempotencyGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyGuard(client *redis.Client, ttl time.Duration) *IdempotencyGuard {
	return &IdempotencyGuard{client: client, ttl: ttl}
}

func (g *IdempotencyGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, g.ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to claim idempotency key")
	}
	return ok, nil
}
