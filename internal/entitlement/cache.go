package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const notAllowedKeyPrefix = "relation:not-allowed"

// Cache stores computed not-allowed sets in Redis, one key per user and
// option combination. Connection-change events invalidate all variants of
// both affected users.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func notAllowedKey(userID uuid.UUID, opts NotAllowedOptions) string {
	flags := 0
	if opts.IncludeRestricted {
		flags |= 1
	}
	if opts.ExcludeBlockedReversal {
		flags |= 2
	}

	return fmt.Sprintf("%s:%s:%d", notAllowedKeyPrefix, userID, flags)
}

func (c *Cache) GetNotAllowed(ctx context.Context, userID uuid.UUID, opts NotAllowedOptions) ([]uuid.UUID, bool, error) {
	raw, err := c.client.Get(ctx, notAllowedKey(userID, opts)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get key: %w", err)
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("decode cached set: %w", err)
	}

	return ids, true, nil
}

func (c *Cache) SetNotAllowed(ctx context.Context, userID uuid.UUID, opts NotAllowedOptions, ids []uuid.UUID) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode set: %w", err)
	}

	if err := c.client.Set(ctx, notAllowedKey(userID, opts), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set key: %w", err)
	}

	return nil
}

// Invalidate drops every option variant of the user's cached set.
func (c *Cache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	keys := make([]string, 0, 4)
	for flags := 0; flags < 4; flags++ {
		keys = append(keys, fmt.Sprintf("%s:%s:%d", notAllowedKeyPrefix, userID, flags))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("del keys: %w", err)
	}

	return nil
}
