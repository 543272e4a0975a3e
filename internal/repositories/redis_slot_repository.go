package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"arca/pkg/utils"
)

type redisSlotRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisSlotRepository keeps each slot as a plain string under
// "<prefix>:<owner>:<key>" with no expiry.
func NewRedisSlotRepository(client *redis.Client, prefix string) SlotRepository {
	if prefix == "" {
		prefix = "arca"
	}
	return &redisSlotRepository{client: client, prefix: prefix}
}

func (r *redisSlotRepository) redisKey(owner, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, owner, key)
}

func (r *redisSlotRepository) GetSlot(ctx context.Context, owner string, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.redisKey(owner, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get %s: %v", utils.ErrDatabaseError, r.redisKey(owner, key), err)
	}
	return value, true, nil
}

func (r *redisSlotRepository) PutSlot(ctx context.Context, owner string, key string, value string) error {
	if err := r.client.Set(ctx, r.redisKey(owner, key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", utils.ErrDatabaseError, r.redisKey(owner, key), err)
	}
	return nil
}
