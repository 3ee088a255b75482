package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

const menuKeyPrefix = "menu:"

// RedisMenuCache caches menu items as JSON under menu:<item_id> with a TTL.
type RedisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{client: client, ttl: ttl}
}

func (r *RedisMenuCache) GetItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	data, err := r.client.Get(ctx, menuKeyPrefix+itemID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item domain.MenuItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RedisMenuCache) SetItem(ctx context.Context, item domain.MenuItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, menuKeyPrefix+item.ItemID, data, r.ttl).Err()
}

func (r *RedisMenuCache) InvalidateItem(ctx context.Context, itemID string) error {
	return r.client.Del(ctx, menuKeyPrefix+itemID).Err()
}
