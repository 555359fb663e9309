package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
)

const cachedClientTimeToLive = 10 * time.Minute

// ClientCache is a read-through cache for client records. Merges must evict
// so stale source sets are never served after a reconciliation.
type ClientCache interface {
	FindByID(context.Context, string) (*model.Client, error)
	Cache(context.Context, *model.Client) error
	EvictByID(context.Context, string) error
}

type redisClientCache struct {
	client *redis.Client
}

func NewRedisClientCache(client *redis.Client) ClientCache {
	return &redisClientCache{client: client}
}

func (r *redisClientCache) FindByID(ctx context.Context, id string) (*model.Client, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Client
	if err := msgpack.Unmarshal([]byte(res), &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *redisClientCache) Cache(ctx context.Context, c *model.Client) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}

	_, err = r.client.SetNX(ctx, r.key(c.ID), encoded, cachedClientTimeToLive).Result()
	if err != nil {
		return err
	}
	return nil
}

func (r *redisClientCache) EvictByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisClientCache) key(id string) string {
	return fmt.Sprintf("client:%s", id)
}
