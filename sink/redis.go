package sink

import (
	"context"

	"dishseed/models"
	"github.com/redis/go-redis/v9"
)

// Redis appends every record to a list.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(addr, key string) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{Addr: addr}), key: key}
}

func (r *Redis) Submit(ctx context.Context, rec models.Record) error {
	return r.client.RPush(ctx, r.key, rec.JSON()).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
