package cache

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const activeDropKey = "drops:active"

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
	clock   clock.Clock
}

func NewRedisCache(client *redis.Client, baseTTL time.Duration, clock clock.Clock) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: baseTTL,
		clock:   clock,
	}
}

var _ queries.ActiveDropCache = (*RedisCache)(nil)

func (r *RedisCache) GetActiveDrop(ctx context.Context) (*queries.DropView, error) {
	data, err := r.client.Get(ctx, activeDropKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, queries.ErrCacheMiss
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}

	var view queries.DropView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, errs.Wrap(err, "unmarshal active drop failed")
	}
	return &view, nil
}

func (r *RedisCache) SetActiveDrop(ctx context.Context, view *queries.DropView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "marshal active drop failed")
	}

	if err := r.client.Set(ctx, activeDropKey, data, r.ttl(view)).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (r *RedisCache) InvalidateActiveDrop(ctx context.Context) error {
	if err := r.client.Del(ctx, activeDropKey).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

// ttl adds up to 20% jitter and never outlives the next boundary of the cached window.
func (r *RedisCache) ttl(view *queries.DropView) time.Duration {
	ttl := r.baseTTL
	if spread := int64(r.baseTTL / 5); spread > 0 {
		ttl += time.Duration(rand.Int63n(spread))
	}

	now := r.clock.Now()
	for _, boundary := range []*time.Time{view.ReleaseDate, view.DropEndDate} {
		if boundary == nil || !boundary.After(now) {
			continue
		}
		if until := boundary.Sub(now); until < ttl {
			ttl = until
		}
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}
