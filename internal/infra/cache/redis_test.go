//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T, baseTTL time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	return setupTestRedisAt(t, baseTTL, clock.NewRealClock())
}

func setupTestRedisAt(t *testing.T, baseTTL time.Duration, clk clock.Clock) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, baseTTL, clk), mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, mr := setupTestRedis(t, 30*time.Second)
	ctx := context.Background()

	end := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	view := &queries.DropView{
		ProductID:   uuid.New(),
		Name:        "Tour Hoodie",
		Slug:        "tour-hoodie",
		PriceCents:  8500,
		DropEndDate: &end,
		Phase:       "live",
	}

	require.NoError(t, c.SetActiveDrop(ctx, view))
	assert.True(t, mr.Exists(activeDropKey))

	got, err := c.GetActiveDrop(ctx)
	require.NoError(t, err)
	assert.Equal(t, view.ProductID, got.ProductID)
	assert.Equal(t, "tour-hoodie", got.Slug)
	require.NotNil(t, got.DropEndDate)
	assert.True(t, end.Equal(*got.DropEndDate))
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := setupTestRedis(t, 30*time.Second)

	got, err := c.GetActiveDrop(context.Background())
	assert.ErrorIs(t, err, queries.ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidJSON(t *testing.T) {
	c, mr := setupTestRedis(t, 30*time.Second)
	require.NoError(t, mr.Set(activeDropKey, "{not json"))

	got, err := c.GetActiveDrop(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, queries.ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_Invalidate(t *testing.T) {
	c, mr := setupTestRedis(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.SetActiveDrop(ctx, &queries.DropView{ProductID: uuid.New(), Phase: "upcoming"}))
	require.NoError(t, c.InvalidateActiveDrop(ctx))
	assert.False(t, mr.Exists(activeDropKey))
}

func TestRedisCache_TTL(t *testing.T) {
	t.Run("jittered around the base", func(t *testing.T) {
		c, mr := setupTestRedis(t, 30*time.Second)
		require.NoError(t, c.SetActiveDrop(context.Background(), &queries.DropView{ProductID: uuid.New()}))

		ttl := mr.TTL(activeDropKey)
		assert.GreaterOrEqual(t, ttl, 30*time.Second)
		assert.Less(t, ttl, 36*time.Second)
	})

	t.Run("capped at the next window boundary", func(t *testing.T) {
		c, mr := setupTestRedis(t, 30*time.Second)
		release := time.Now().Add(10 * time.Second)
		require.NoError(t, c.SetActiveDrop(context.Background(), &queries.DropView{ProductID: uuid.New(), ReleaseDate: &release}))

		ttl := mr.TTL(activeDropKey)
		assert.LessOrEqual(t, ttl, 10*time.Second)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("boundary is measured on the injected clock", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		c, mr := setupTestRedisAt(t, 30*time.Second, clock.NewMockClock(now))
		end := now.Add(5 * time.Second)
		require.NoError(t, c.SetActiveDrop(context.Background(), &queries.DropView{ProductID: uuid.New(), DropEndDate: &end}))

		assert.Equal(t, 5*time.Second, mr.TTL(activeDropKey))
	})
}
