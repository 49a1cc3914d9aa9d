package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serdarekici/inventory-management/internal/config"
	"github.com/serdarekici/inventory-management/internal/domain"
)

func TestBuildRedisOptionsFromURL(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{
		RedisURL: "redis://:secret@redis.internal:6380/2",
	})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestBuildRedisOptionsRejectsBadURL(t *testing.T) {
	_, err := buildRedisOptions(config.CacheConfig{RedisURL: "http://not-redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid redis url")
}

func TestBuildRedisOptionsFromHostPort(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{
		RedisHost:     "cache.internal",
		RedisPort:     "6390",
		RedisPassword: "pw",
		RedisDB:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6390", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 1, opts.DB)
}

func TestBuildRedisOptionsDefaults(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)
}

func TestNewDashboardCacheDisabledIsNoop(t *testing.T) {
	c, err := NewDashboardCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.SetSummary(ctx, &domain.PortfolioSummary{OrdersTotal: 1}))

	summary, ok, err := c.GetSummary(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, summary)

	assert.NoError(t, c.InvalidateAll(ctx))
}
