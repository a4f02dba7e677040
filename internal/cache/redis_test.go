package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/esp-integrations/internal/config"
)

func TestNewRedisSingle(t *testing.T) {
	mr := miniredis.RunT(t)

	var cfg config.Cache
	cfg.Type = RedisTypeSingle
	cfg.Redis.Address = mr.Addr()
	cfg.Redis.PoolSize = 4

	client, err := NewRedis(cfg)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "esp:probe", "ok", 0).Err())
	got, err := mr.Get("esp:probe")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestNewRedisPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	var cfg config.Cache
	cfg.Type = RedisTypeSingle
	cfg.Redis.Address = mr.Addr()
	cfg.Redis.PoolSize = 1

	client, err := NewRedis(cfg)
	assert.Error(t, err)
	_ = client.Close()

	cfg.Redis.Password = "secret"
	client, err = NewRedis(cfg)
	require.NoError(t, err)
	_ = client.Close()
}

func TestNewRedisWrongType(t *testing.T) {
	client, err := NewRedis(config.Cache{Type: "memcached"})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrWrongRedisType)
}
