package redisstream

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPublisher(t *testing.T, cfg Config) (*Publisher, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg.Addr = mr.Addr()
	pub, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })

	reader := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { reader.Close() })
	return pub, reader
}

func TestPublisher_AppendsToTypedStream(t *testing.T) {
	pub, reader := setupPublisher(t, Config{})
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, "broker", `{"broker_id":7,"nome":"Acme"}`))
	require.NoError(t, pub.Publish(ctx, "broker", `{"broker_id":8,"nome":"Beta"}`))
	require.NoError(t, pub.Publish(ctx, "loja", `{"loja_id":1}`))

	entries, err := reader.XRange(ctx, "ecommerce.events.broker", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "broker", entries[0].Values["type"])
	assert.Equal(t, `{"broker_id":7,"nome":"Acme"}`, entries[0].Values["payload"])
	assert.NotEmpty(t, entries[0].Values["published_at"])

	n, err := reader.XLen(ctx, "ecommerce.events.loja").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPublisher_CustomPrefix(t *testing.T) {
	pub, reader := setupPublisher(t, Config{StreamPrefix: "bo:"})
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, "usuario", `{}`))
	assert.Equal(t, "bo:usuario", pub.Stream("usuario"))

	n, err := reader.XLen(ctx, "bo:usuario").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestNew_RequiresAddr(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestNew_UnreachableRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = New(context.Background(), Config{Addr: addr})
	assert.Error(t, err)
}
