package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "transitiq")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "report:abc", []byte(`{"id":"abc"}`), 10*time.Second)
	require.NoError(t, err)

	value, err := adapter.Get(ctx, "report:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"abc"}`), value)

	// Keys are namespaced in Redis.
	assert.True(t, mr.Exists("transitiq:report:abc"))
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "non_existent_key")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "delete_test", []byte("value"), 0))
	require.NoError(t, adapter.Delete(ctx, "delete_test"))

	_, err := adapter.Get(ctx, "delete_test")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_NoNamespace(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer adapter.Close()

	require.NoError(t, adapter.Set(context.Background(), "plain", []byte("v"), 0))
	assert.True(t, mr.Exists("plain"))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url", "transitiq")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
