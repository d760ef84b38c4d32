package adapter

import (
	"context"
	"testing"
	"time"

	"learnhub/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("some-key").SetVal("some-value")
		val, err := cacheAdapter.Get(ctx, "some-key")
		require.NoError(t, err)
		assert.Equal(t, "some-value", val)
	})

	t.Run("miss maps to ErrCacheMiss", func(t *testing.T) {
		mock.ExpectGet("missing-key").RedisNil()
		_, err := cacheAdapter.Get(ctx, "missing-key")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Minute).SetVal("OK")
	require.NoError(t, cacheAdapter.Set(ctx, "k", "v", time.Minute))

	mock.ExpectDel("k").SetVal(1)
	require.NoError(t, cacheAdapter.Delete(ctx, "k"))

	require.NoError(t, mock.ExpectationsWereMet())
}
