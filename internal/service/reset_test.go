package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"user-system/internal/cache"
	"user-system/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	t1, err := NewResetToken()
	require.NoError(t, err)
	require.Len(t, t1, 32) // 128 bits, hex 編碼

	t2, err := NewResetToken()
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)
}

func TestStoreResetToken(t *testing.T) {
	var gotKey string
	var gotVal any
	var gotTTL time.Duration
	c := &cache.FakeCache{
		SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
			gotKey, gotVal, gotTTL = key, val, ttl
			return redis.NewStatusResult("OK", nil)
		},
	}
	require.NoError(t, StoreResetToken(context.Background(), c, "alice@example.com", "tok", ResetTokenTTL))
	require.Equal(t, "password_reset:alice@example.com", gotKey)
	require.Equal(t, "tok", gotVal)
	require.Equal(t, ResetTokenTTL, gotTTL)

	c.SetFn = func(_ context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("down"))
	}
	require.Error(t, StoreResetToken(context.Background(), c, "alice@example.com", "tok", ResetTokenTTL))
}

func TestConsumeResetToken(t *testing.T) {
	t.Run("match consumes token", func(t *testing.T) {
		c := &cache.FakeCache{
			GetDelFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "password_reset:alice@example.com", key)
				return redis.NewStringResult("tok", nil)
			},
		}
		require.NoError(t, ConsumeResetToken(context.Background(), c, "alice@example.com", "tok"))
	})

	t.Run("missing or expired", func(t *testing.T) {
		c := &cache.FakeCache{
			GetDelFn: func(_ context.Context, _ string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		err := ConsumeResetToken(context.Background(), c, "alice@example.com", "tok")
		require.ErrorIs(t, err, model.ErrBadResetToken)
	})

	t.Run("mismatch", func(t *testing.T) {
		c := &cache.FakeCache{
			GetDelFn: func(_ context.Context, _ string) *redis.StringCmd {
				return redis.NewStringResult("other", nil)
			},
		}
		err := ConsumeResetToken(context.Background(), c, "alice@example.com", "tok")
		require.ErrorIs(t, err, model.ErrBadResetToken)
	})

	t.Run("cache failure", func(t *testing.T) {
		c := &cache.FakeCache{
			GetDelFn: func(_ context.Context, _ string) *redis.StringCmd {
				return redis.NewStringResult("", errors.New("down"))
			},
		}
		err := ConsumeResetToken(context.Background(), c, "alice@example.com", "tok")
		require.Error(t, err)
		require.NotErrorIs(t, err, model.ErrBadResetToken)
	})
}
