package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面
// 重設密碼令牌為一次性使用，取值一律透過 GetDel 取出並同時刪除
// ttl <= 0 表示不設過期

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Close() error
}

type FakeCache struct {
	SetFn    func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	GetDelFn func(ctx context.Context, key string) *redis.StringCmd
	CloseFn  func() error
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// GetDel 執行 Fake 設定或 panic
func (f *FakeCache) GetDel(ctx context.Context, key string) *redis.StringCmd {
	if f.GetDelFn != nil {
		return f.GetDelFn(ctx, key)
	}
	panic("unexpected GetDel")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
