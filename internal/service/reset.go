// File: internal/service/reset.go
package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"user-system/internal/cache"
	"user-system/internal/model"

	"github.com/redis/go-redis/v9"
)

// ResetTokenTTL 重設密碼令牌的有效期間
const ResetTokenTTL = 15 * time.Minute

func resetTokenKey(email string) string {
	return "password_reset:" + email
}

// NewResetToken 產生 128-bit 不可猜測的一次性令牌
func NewResetToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// StoreResetToken 將令牌寫入快取並設定過期時間，逾時自動失效
func StoreResetToken(ctx context.Context, c cache.Cache, email, token string, ttl time.Duration) error {
	if err := c.Set(ctx, resetTokenKey(email), token, ttl).Err(); err != nil {
		return fmt.Errorf("StoreResetToken: %w", err)
	}
	return nil
}

// ConsumeResetToken 取出並同時刪除儲存的令牌後做常數時間比對。
// 令牌不存在、已過期或不符時回傳 model.ErrBadResetToken。
func ConsumeResetToken(ctx context.Context, c cache.Cache, email, token string) error {
	stored, err := c.GetDel(ctx, resetTokenKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrBadResetToken
		}
		return fmt.Errorf("ConsumeResetToken: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return model.ErrBadResetToken
	}
	return nil
}
