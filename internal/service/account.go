// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"user-system/internal/cache"
	"user-system/internal/database"
	"user-system/internal/model"
	"user-system/internal/store"
	"user-system/internal/worker"
)

// store 與本套件函式的測試縫隙，測試可覆寫這些變數。
var (
	getUserByEmail     = store.GetUserByEmail
	createUser         = store.CreateUser
	resurrectUser      = store.ResurrectUser
	listActiveUsers    = store.ListActiveUsers
	updateLastLogin    = store.UpdateLastLogin
	setUsersBlocked    = store.SetUsersBlocked
	softDeleteUsers    = store.SoftDeleteUsers
	updateUserPassword = store.UpdateUserPassword
	hashPassword       = HashPassword
	verifyPassword     = VerifyPassword
	newResetToken      = NewResetToken
	storeResetToken    = StoreResetToken
	consumeResetToken  = ConsumeResetToken
)

// Account 為帳號服務，於啟動時建立一次並持有所有外部協作者。
// 服務本身無狀態，所有狀態存於資料庫與快取。
type Account struct {
	db    database.DB
	cache cache.Cache
	jobs  worker.Pool

	now     func() time.Time
	deliver func(email, token string)
}

func NewAccount(db database.DB, c cache.Cache, jobs worker.Pool) *Account {
	return &Account{
		db:    db,
		cache: c,
		jobs:  jobs,
		now:   time.Now,
		// Out-of-band 傳遞通道的替身，實際部署應接上郵件服務
		deliver: func(email, token string) {
			log.Printf("password reset token for %s: %s", email, token)
		},
	}
}

// Register 建立新帳號。封鎖檢查先於重複檢查；
// 已軟刪除的 email 重新註冊時原地復活該列（保留 id）。
func (a *Account) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, model.ErrInvalidInput
	}

	existing, err := getUserByEmail(ctx, a.db, email)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}
	if err == nil {
		if !existing.IsDeleted && existing.IsBlocked {
			return nil, model.ErrBlocked
		}
		if !existing.IsDeleted {
			return nil, model.ErrEmailTaken
		}
		hash, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		existing.Name = name
		existing.PasswordHash = hash
		return resurrectUser(ctx, a.db, existing)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return createUser(ctx, a.db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
}

// Login 驗證憑證並推進 last_login_time。
// 帳號不存在、被封鎖、已刪除或密碼錯誤一律回傳 ErrInvalidCredentials。
func (a *Account) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := getUserByEmail(ctx, a.db, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	if u.IsDeleted || u.IsBlocked {
		return nil, model.ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	now := a.now().UTC()
	if err := updateLastLogin(ctx, a.db, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLoginTime = now
	return u, nil
}

// ListActive 列出未刪除的帳號，依最後登入時間由新到舊排序。
func (a *Account) ListActive(ctx context.Context) ([]model.User, error) {
	return listActiveUsers(ctx, a.db)
}

// GetByEmail 查詢單一帳號。被封鎖或已刪除回傳 ErrBlocked，
// 不存在回傳 ErrUserNotFound。
func (a *Account) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := getUserByEmail(ctx, a.db, email)
	if err != nil {
		return nil, err
	}
	if u.IsBlocked || u.IsDeleted {
		return nil, model.ErrBlocked
	}
	return u, nil
}

// Block 批次封鎖指定帳號，已刪除的列不受影響。
func (a *Account) Block(ctx context.Context, userIDs []int) (int64, error) {
	return a.setBlocked(ctx, userIDs, true)
}

// Unblock 批次解除封鎖指定帳號，已刪除的列不受影響。
func (a *Account) Unblock(ctx context.Context, userIDs []int) (int64, error) {
	return a.setBlocked(ctx, userIDs, false)
}

func (a *Account) setBlocked(ctx context.Context, userIDs []int, blocked bool) (int64, error) {
	if len(userIDs) == 0 {
		return 0, model.ErrInvalidInput
	}
	n, err := setUsersBlocked(ctx, a.db, userIDs, blocked)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, model.ErrUserNotFound
	}
	return n, nil
}

// Delete 批次軟刪除指定帳號。刪除為終態，之後任何操作都視同不存在。
func (a *Account) Delete(ctx context.Context, userIDs []int) (int64, error) {
	if len(userIDs) == 0 {
		return 0, model.ErrInvalidInput
	}
	deleted, err := softDeleteUsers(ctx, a.db, userIDs)
	if err != nil {
		return 0, err
	}
	if len(deleted) == 0 {
		return 0, model.ErrUserNotFound
	}
	for _, id := range deleted {
		log.Printf("user %d soft-deleted", id)
	}
	return int64(len(deleted)), nil
}

// RequestPasswordReset 產生一次性令牌寫入快取，
// 並交由 worker pool 以 out-of-band 通道非同步送出。
func (a *Account) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := getUserByEmail(ctx, a.db, email)
	if err != nil {
		return err
	}
	if u.IsDeleted {
		return model.ErrUserNotFound
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	if err := storeResetToken(ctx, a.cache, u.Email, token, ResetTokenTTL); err != nil {
		return err
	}

	target := u.Email
	a.jobs.Submit(func() { a.deliver(target, token) })
	return nil
}

// ResetPassword 消耗一次性令牌後替換密碼哈希。
// 令牌只能使用一次，過期或不符回傳 ErrBadResetToken。
func (a *Account) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	if newPassword == "" {
		return model.ErrInvalidInput
	}
	u, err := getUserByEmail(ctx, a.db, email)
	if err != nil {
		return err
	}
	if u.IsDeleted {
		return model.ErrUserNotFound
	}
	if err := consumeResetToken(ctx, a.cache, u.Email, token); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return updateUserPassword(ctx, a.db, u.Email, hash)
}

// Ping 檢查資料庫連線
func (a *Account) Ping(ctx context.Context) error {
	return a.db.Ping(ctx)
}
