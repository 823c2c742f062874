// File: internal/model/user.go
package model

import "time"

// 使用者帳號狀態標籤
const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

type User struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	IsBlocked     bool      `db:"is_blocked" json:"is_blocked"`
	IsDeleted     bool      `db:"is_deleted" json:"is_deleted"`
	RegisteredAt  time.Time `db:"registered_at" json:"registered_at"`
	LastLoginTime time.Time `db:"last_login_time" json:"last_login_time"`
}

// Status 依據 IsBlocked 回傳帳號狀態標籤
func (u *User) Status() string {
	if u.IsBlocked {
		return StatusBlocked
	}
	return StatusActive
}
