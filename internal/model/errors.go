// File: internal/model/errors.go
package model

import "errors"

// 業務規則錯誤，由 handler 統一對應到 HTTP 狀態碼。
// 這些都是同步回報給呼叫端的結果，不做重試。
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("user with such email already exists")
	ErrBlocked            = errors.New("user is blocked")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrBadResetToken      = errors.New("invalid or expired reset token")
)
