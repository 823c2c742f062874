package api

import "time"

// UserResponse 單一使用者的摘要，永不包含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID           int       `json:"id" example:"1"`
	Name         string    `json:"name" example:"Alice"`
	Email        string    `json:"email" example:"alice@example.com"`
	RegisteredAt time.Time `json:"registered_at" example:"2025-05-01T15:04:05Z"`
}
