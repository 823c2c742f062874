package api

import "time"

// ListUserResponse 使用者清單項目，Status 由封鎖旗標導出
// swagger:model api.ListUserResponse
type ListUserResponse struct {
	ID           int       `json:"id" example:"1"`
	Name         string    `json:"name" example:"Alice"`
	Email        string    `json:"email" example:"alice@example.com"`
	RegisteredAt time.Time `json:"registered_at" example:"2025-05-01T15:04:05Z"`
	Status       string    `json:"status" example:"Active"`
}
