package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `form:"name" json:"name" validate:"required" example:"Alice"`
	Email    string `form:"email" json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" json:"password" validate:"required" example:"Secret123!"`
}
