package api

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Email       string `form:"email" json:"email" validate:"required,email" example:"alice@example.com"`
	Token       string `form:"token" json:"token" validate:"required" example:"f3b1a9c0d2e4..."`
	NewPassword string `form:"new_password" json:"new_password" validate:"required" example:"NewSecret456!"`
}
