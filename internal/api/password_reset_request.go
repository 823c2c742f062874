package api

// swagger:model api.PasswordResetRequest
type PasswordResetRequest struct {
	Email string `form:"email" json:"email" validate:"required,email" example:"alice@example.com"`
}
