package api

// LoginResponse 登入成功後回傳的摘要
// swagger:model api.LoginResponse
type LoginResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}
