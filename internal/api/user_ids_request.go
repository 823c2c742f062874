package api

// UserIDsRequest 批次操作（封鎖、解封、刪除）的目標 id 清單
// swagger:model api.UserIDsRequest
type UserIDsRequest struct {
	IDs []int `form:"ids" json:"ids" validate:"required,min=1,dive,gt=0"`
}
