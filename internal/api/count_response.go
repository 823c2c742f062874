package api

// CountResponse 批次操作實際影響的列數
// swagger:model api.CountResponse
type CountResponse struct {
	Count int64 `json:"count" example:"2"`
}
