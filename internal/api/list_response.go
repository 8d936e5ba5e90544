package api

// ListResponse 分頁列表
type ListResponse[T any] struct {
	Items   []T `json:"items"`
	Page    int `json:"page" example:"1"`
	PerPage int `json:"per_page" example:"30"`
}
