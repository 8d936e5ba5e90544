package api

// PingResponse 健康檢查回應模型
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
