package api

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"foobar"`
}
