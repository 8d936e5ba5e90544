package api

import "time"

type LoginResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
