package api

import "sample-app/internal/service"

// CreateUserRequest 註冊表單；刻意不含 is_admin
type CreateUserRequest struct {
	Name                 string `json:"name" form:"name" example:"Alice"`
	Email                string `json:"email" form:"email" example:"alice@example.com"`
	Password             string `json:"password" form:"password" example:"foobar"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" example:"foobar"`
}

func (r CreateUserRequest) Input() service.SignupInput {
	return service.SignupInput{
		Name:                 r.Name,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
	}
}
