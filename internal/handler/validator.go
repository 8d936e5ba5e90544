package handler

import (
	"sample-app/internal/service"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator 使用與核心相同的規則（notblank、user_email、json 欄位名）
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: service.NewValidator()}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
