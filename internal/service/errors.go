package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound 查無目標資源
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation 請求本身不合法（例如追蹤自己、引用不存在的使用者）
	ErrInvalidOperation = errors.New("invalid operation")
)

// FieldError describes one failed rule on one input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) Message() string {
	switch f.Rule {
	case "required", "notblank":
		return f.Field + " can't be blank"
	case "max":
		return fmt.Sprintf("%s is too long (maximum is %s characters)", f.Field, f.Param)
	case "min":
		return fmt.Sprintf("%s is too short (minimum is %s characters)", f.Field, f.Param)
	case "eqfield":
		return f.Field + " doesn't match password"
	case "taken":
		return f.Field + " has already been taken"
	case "exists":
		return f.Field + " does not reference an existing user"
	default:
		return f.Field + " is invalid"
	}
}

// ValidationError is returned for input the caller can correct.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed rule.
func (e *ValidationError) Has(field, rule string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Rule == rule {
			return true
		}
	}
	return false
}

func validationFailed(field, rule string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule}}}
}

func invalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}
