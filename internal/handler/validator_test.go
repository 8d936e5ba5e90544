package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	cv := NewValidator()
	type s struct {
		Name  string `validate:"notblank"`
		Email string `validate:"omitempty,user_email"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{Name: "  "}))
	require.Error(t, cv.Validate(&s{Name: "ok", Email: "user@foo,com"}))
}
