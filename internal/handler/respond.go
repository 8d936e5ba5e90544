package handler

import (
	"errors"
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// RespondError 將核心錯誤轉為 HTTP 回應：
// 驗證失敗 400、不合法操作 422、找不到 404，其餘交給 echo 的 error handler 回 500。
func RespondError(c echo.Context, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		body := api.HTTPError{Message: "validation failed"}
		for _, f := range ve.Fields {
			body.Errors = append(body.Errors, api.FieldError{
				Field:   f.Field,
				Rule:    f.Rule,
				Message: f.Message(),
			})
		}
		return c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, service.ErrInvalidOperation):
		return c.JSON(http.StatusUnprocessableEntity, api.HTTPError{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.HTTPError{Message: "not found"})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
}

// BadRequest 400 with a plain message.
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, api.HTTPError{Message: msg})
}
