package users

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資訊
func GetMeHandler(identity *service.Identity) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		user, err := identity.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// DeleteMeHandler 刪除當前使用者帳號，連同其貼文與追蹤關係
func DeleteMeHandler(identity *service.Identity) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		if err := identity.Destroy(c.Request().Context(), claims.UserID); err != nil {
			return handler.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
