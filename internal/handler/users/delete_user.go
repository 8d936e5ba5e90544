package users

import (
	"fmt"
	"net/http"

	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 管理員刪除其他使用者；不能刪除自己。
// 管理員身分以儲存層為準，token 內的 IsAdmin 只作為 RequireAdmin 的初步檢查。
func DeleteUserHandler(identity *service.Identity) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		caller, err := identity.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if !caller.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		id, err := handler.ParamID(c, "user_id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		if id == claims.UserID {
			return handler.RespondError(c, fmt.Errorf("%w: admins cannot delete themselves", service.ErrInvalidOperation))
		}
		if err := identity.Destroy(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
