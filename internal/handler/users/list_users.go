package users

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 依 id 排序列出使用者
func ListUsersHandler(identity *service.Identity) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, n, per, err := handler.ParsePage(c)
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		list, err := identity.List(c.Request().Context(), page)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.ListResponse[api.UserResponse]{
			Items:   api.NewUserResponses(list),
			Page:    n,
			PerPage: per,
		})
	}
}
