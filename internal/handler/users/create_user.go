package users

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler 註冊新使用者（Email 會自動轉小寫，永遠不是管理員）
// @Summary     Sign up
// @Tags        users
// @Accept      json
// @Produce     json
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.HTTPError
// @Router      /users [post]
func CreateUserHandler(identity *service.Identity) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}

		created, err := identity.Create(c.Request().Context(), req.Input())
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(*created))
	}
}
