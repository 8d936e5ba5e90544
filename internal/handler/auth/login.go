package auth

import (
	"fmt"
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Tags        auth
// @Accept      json
// @Produce     json
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Router      /auth/login [post]
func LoginHandler(identity *service.Identity, tokens *service.TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, fmt.Sprintf("無效的表單資料: %v", err))
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		user, err := identity.Authenticate(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "invalid email/password combination"})
		}

		token, expires, err := tokens.Issue(*user)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token").SetInternal(err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expires,
			User:        api.NewUserResponse(*user),
		})
	}
}
