package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier 由 *service.TokenIssuer 實作
type TokenVerifier interface {
	Verify(token string) (*service.CustomClaims, error)
}

func extractClaims(c echo.Context, tokens TokenVerifier) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token，並將 claims 放進 context
func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上再要求管理員權限
func RequireAdmin(tokens TokenVerifier) echo.MiddlewareFunc {
	auth := RequireAuth(tokens)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			if !claims.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}

// CurrentClaims 取出 RequireAuth 放入的 claims
func CurrentClaims(c echo.Context) (*service.CustomClaims, error) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
	}
	return claims, nil
}
