package users

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// GetUserHandler 個人頁：使用者資料、統計，以及目前使用者是否已追蹤
func GetUserHandler(identity *service.Identity, graph *service.Graph) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		id, err := handler.ParamID(c, "user_id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		user, err := identity.Get(ctx, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		stats, err := graph.Stats(ctx, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		following, err := graph.IsFollowing(ctx, claims.UserID, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.UserProfileResponse{
			UserResponse: api.NewUserResponse(*user),
			Stats:        stats,
			IsFollowing:  following,
		})
	}
}
