package relationships

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// FollowHandler 追蹤 :user_id；重複追蹤不會建立第二條關係
// @Summary     Follow user
// @Tags        relationships
// @Produce     json
// @Success     200 {object} api.RelationshipResponse
// @Failure     422 {object} api.HTTPError
// @Router      /relationships/{user_id} [post]
func FollowHandler(graph *service.Graph) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, target, err := parse(c)
		if err != nil {
			return err
		}
		if err := graph.Follow(c.Request().Context(), claims.UserID, target); err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.RelationshipResponse{
			FollowerID:  claims.UserID,
			FollowedID:  target,
			IsFollowing: true,
		})
	}
}

// UnfollowHandler 取消追蹤；原本沒有追蹤也視為成功
func UnfollowHandler(graph *service.Graph) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, target, err := parse(c)
		if err != nil {
			return err
		}
		if err := graph.Unfollow(c.Request().Context(), claims.UserID, target); err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.RelationshipResponse{
			FollowerID:  claims.UserID,
			FollowedID:  target,
			IsFollowing: false,
		})
	}
}

func parse(c echo.Context) (*service.CustomClaims, int, error) {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		return nil, 0, err
	}
	target, err := handler.ParamID(c, "user_id")
	if err != nil {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return claims, target, nil
}
