package users

import (
	"context"
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/model"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// FollowingHandler 列出 :user_id 追蹤中的使用者
func FollowingHandler(identity *service.Identity, graph *service.Graph) echo.HandlerFunc {
	return listEdges(identity, graph.FollowedUsers)
}

// FollowersHandler 列出追蹤 :user_id 的使用者
func FollowersHandler(identity *service.Identity, graph *service.Graph) echo.HandlerFunc {
	return listEdges(identity, graph.Followers)
}

func listEdges(identity *service.Identity, ids func(context.Context, int) ([]int, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "user_id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		page, n, per, err := handler.ParsePage(c)
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		if _, err := identity.Get(ctx, id); err != nil {
			return handler.RespondError(c, err)
		}
		all, err := ids(ctx, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		users, err := identity.Lookup(ctx, model.Apply(all, page))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.ListResponse[api.UserResponse]{
			Items:   api.NewUserResponses(users),
			Page:    n,
			PerPage: per,
		})
	}
}
