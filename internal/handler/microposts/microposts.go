package microposts

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// CreateMicropostHandler 以目前使用者身分發文
// @Summary     Create micropost
// @Tags        microposts
// @Accept      json
// @Produce     json
// @Success     201 {object} api.MicropostResponse
// @Failure     400 {object} api.HTTPError
// @Router      /microposts [post]
func CreateMicropostHandler(posts *service.Microposts) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		var req api.CreateMicropostRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}

		m, err := posts.Create(c.Request().Context(), claims.UserID, req.Input())
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewMicropostResponse(*m))
	}
}

// DeleteMicropostHandler 只能刪除自己的貼文，其他人的貼文視為不存在
func DeleteMicropostHandler(posts *service.Microposts) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		id, err := handler.ParamID(c, "micropost_id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		if err := posts.Destroy(c.Request().Context(), claims.UserID, id); err != nil {
			return handler.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ListUserMicropostsHandler 列出 :user_id 的貼文，新的在前
func ListUserMicropostsHandler(identity *service.Identity, posts *service.Microposts) echo.HandlerFunc {
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
		list, err := posts.ListForUser(ctx, id, page)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.ListResponse[api.MicropostResponse]{
			Items:   api.NewMicropostResponses(list),
			Page:    n,
			PerPage: per,
		})
	}
}
