package feed

import (
	"net/http"

	"sample-app/internal/api"
	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
)

// FeedHandler 目前使用者的動態：自己與追蹤對象的貼文，新的在前
// @Summary     Feed
// @Tags        feed
// @Produce     json
// @Success     200 {object} api.ListResponse[api.MicropostResponse]
// @Router      /feed [get]
func FeedHandler(feed *service.Feed) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		page, n, per, err := handler.ParsePage(c)
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}

		posts, err := feed.Feed(c.Request().Context(), claims.UserID, page)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.ListResponse[api.MicropostResponse]{
			Items:   api.NewMicropostResponses(posts),
			Page:    n,
			PerPage: per,
		})
	}
}
