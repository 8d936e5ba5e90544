package handler

import (
	"context"
	"net/http"

	"sample-app/internal/api"

	"github.com/labstack/echo/v4"
)

// Pinger 由 store.Postgres 與 memory.Store 實作
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler 健康檢查，並確認儲存層可用
func PingHandler(store Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: "store unhealthy"})
		}
		return c.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
