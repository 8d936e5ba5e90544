package handler

import (
	"fmt"
	"strconv"

	"sample-app/internal/model"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPerPage = 30
	MaxPerPage     = 100
)

// ParsePage 讀取 page（從 1 開始）與 per_page，per_page 超過上限時截斷
func ParsePage(c echo.Context) (model.Page, int, int, error) {
	page, err := positiveQuery(c, "page", 1)
	if err != nil {
		return model.Page{}, 0, 0, err
	}
	perPage, err := positiveQuery(c, "per_page", DefaultPerPage)
	if err != nil {
		return model.Page{}, 0, 0, err
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return model.Page{Limit: perPage, Offset: (page - 1) * perPage}, page, perPage, nil
}

func positiveQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return n, nil
}

// ParamID 讀取路徑上的數字 id
func ParamID(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}
