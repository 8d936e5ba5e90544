package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sample-app/internal/api"
	"sample-app/internal/model"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRespondError(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		c, rec := newCtx("/")
		err := RespondError(c, &service.ValidationError{Fields: []service.FieldError{{Field: "email", Rule: "taken"}}})
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body api.HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		require.Equal(t, "email has already been taken", body.Errors[0].Message)
	})

	t.Run("invalid operation", func(t *testing.T) {
		c, rec := newCtx("/")
		require.NoError(t, RespondError(c, fmt.Errorf("%w: nope", service.ErrInvalidOperation)))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), "nope")
	})

	t.Run("not found", func(t *testing.T) {
		c, rec := newCtx("/")
		require.NoError(t, RespondError(c, service.ErrNotFound))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		c, _ := newCtx("/")
		err := RespondError(c, errors.New("db down"))
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		require.Equal(t, http.StatusInternalServerError, he.Code)
		require.EqualError(t, he.Internal, "db down")
	})
}

func TestParsePage(t *testing.T) {
	c, _ := newCtx("/")
	p, page, per, err := ParsePage(c)
	require.NoError(t, err)
	require.Equal(t, model.Page{Limit: 30}, p)
	require.Equal(t, 1, page)
	require.Equal(t, 30, per)

	c, _ = newCtx("/?page=3&per_page=10")
	p, _, _, err = ParsePage(c)
	require.NoError(t, err)
	require.Equal(t, model.Page{Limit: 10, Offset: 20}, p)

	c, _ = newCtx("/?per_page=1000")
	p, _, per, err = ParsePage(c)
	require.NoError(t, err)
	require.Equal(t, MaxPerPage, per)
	require.Equal(t, MaxPerPage, p.Limit)

	for _, q := range []string{"/?page=0", "/?page=x", "/?per_page=-1"} {
		c, _ = newCtx(q)
		_, _, _, err = ParsePage(c)
		require.Error(t, err, q)
	}
}

func TestParamID(t *testing.T) {
	c, _ := newCtx("/")
	c.SetParamNames("user_id")
	c.SetParamValues("12")
	id, err := ParamID(c, "user_id")
	require.NoError(t, err)
	require.Equal(t, 12, id)

	c.SetParamValues("abc")
	_, err = ParamID(c, "user_id")
	require.Error(t, err)

	c.SetParamValues("0")
	_, err = ParamID(c, "user_id")
	require.Error(t, err)
}
