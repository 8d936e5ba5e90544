// Package handlertest wires the core over the in-memory store for handler
// tests.
package handlertest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sample-app/internal/handler"
	"sample-app/internal/middleware"
	"sample-app/internal/model"
	"sample-app/internal/service"
	"sample-app/internal/store/memory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

type Env struct {
	Echo     *echo.Echo
	Store    *memory.Store
	Services *service.Services
	Tokens   *service.TokenIssuer

	seq int
}

func New(t *testing.T) *Env {
	t.Helper()
	repo := memory.New()
	tokens, err := service.NewTokenIssuer("handler-test-secret", time.Hour)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = handler.NewValidator()
	return &Env{
		Echo:     e,
		Store:    repo,
		Services: service.New(repo, service.BcryptVerifier{Cost: bcrypt.MinCost}, zaptest.NewLogger(t)),
		Tokens:   tokens,
	}
}

// User 建立一般使用者，密碼固定為 foobar
func (env *Env) User(t *testing.T) *model.User {
	t.Helper()
	return env.create(t, false)
}

func (env *Env) Admin(t *testing.T) *model.User {
	t.Helper()
	return env.create(t, true)
}

func (env *Env) create(t *testing.T, admin bool) *model.User {
	t.Helper()
	env.seq++
	in := service.SignupInput{
		Name:                 fmt.Sprintf("User %d", env.seq),
		Email:                fmt.Sprintf("user-%d@example.com", env.seq),
		Password:             "foobar",
		PasswordConfirmation: "foobar",
	}
	create := env.Services.Identity.Create
	if admin {
		create = env.Services.Identity.CreateAdmin
	}
	u, err := create(t.Context(), in)
	require.NoError(t, err)
	return u
}

// Context 建立 JSON 請求的 echo.Context
func (env *Env) Context(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.Echo.NewContext(req, rec), rec
}

// As 模擬 RequireAuth：簽發並驗證 token，再把 claims 放入 context
func (env *Env) As(t *testing.T, c echo.Context, u *model.User) echo.Context {
	t.Helper()
	tok, _, err := env.Tokens.Issue(*u)
	require.NoError(t, err)
	claims, err := env.Tokens.Verify(tok)
	require.NoError(t, err)
	c.Set(middleware.ContextUserKey, claims)
	return c
}

// Params 設定路徑參數
func Params(c echo.Context, kv ...string) echo.Context {
	var names, values []string
	for i := 0; i+1 < len(kv); i += 2 {
		names = append(names, kv[i])
		values = append(values, kv[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func Decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// RequireStatus 檢查 handler 直接回傳的 *echo.HTTPError
func RequireStatus(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
