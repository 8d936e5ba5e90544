package router

import (
	"github.com/labstack/echo/v4"

	"sample-app/internal/handler"
	"sample-app/internal/handler/auth"
	"sample-app/internal/handler/feed"
	"sample-app/internal/handler/microposts"
	"sample-app/internal/handler/relationships"
	"sample-app/internal/handler/users"
	"sample-app/internal/middleware"
	"sample-app/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, store handler.Pinger, svc *service.Services, tokens *service.TokenIssuer) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(tokens)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(store))

	// 註冊與登入
	api.POST("/users", users.CreateUserHandler(svc.Identity))
	api.POST("/auth/login", auth.LoginHandler(svc.Identity, tokens))

	// 當前使用者
	me := api.Group("/users/me", requireAuth)
	me.GET("", users.GetMeHandler(svc.Identity))
	me.DELETE("", users.DeleteMeHandler(svc.Identity))

	// 使用者、個人頁與追蹤列表；/users 同時有公開的註冊路由，所以不用 Group 中介層
	api.GET("/users", users.ListUsersHandler(svc.Identity), requireAuth)
	api.GET("/users/:user_id", users.GetUserHandler(svc.Identity, svc.Graph), requireAuth)
	api.GET("/users/:user_id/following", users.FollowingHandler(svc.Identity, svc.Graph), requireAuth)
	api.GET("/users/:user_id/followers", users.FollowersHandler(svc.Identity, svc.Graph), requireAuth)
	api.GET("/users/:user_id/microposts", microposts.ListUserMicropostsHandler(svc.Identity, svc.Microposts), requireAuth)

	// 管理員專屬
	api.DELETE("/users/:user_id", users.DeleteUserHandler(svc.Identity), requireAdmin)

	apiMicroposts := api.Group("/microposts", requireAuth)
	apiMicroposts.POST("", microposts.CreateMicropostHandler(svc.Microposts))
	apiMicroposts.DELETE("/:micropost_id", microposts.DeleteMicropostHandler(svc.Microposts))

	apiRelationships := api.Group("/relationships", requireAuth)
	apiRelationships.POST("/:user_id", relationships.FollowHandler(svc.Graph))
	apiRelationships.DELETE("/:user_id", relationships.UnfollowHandler(svc.Graph))

	api.GET("/feed", feed.FeedHandler(svc.Feed), requireAuth)
}
