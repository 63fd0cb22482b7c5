// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"iapedia/internal/cache"
	"iapedia/internal/database"
	"iapedia/internal/handler"
	"iapedia/internal/handler/auth"
	"iapedia/internal/handler/categories"
	"iapedia/internal/handler/labels"
	"iapedia/internal/handler/reviews"
	"iapedia/internal/handler/tools"
	"iapedia/internal/handler/users"
	"iapedia/internal/mailer"
	"iapedia/internal/middleware"
	"iapedia/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, m mailer.Mailer, pool worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 帳號與個人資料
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))
	api.GET("/auth/me", auth.GetMeHandler(db), middleware.RequireAuth)
	api.PUT("/auth/me", auth.UpdateMeHandler(db), middleware.RequireAuth)
	api.POST("/auth/forgot-password", auth.ForgotPasswordHandler(db, cch, m))
	api.POST("/auth/reset-password", auth.ResetPasswordHandler(db))

	// 工具目錄（讀取免登入）
	api.GET("/tools", tools.ListToolsHandler(db))
	api.GET("/tools/search/query", tools.SearchToolsHandler(db))
	api.GET("/tools/:id", tools.GetToolHandler(db))
	api.GET("/tools/:id/reviews", reviews.ListToolReviewsHandler(db))
	api.POST("/tools/:id/view", tools.RecordViewHandler(db, pool))
	api.POST("/tools/:id/favorite", tools.AddFavoriteHandler(db), middleware.RequireAuth)
	api.DELETE("/tools/:id/favorite", tools.RemoveFavoriteHandler(db), middleware.RequireAuth)

	// 工具管理（管理員）
	api.POST("/tools", tools.CreateToolHandler(db), middleware.RequireAdmin)
	api.PUT("/tools/:id", tools.UpdateToolHandler(db), middleware.RequireAdmin)
	api.DELETE("/tools/:id", tools.DeleteToolHandler(db), middleware.RequireAdmin)

	// 評論
	api.POST("/reviews", reviews.CreateReviewHandler(db), middleware.RequireAuth)
	api.PUT("/reviews/:id", reviews.UpdateReviewHandler(db), middleware.RequireAuth)
	api.DELETE("/reviews/:id", reviews.DeleteReviewHandler(db), middleware.RequireAuth)

	// 分類
	api.GET("/categories", categories.ListCategoriesHandler(db))
	api.GET("/categories/:id", categories.GetCategoryHandler(db))
	api.POST("/categories", categories.CreateCategoryHandler(db), middleware.RequireAdmin)
	api.PUT("/categories/:id", categories.UpdateCategoryHandler(db), middleware.RequireAdmin)
	api.DELETE("/categories/:id", categories.DeleteCategoryHandler(db), middleware.RequireAdmin)

	// 標籤
	api.GET("/labels", labels.ListLabelsHandler(db))
	api.POST("/labels", labels.CreateLabelHandler(db), middleware.RequireAdmin)
	api.PUT("/labels/:id", labels.UpdateLabelHandler(db), middleware.RequireAdmin)
	api.DELETE("/labels/:id", labels.DeleteLabelHandler(db), middleware.RequireAdmin)

	// 使用者
	api.GET("/users", users.ListUsersHandler(db), middleware.RequireAdmin)
	api.GET("/users/me/favorites", users.ListMyFavoritesHandler(db), middleware.RequireAuth)
	api.GET("/users/:id", users.GetUserHandler(db))
}
