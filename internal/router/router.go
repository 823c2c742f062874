package router

import (
	"github.com/labstack/echo/v4"

	"user-system/internal/database"
	"user-system/internal/handler"
	"user-system/internal/handler/auth"
	"user-system/internal/handler/users"
	"user-system/internal/middleware"
	"user-system/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, acct *service.Account, adminUser, adminPassword string) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 登入與密碼重設
	api.POST("/auth/login", auth.LoginHandler(acct))
	api.POST("/auth/password-reset", auth.RequestPasswordResetHandler(acct))
	api.POST("/auth/password-reset/confirm", auth.ResetPasswordHandler(acct))

	// 註冊與清單開放匿名存取
	apiUsers := api.Group("/users")
	apiUsers.POST("/register", users.RegisterHandler(acct))
	apiUsers.GET("/all", users.ListUsersHandler(acct))

	// 管理端點需通過 Basic 驗證
	requireAdmin := middleware.RequireAdmin(adminUser, adminPassword)
	apiUsers.GET("/:email", users.GetUserByEmailHandler(acct), requireAdmin)
	apiUsers.POST("/block", users.BlockUsersHandler(acct), requireAdmin)
	apiUsers.POST("/unblock", users.UnblockUsersHandler(acct), requireAdmin)
	apiUsers.POST("/delete", users.DeleteUsersHandler(acct), requireAdmin)
}
