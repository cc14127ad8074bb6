// file: internals/features/users/user/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/users/user/controller"
	"katalogku_backend/internals/middlewares"
	authMiddleware "katalogku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register) // ➕ Register
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)          // 🔑 Login
	auth.Get("/profile", authMiddleware.AuthMiddleware(), ctrl.GetProfile)   // 🔍 Profile
}
