package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "mosque_backend/internals/features/users/auth/controller"
	"mosque_backend/internals/middlewares"
	authMiddleware "mosque_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
}
