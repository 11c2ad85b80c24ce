package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "mosque_backend/internals/features/users/user/controller"
	authMiddleware "mosque_backend/internals/middlewares/auth"
)

// UserRoutes mounts /api/u/me (auth required)
func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	me := app.Group("/api/u/me", authMiddleware.AuthMiddleware(db))
	me.Get("/", ctrl.Me)
	me.Put("/", ctrl.UpdateMe)
	me.Post("/avatar", ctrl.UploadAvatar)
}
