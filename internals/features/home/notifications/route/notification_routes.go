package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mosque_backend/internals/features/home/notifications/controller"
	"mosque_backend/internals/middlewares/auth"
)

// NotificationUserRoutes mounts the read-only feed for signed-in users.
func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	user := api.Group("/notifications", auth.AuthMiddleware(db))
	user.Get("/", ctrl.GetAll)
}

// NotificationAdminRoutes mounts create/delete for admins.
func NotificationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	admin := api.Group("/notifications", auth.AuthMiddleware(db), auth.AdminOnly())
	admin.Post("/", ctrl.Create)
	admin.Delete("/:id", ctrl.Delete)
}
