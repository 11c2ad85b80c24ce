package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoutes "mosque_backend/internals/features/donations/donations/route"
	draftRoutes "mosque_backend/internals/features/donations/drafts/route"
	reportRoutes "mosque_backend/internals/features/finance/reports/route"
	notificationRoutes "mosque_backend/internals/features/home/notifications/route"
	authRoutes "mosque_backend/internals/features/users/auth/route"
	userRoutes "mosque_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Account surface
	authRoutes.AuthRoutes(app, db)
	userRoutes.UserRoutes(app, db)

	// Public donation surface: ledger reads + the guest-friendly wizard
	donations := app.Group("/api/donations")
	donationRoutes.DonationRoutes(donations, db)
	draftRoutes.DraftRoutes(donations, db)

	// Public reporting
	api := app.Group("/api")
	reportRoutes.ReportRoutes(api, db)

	// Notifications: signed-in feed + admin management
	user := app.Group("/api/u")
	notificationRoutes.NotificationUserRoutes(user, db)

	admin := app.Group("/api/a")
	notificationRoutes.NotificationAdminRoutes(admin, db)
}
