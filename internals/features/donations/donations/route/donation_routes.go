package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "mosque_backend/internals/features/donations/donations/controller"
)

// DonationRoutes mounts the public, read-only ledger under /api/donations.
func DonationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	api.Get("/", ctrl.GetAllDonations)
	api.Get("/summary", ctrl.GetMonthlySummary)
}
