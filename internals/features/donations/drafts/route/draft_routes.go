package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	draftController "mosque_backend/internals/features/donations/drafts/controller"
	authMiddleware "mosque_backend/internals/middlewares/auth"
)

// DraftRoutes mounts the donation wizard under /api/donations/drafts.
// Auth is optional: guests donate anonymously.
func DraftRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := draftController.NewDraftController(db)

	drafts := api.Group("/drafts", authMiddleware.OptionalAuthMiddleware(db))
	drafts.Post("/", ctrl.Start)
	drafts.Get("/:id", ctrl.Get)
	drafts.Put("/:id/amount", ctrl.SetAmount)
	drafts.Put("/:id/message", ctrl.SetMessage)
	drafts.Put("/:id/payment", ctrl.SetPayment)
	drafts.Delete("/:id", ctrl.Abandon)

	drafts.Post("/:id/hold/press", ctrl.Press)
	drafts.Post("/:id/hold/release", ctrl.Release)
	drafts.Get("/:id/hold", ctrl.HoldProgress)
}
