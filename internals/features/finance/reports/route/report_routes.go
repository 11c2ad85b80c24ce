package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mosque_backend/internals/features/finance/reports/controller"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/monthly", ctrl.GetMonthly)
	reports.Get("/export/csv", ctrl.ExportCSV)
	reports.Get("/export/html", ctrl.ExportHTML)
}
