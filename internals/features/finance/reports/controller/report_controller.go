package controller

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "mosque_backend/internals/helpers"

	"mosque_backend/internals/features/finance/reports/service"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Service: service.NewReportService(db)}
}

func (ctrl *ReportController) year(c *fiber.Ctx) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

// 🟢 GET /api/reports/monthly?year=2026
func (ctrl *ReportController) GetMonthly(c *fiber.Ctx) error {
	year, err := ctrl.year(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	report, err := ctrl.Service.YearReport(c.UserContext(), year)
	if err != nil {
		log.Println("[ERROR] building year report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	return helper.JsonOK(c, "Monthly report fetched", report)
}

// 🟢 GET /api/reports/export/csv?year=2026
func (ctrl *ReportController) ExportCSV(c *fiber.Ctx) error {
	year, err := ctrl.year(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	var buf bytes.Buffer
	if err := ctrl.Service.WriteCSV(c.UserContext(), year, &buf); err != nil {
		log.Println("[ERROR] csv export:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Export failed")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="donations-%d.csv"`, year))
	return c.Send(buf.Bytes())
}

// 🟢 GET /api/reports/export/html?year=2026
func (ctrl *ReportController) ExportHTML(c *fiber.Ctx) error {
	year, err := ctrl.year(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	var buf bytes.Buffer
	if err := ctrl.Service.WriteHTML(c.UserContext(), year, &buf); err != nil {
		log.Println("[ERROR] html export:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Export failed")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="statement-%d.html"`, year))
	return c.Send(buf.Bytes())
}
