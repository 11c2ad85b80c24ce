package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mosque_backend/internals/features/donations/donations/dto"
	donationService "mosque_backend/internals/features/donations/donations/service"
	helper "mosque_backend/internals/helpers"
)

type DonationController struct {
	Ledger *donationService.LedgerService
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{Ledger: donationService.NewLedgerService(db)}
}

// 🟢 GET /api/donations (+ pagination, newest first)
func (ctrl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	entries, total, err := ctrl.Ledger.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		log.Printf("[ERROR] list donations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return helper.JsonList(c, "", dto.ToDonationResponseList(entries),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/donations/summary?date=2026-03-01
// Defaults to the current month.
func (ctrl *DonationController) GetMonthlySummary(c *fiber.Ctx) error {
	asOf := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		asOf = parsed
	}

	entries, err := ctrl.Ledger.MonthEntries(c.UserContext(), asOf)
	if err != nil {
		log.Printf("[ERROR] monthly summary: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build summary")
	}

	return helper.JsonOK(c, "", dto.MonthlySummaryResponse{
		Month: asOf.Month().String(),
		Year:  asOf.Year(),
		Total: donationService.MonthlyTotal(entries, asOf),
		Count: donationService.MonthlyCount(entries, asOf),
	})
}
