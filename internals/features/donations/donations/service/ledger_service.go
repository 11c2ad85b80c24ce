package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mosque_backend/internals/features/donations/donations/model"
)

// LedgerService is the only writer of the donations table. Append is
// invoked solely by the hold-to-confirm commit path; reads are public.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

func (s *LedgerService) Append(ctx context.Context, entry *model.Donation) error {
	return s.DB.WithContext(ctx).Create(entry).Error
}

// List returns the ledger most-recent-first.
func (s *LedgerService) List(ctx context.Context, offset, limit int) ([]model.Donation, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.Donation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.Donation
	if err := s.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// MonthEntries fetches the snapshot for the calendar month containing asOf.
func (s *LedgerService) MonthEntries(ctx context.Context, asOf time.Time) ([]model.Donation, error) {
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	end := start.AddDate(0, 1, 0)

	var entries []model.Donation
	if err := s.DB.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// YearEntries fetches the snapshot for a whole calendar year (reports).
func (s *LedgerService) YearEntries(ctx context.Context, year int, loc *time.Location) ([]model.Donation, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)

	var entries []model.Donation
	if err := s.DB.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

/* ==========================
   Snapshot aggregates
========================== */

// MonthlyTotal sums amounts over entries whose date falls in the same
// calendar month and year as asOf.
func MonthlyTotal(entries []model.Donation, asOf time.Time) float64 {
	var total float64
	for _, e := range entries {
		if sameMonth(e.CreatedAt, asOf) {
			total += e.DonationAmount
		}
	}
	return total
}

// MonthlyCount counts entries in the same calendar month and year as asOf.
func MonthlyCount(entries []model.Donation, asOf time.Time) int {
	n := 0
	for _, e := range entries {
		if sameMonth(e.CreatedAt, asOf) {
			n++
		}
	}
	return n
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
