package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mosque_backend/internals/features/donations/donations/model"
)

func entry(amount float64, at time.Time) model.Donation {
	return model.Donation{DonationAmount: amount, CreatedAt: at}
}

func TestMonthlyAggregates(t *testing.T) {
	march := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	entries := []model.Donation{
		entry(1000, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
		entry(250.50, time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)),
		entry(500, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)),
		entry(75, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)), // same month, other year
	}

	assert.Equal(t, 1250.50, MonthlyTotal(entries, march))
	assert.Equal(t, 2, MonthlyCount(entries, march))
}

func TestMonthlyAggregates_Empty(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, MonthlyTotal(nil, now))
	assert.Equal(t, 0, MonthlyCount(nil, now))
}

func TestMonthlyAggregates_SnapshotIsPure(t *testing.T) {
	asOf := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	entries := []model.Donation{
		entry(10, asOf),
		entry(20, asOf.Add(time.Hour)),
	}

	// same input, same answer; the slice is never mutated
	first := MonthlyTotal(entries, asOf)
	second := MonthlyTotal(entries, asOf)
	assert.Equal(t, first, second)
	assert.Equal(t, 30.0, first)
	assert.Equal(t, 10.0, entries[0].DonationAmount)
}
