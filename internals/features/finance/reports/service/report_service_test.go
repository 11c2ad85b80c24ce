package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	donationmodel "mosque_backend/internals/features/donations/donations/model"
)

type memYearSource struct {
	entries []donationmodel.Donation
}

func (s *memYearSource) YearEntries(_ context.Context, year int, _ *time.Location) ([]donationmodel.Donation, error) {
	var out []donationmodel.Donation
	for _, e := range s.entries {
		if e.CreatedAt.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func at(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 12, 0, 0, 0, time.UTC)
}

func sampleEntries() []donationmodel.Donation {
	return []donationmodel.Donation{
		{DonationType: "zakat", DonationAmount: 1000, CreatedAt: at(time.March, 1)},
		{DonationType: "zakat", DonationAmount: 500, CreatedAt: at(time.March, 20)},
		{DonationType: "sadaqah", DonationAmount: 250, CreatedAt: at(time.March, 25)},
		{DonationType: "construction", DonationAmount: 5000, CreatedAt: at(time.July, 4)},
	}
}

func TestBuildYearReport(t *testing.T) {
	report := BuildYearReport(sampleEntries(), 2026)

	assert.Equal(t, 2026, report.Year)
	assert.Equal(t, 6750.0, report.Total)
	assert.Equal(t, 4, report.Count)
	require.Len(t, report.Months, 12, "empty months are still listed")

	march := report.Months[2]
	assert.Equal(t, "March", march.Month)
	assert.Equal(t, 1750.0, march.Total)
	assert.Equal(t, 3, march.Count)
	require.Len(t, march.Breakdown, 2)
	assert.Equal(t, "zakat", march.Breakdown[0].DonationType)
	assert.Equal(t, 1500.0, march.Breakdown[0].Total)
	assert.Equal(t, 2, march.Breakdown[0].Count)
	assert.Equal(t, "sadaqah", march.Breakdown[1].DonationType)

	january := report.Months[0]
	assert.Equal(t, 0.0, january.Total)
	assert.Empty(t, january.Breakdown)
}

func TestBuildYearReport_Empty(t *testing.T) {
	report := BuildYearReport(nil, 2026)
	assert.Equal(t, 0.0, report.Total)
	assert.Equal(t, 0, report.Count)
	assert.Len(t, report.Months, 12)
}

func TestWriteCSV(t *testing.T) {
	svc := &ReportService{Ledger: &memYearSource{entries: sampleEntries()}}

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), 2026, &buf))

	out := buf.String()
	assert.Contains(t, out, "month,donation_type,total,count")
	assert.Contains(t, out, "March,zakat,1500.00,2")
	assert.Contains(t, out, "March,sadaqah,250.00,1")
	assert.Contains(t, out, "July,construction,5000.00,1")
	assert.NotContains(t, out, "January", "months without donations are skipped in the export")
}

func TestWriteHTML(t *testing.T) {
	svc := &ReportService{Ledger: &memYearSource{entries: sampleEntries()}}

	var buf bytes.Buffer
	require.NoError(t, svc.WriteHTML(context.Background(), 2026, &buf))

	out := buf.String()
	assert.Contains(t, out, "Donation Statement 2026")
	assert.Contains(t, out, "6750.00")
	assert.Contains(t, out, "<h2>March</h2>")
	assert.Contains(t, out, "zakat")
	assert.NotContains(t, out, "<h2>January</h2>")
}
