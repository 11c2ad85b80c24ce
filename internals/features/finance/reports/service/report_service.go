package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"gorm.io/gorm"

	"mosque_backend/internals/constants"
	donationmodel "mosque_backend/internals/features/donations/donations/model"
	donationservice "mosque_backend/internals/features/donations/donations/service"
	"mosque_backend/internals/features/finance/reports/dto"
)

var ErrExport = errors.New("report export failed")

// YearSource abstracts the ledger read used by reports. The ledger
// service satisfies it; tests use an in-memory slice.
type YearSource interface {
	YearEntries(ctx context.Context, year int, loc *time.Location) ([]donationmodel.Donation, error)
}

type ReportService struct {
	Ledger YearSource
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{Ledger: donationservice.NewLedgerService(db)}
}

// YearReport builds the per-month, per-type breakdown for a calendar year.
func (s *ReportService) YearReport(ctx context.Context, year int) (*dto.YearReportResponse, error) {
	entries, err := s.Ledger.YearEntries(ctx, year, time.UTC)
	if err != nil {
		return nil, err
	}
	report := BuildYearReport(entries, year)
	return &report, nil
}

// BuildYearReport is the pure aggregation: entries in, report out. Months
// with no donations are still listed with zero totals.
func BuildYearReport(entries []donationmodel.Donation, year int) dto.YearReportResponse {
	report := dto.YearReportResponse{Year: year}

	for m := time.January; m <= time.December; m++ {
		month := dto.MonthReport{Month: m.String()}
		byType := map[string]*dto.TypeBreakdown{}

		for _, e := range entries {
			if e.CreatedAt.Year() != year || e.CreatedAt.Month() != m {
				continue
			}
			month.Total += e.DonationAmount
			month.Count++
			bd, ok := byType[e.DonationType]
			if !ok {
				bd = &dto.TypeBreakdown{DonationType: e.DonationType}
				byType[e.DonationType] = bd
			}
			bd.Total += e.DonationAmount
			bd.Count++
		}

		// Stable order: the enum order, not map order.
		for _, t := range constants.DonationTypes {
			if bd, ok := byType[t]; ok {
				month.Breakdown = append(month.Breakdown, *bd)
			}
		}

		report.Total += month.Total
		report.Count += month.Count
		report.Months = append(report.Months, month)
	}

	return report
}

/* ==========================
   Exports
========================== */

// WriteCSV streams the year report as delimited text.
func (s *ReportService) WriteCSV(ctx context.Context, year int, w io.Writer) error {
	report, err := s.YearReport(ctx, year)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"month", "donation_type", "total", "count"}); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	for _, m := range report.Months {
		for _, bd := range m.Breakdown {
			row := []string{
				m.Month,
				bd.DonationType,
				fmt.Sprintf("%.2f", bd.Total),
				fmt.Sprintf("%d", bd.Count),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("%w: %v", ErrExport, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

var statementTmpl = template.Must(template.New("statement").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Donation Statement {{.Year}}</title></head>
<body>
<h1>Donation Statement {{.Year}}</h1>
<p>Total: {{printf "%.2f" .Total}} across {{.Count}} donations</p>
{{range .Months}}{{if .Count}}
<h2>{{.Month}}</h2>
<table border="1" cellpadding="4">
<tr><th>Type</th><th>Total</th><th>Count</th></tr>
{{range .Breakdown}}<tr><td>{{.DonationType}}</td><td>{{printf "%.2f" .Total}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}{{end}}
</body>
</html>
`))

// WriteHTML renders the year report as a printable statement.
func (s *ReportService) WriteHTML(ctx context.Context, year int, w io.Writer) error {
	report, err := s.YearReport(ctx, year)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := statementTmpl.Execute(w, report); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
