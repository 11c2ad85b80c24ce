package controller

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	donationmodel "mosque_backend/internals/features/donations/donations/model"
	"mosque_backend/internals/features/finance/reports/service"
)

type capturingSource struct {
	captured context.Context
}

func (s *capturingSource) YearEntries(ctx context.Context, _ int, _ *time.Location) ([]donationmodel.Donation, error) {
	s.captured = ctx
	return []donationmodel.Donation{
		{DonationType: "zakat", DonationAmount: 1000, CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}, nil
}

func newTestApp(src *capturingSource) *fiber.App {
	app := fiber.New()
	// same request-scoped deadline the composition root installs
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	ctrl := &ReportController{Service: &service.ReportService{Ledger: src}}
	app.Get("/api/reports/monthly", ctrl.GetMonthly)
	app.Get("/api/reports/export/csv", ctrl.ExportCSV)
	app.Get("/api/reports/export/html", ctrl.ExportHTML)
	return app
}

func TestGetMonthly_UsesRequestScopedContext(t *testing.T) {
	src := &capturingSource{}
	app := newTestApp(src)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/monthly?year=2026", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, src.captured)
	_, hasDeadline := src.captured.Deadline()
	assert.True(t, hasDeadline, "ledger reads must run under the request deadline")
}

func TestGetMonthly_InvalidYear(t *testing.T) {
	app := newTestApp(&capturingSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/monthly?year=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExports_AttachmentHeaders(t *testing.T) {
	app := newTestApp(&capturingSource{})

	t.Run("csv", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/export/csv?year=2026", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
		assert.Equal(t, `attachment; filename="donations-2026.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))
	})

	t.Run("html", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/export/html?year=2026", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
		assert.Equal(t, `attachment; filename="statement-2026.html"`, resp.Header.Get(fiber.HeaderContentDisposition))
	})
}
