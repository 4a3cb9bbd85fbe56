package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	invoices  []repository.InvoiceRow
	due       []repository.DueInvoiceRow
	lineItems []repository.LineItemRow
	documents int64
	err       error
}

func (f *fakeAnalyticsRepo) ListInvoiceRows(ctx context.Context) ([]repository.InvoiceRow, error) {
	return f.invoices, f.err
}

func (f *fakeAnalyticsRepo) ListDueInvoiceRows(ctx context.Context, from, to *time.Time) ([]repository.DueInvoiceRow, error) {
	return f.due, f.err
}

func (f *fakeAnalyticsRepo) ListLineItemRows(ctx context.Context) ([]repository.LineItemRow, error) {
	return f.lineItems, f.err
}

func (f *fakeAnalyticsRepo) CountDocuments(ctx context.Context) (int64, error) {
	return f.documents, f.err
}

func invoiceRow(vendorID uuid.UUID, vendorName string, date time.Time, amount string) repository.InvoiceRow {
	return repository.InvoiceRow{
		ID:          uuid.New(),
		VendorID:    vendorID,
		VendorName:  vendorName,
		Date:        date,
		TotalAmount: decimal.RequireFromString(amount),
	}
}

func TestGetStats(t *testing.T) {
	vendorID := uuid.New()
	repo := &fakeAnalyticsRepo{
		invoices: []repository.InvoiceRow{
			invoiceRow(vendorID, "Acme", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "100"),
			invoiceRow(vendorID, "Acme", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "50"),
		},
		documents: 3,
	}
	svc := NewDashboardService(repo, time.Second)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.TotalSpend.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, int64(2), stats.TotalInvoices)
	assert.Equal(t, int64(3), stats.DocumentsUploaded)
	assert.True(t, stats.AvgInvoiceValue.Equal(decimal.RequireFromString("75")))
}

func TestGetStatsEmpty(t *testing.T) {
	svc := NewDashboardService(&fakeAnalyticsRepo{}, time.Second)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.TotalSpend.IsZero())
	assert.Equal(t, int64(0), stats.TotalInvoices)
	assert.True(t, stats.AvgInvoiceValue.IsZero())
}

func TestGetStatsRepoError(t *testing.T) {
	svc := NewDashboardService(&fakeAnalyticsRepo{err: errors.New("connection reset")}, time.Second)

	_, err := svc.GetStats(context.Background())
	assert.Error(t, err)
}

func TestComputeTrend(t *testing.T) {
	vendorID := uuid.New()
	rows := []repository.InvoiceRow{
		invoiceRow(vendorID, "Acme", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "30"),
		invoiceRow(vendorID, "Acme", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "100"),
		invoiceRow(vendorID, "Acme", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), "50"),
	}

	trend := computeTrend(rows)

	require.Len(t, trend, 2)
	assert.Equal(t, "2024-03", trend[0].Month)
	assert.Equal(t, 2, trend[0].InvoiceCount)
	assert.True(t, trend[0].Spend.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, "2024-04", trend[1].Month)
	assert.Equal(t, 1, trend[1].InvoiceCount)
	assert.True(t, trend[1].Spend.Equal(decimal.RequireFromString("30")))
}

func TestComputeTrendSpendConservation(t *testing.T) {
	vendorID := uuid.New()
	rows := []repository.InvoiceRow{
		invoiceRow(vendorID, "Acme", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "12.34"),
		invoiceRow(vendorID, "Acme", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "56.78"),
		invoiceRow(vendorID, "Acme", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), "0.88"),
	}

	var total decimal.Decimal
	for _, p := range computeTrend(rows) {
		total = total.Add(p.Spend)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("70.00")))
}

func TestComputeTrendEmpty(t *testing.T) {
	assert.Empty(t, computeTrend(nil))
}

func TestComputeTopVendors(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rows := []repository.InvoiceRow{
		invoiceRow(a, "Alpha", time.Now(), "40"),
		invoiceRow(b, "Beta", time.Now(), "100"),
		invoiceRow(a, "Alpha", time.Now(), "20"),
	}

	vendors := computeTopVendors(rows)

	require.Len(t, vendors, 2)
	assert.Equal(t, "Beta", vendors[0].Name)
	assert.True(t, vendors[0].Spend.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "Alpha", vendors[1].Name)
	assert.True(t, vendors[1].Spend.Equal(decimal.RequireFromString("60")))
}

func TestComputeTopVendorsTieBreaksByName(t *testing.T) {
	rows := []repository.InvoiceRow{
		invoiceRow(uuid.New(), "Zeta", time.Now(), "50"),
		invoiceRow(uuid.New(), "Alpha", time.Now(), "50"),
	}

	vendors := computeTopVendors(rows)

	require.Len(t, vendors, 2)
	assert.Equal(t, "Alpha", vendors[0].Name)
	assert.Equal(t, "Zeta", vendors[1].Name)
}

func TestComputeTopVendorsCapped(t *testing.T) {
	var rows []repository.InvoiceRow
	for i := 0; i < 14; i++ {
		rows = append(rows, invoiceRow(uuid.New(), "Vendor", time.Now(), "10"))
	}

	vendors := computeTopVendors(rows)

	assert.Len(t, vendors, TopVendorLimit)
}

func TestComputeCategorySpend(t *testing.T) {
	software := "Software"
	travel := "Travel"
	empty := ""
	items := []repository.LineItemRow{
		{Category: &software, Total: decimal.RequireFromString("200")},
		{Category: &travel, Total: decimal.RequireFromString("80")},
		{Category: nil, Total: decimal.RequireFromString("15")},
		{Category: &empty, Total: decimal.RequireFromString("5")},
		{Category: &software, Total: decimal.RequireFromString("100")},
	}

	categories := computeCategorySpend(items)

	require.Len(t, categories, 3)
	assert.Equal(t, "Software", categories[0].Category)
	assert.True(t, categories[0].Spend.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, "Travel", categories[1].Category)
	assert.Equal(t, UncategorizedLabel, categories[2].Category)
	assert.True(t, categories[2].Spend.Equal(decimal.RequireFromString("20")))
}

func TestGetOverview(t *testing.T) {
	vendorID := uuid.New()
	repo := &fakeAnalyticsRepo{
		invoices: []repository.InvoiceRow{
			invoiceRow(vendorID, "Acme", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "100"),
		},
		due: []repository.DueInvoiceRow{
			{DueDate: time.Now().Add(48 * time.Hour), TotalAmount: decimal.RequireFromString("100")},
		},
		lineItems: []repository.LineItemRow{
			{Category: nil, Total: decimal.RequireFromString("100")},
		},
		documents: 1,
	}
	svc := NewDashboardService(repo, time.Second)

	ov, err := svc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), ov.Stats.TotalInvoices)
	assert.Len(t, ov.Trend, 1)
	assert.Len(t, ov.TopVendors, 1)
	assert.Len(t, ov.CategorySpend, 1)
	assert.Len(t, ov.CashOutflow, 4)
}

func TestGetOverviewPropagatesError(t *testing.T) {
	svc := NewDashboardService(&fakeAnalyticsRepo{err: errors.New("boom")}, time.Second)

	_, err := svc.GetOverview(context.Background())
	assert.Error(t, err)
}
