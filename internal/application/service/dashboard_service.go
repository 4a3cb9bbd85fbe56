package service

import (
	"context"
	"sort"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TopVendorLimit caps the vendor ranking.
const TopVendorLimit = 10

// UncategorizedLabel is the bucket for line items with no category.
const UncategorizedLabel = "Uncategorized"

// DashboardService computes the aggregate views the dashboard consumes.
// Every metric is a pure computation over freshly read rows; each one
// returns its identity value for empty input.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	queryTimeout  time.Duration
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service. queryTimeout bounds
// every storage read; expiry surfaces as a StorageError.
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, queryTimeout time.Duration) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		queryTimeout:  queryTimeout,
		now:           time.Now,
	}
}

// Stats holds the summary KPI figures.
type Stats struct {
	TotalSpend        decimal.Decimal
	TotalInvoices     int64
	DocumentsUploaded int64
	AvgInvoiceValue   decimal.Decimal
}

// TrendPoint is one calendar month of invoice volume and spend. The series
// is sparse: months with no invoices are omitted.
type TrendPoint struct {
	Month        string
	InvoiceCount int
	Spend        decimal.Decimal
}

// VendorSpend is one entry of the vendor spend ranking.
type VendorSpend struct {
	ID    uuid.UUID
	Name  string
	Spend decimal.Decimal
}

// CategorySpend is one entry of the per-category spend breakdown.
type CategorySpend struct {
	Category string
	Spend    decimal.Decimal
}

// Overview bundles all metric views for the combined dashboard load.
type Overview struct {
	Stats         Stats
	Trend         []TrendPoint
	TopVendors    []VendorSpend
	CategorySpend []CategorySpend
	CashOutflow   []OutflowBucket
}

func (s *DashboardService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// GetStats returns the summary statistics view.
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.analyticsRepo.ListInvoiceRows(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.analyticsRepo.CountDocuments(ctx)
	if err != nil {
		return nil, err
	}

	stats := computeStats(rows, docs)
	return &stats, nil
}

// GetTrend returns monthly invoice volume and spend, ascending by month.
func (s *DashboardService) GetTrend(ctx context.Context) ([]TrendPoint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.analyticsRepo.ListInvoiceRows(ctx)
	if err != nil {
		return nil, err
	}
	return computeTrend(rows), nil
}

// GetTopVendors returns the top vendors by total spend, descending.
func (s *DashboardService) GetTopVendors(ctx context.Context) ([]VendorSpend, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.analyticsRepo.ListInvoiceRows(ctx)
	if err != nil {
		return nil, err
	}
	return computeTopVendors(rows), nil
}

// GetCategorySpend returns line item spend grouped by category, descending.
func (s *DashboardService) GetCategorySpend(ctx context.Context) ([]CategorySpend, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.analyticsRepo.ListLineItemRows(ctx)
	if err != nil {
		return nil, err
	}
	return computeCategorySpend(items), nil
}

// GetCashOutflow returns expected outflow summed into the four fixed
// due-date windows, optionally bounded by inclusive from/to dates.
func (s *DashboardService) GetCashOutflow(ctx context.Context, from, to *time.Time) ([]OutflowBucket, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.analyticsRepo.ListDueInvoiceRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return bucketizeOutflow(rows, s.now()), nil
}

// GetOverview computes every metric view concurrently. The metrics are
// independent reads, so they fan out against the same store.
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	var ov Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.GetStats(ctx)
		if err != nil {
			return err
		}
		ov.Stats = *stats
		return nil
	})
	g.Go(func() error {
		var err error
		ov.Trend, err = s.GetTrend(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.TopVendors, err = s.GetTopVendors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.CategorySpend, err = s.GetCategorySpend(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.CashOutflow, err = s.GetCashOutflow(ctx, nil, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}

func computeStats(rows []repository.InvoiceRow, documents int64) Stats {
	stats := Stats{
		TotalInvoices:     int64(len(rows)),
		DocumentsUploaded: documents,
	}
	for _, r := range rows {
		stats.TotalSpend = stats.TotalSpend.Add(r.TotalAmount)
	}
	// Identity value for the empty set; never divide by zero.
	if stats.TotalInvoices > 0 {
		stats.AvgInvoiceValue = stats.TotalSpend.Div(decimal.NewFromInt(stats.TotalInvoices))
	}
	return stats
}

func computeTrend(rows []repository.InvoiceRow) []TrendPoint {
	byMonth := make(map[string]*TrendPoint)
	for _, r := range rows {
		month := r.Date.UTC().Format("2006-01")
		p, ok := byMonth[month]
		if !ok {
			p = &TrendPoint{Month: month}
			byMonth[month] = p
		}
		p.InvoiceCount++
		p.Spend = p.Spend.Add(r.TotalAmount)
	}

	trend := make([]TrendPoint, 0, len(byMonth))
	for _, p := range byMonth {
		trend = append(trend, *p)
	}
	// YYYY-MM sorts chronologically as text.
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	return trend
}

func computeTopVendors(rows []repository.InvoiceRow) []VendorSpend {
	byVendor := make(map[uuid.UUID]*VendorSpend)
	for _, r := range rows {
		v, ok := byVendor[r.VendorID]
		if !ok {
			v = &VendorSpend{ID: r.VendorID, Name: r.VendorName}
			byVendor[r.VendorID] = v
		}
		v.Spend = v.Spend.Add(r.TotalAmount)
	}

	vendors := make([]VendorSpend, 0, len(byVendor))
	for _, v := range byVendor {
		vendors = append(vendors, *v)
	}
	sort.Slice(vendors, func(i, j int) bool {
		if c := vendors[i].Spend.Cmp(vendors[j].Spend); c != 0 {
			return c > 0
		}
		return vendors[i].Name < vendors[j].Name
	})

	if len(vendors) > TopVendorLimit {
		vendors = vendors[:TopVendorLimit]
	}
	return vendors
}

func computeCategorySpend(items []repository.LineItemRow) []CategorySpend {
	byCategory := make(map[string]decimal.Decimal)
	for _, li := range items {
		category := UncategorizedLabel
		if li.Category != nil && *li.Category != "" {
			category = *li.Category
		}
		byCategory[category] = byCategory[category].Add(li.Total)
	}

	categories := make([]CategorySpend, 0, len(byCategory))
	for name, spend := range byCategory {
		categories = append(categories, CategorySpend{Category: name, Spend: spend})
	}
	sort.Slice(categories, func(i, j int) bool {
		if c := categories[i].Spend.Cmp(categories[j].Spend); c != 0 {
			return c > 0
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}
