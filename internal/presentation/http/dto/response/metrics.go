package response

import (
	"time"

	"github.com/flowbit/analytics-api/internal/application/service"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/pkg/money"
)

// Presenter layer: shapes engine output into the stable external contract.
// Monetary fields become plain numbers here and nowhere else, and the
// ordering produced by the aggregation layer is preserved as-is.

// StatsResponse is the summary statistics payload
type StatsResponse struct {
	TotalSpend        float64 `json:"totalSpend"`
	TotalInvoices     int64   `json:"totalInvoices"`
	DocumentsUploaded int64   `json:"documentsUploaded"`
	AvgInvoiceValue   float64 `json:"avgInvoiceValue"`
}

// TrendPointResponse is one month of the invoice trend payload
type TrendPointResponse struct {
	Month        string  `json:"month"`
	InvoiceCount int     `json:"invoiceCount"`
	Spend        float64 `json:"spend"`
}

// VendorSpendResponse is one entry of the vendor ranking payload
type VendorSpendResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Spend float64 `json:"spend"`
}

// CategorySpendResponse is one entry of the category breakdown payload
type CategorySpendResponse struct {
	Category string  `json:"category"`
	Spend    float64 `json:"spend"`
}

// OutflowBucketResponse is one forecast window of the cash outflow payload
type OutflowBucketResponse struct {
	Bucket          string  `json:"bucket"`
	ExpectedOutflow float64 `json:"expectedOutflow"`
}

// InvoiceRowResponse is one row of the invoice listing payload
type InvoiceRowResponse struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Date          string  `json:"date"`
	DueDate       *string `json:"dueDate,omitempty"`
	Currency      string  `json:"currency"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	VendorName    string  `json:"vendorName"`
}

// InvoiceListResponse is the invoice listing payload; Total is the full
// matching count, independent of limit/offset.
type InvoiceListResponse struct {
	Data  []InvoiceRowResponse `json:"data"`
	Total int64                `json:"total"`
}

// OverviewResponse bundles every metric payload
type OverviewResponse struct {
	Stats         StatsResponse           `json:"stats"`
	Trend         []TrendPointResponse    `json:"trend"`
	TopVendors    []VendorSpendResponse   `json:"topVendors"`
	CategorySpend []CategorySpendResponse `json:"categorySpend"`
	CashOutflow   []OutflowBucketResponse `json:"cashOutflow"`
}

// PresentStats shapes summary statistics for the response contract
func PresentStats(s *service.Stats) StatsResponse {
	return StatsResponse{
		TotalSpend:        money.Float(s.TotalSpend),
		TotalInvoices:     s.TotalInvoices,
		DocumentsUploaded: s.DocumentsUploaded,
		AvgInvoiceValue:   money.Float(s.AvgInvoiceValue),
	}
}

// PresentTrend shapes the monthly trend series, preserving order
func PresentTrend(points []service.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointResponse{
			Month:        p.Month,
			InvoiceCount: p.InvoiceCount,
			Spend:        money.Float(p.Spend),
		})
	}
	return out
}

// PresentTopVendors shapes the vendor ranking, preserving order
func PresentTopVendors(vendors []service.VendorSpend) []VendorSpendResponse {
	out := make([]VendorSpendResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, VendorSpendResponse{
			ID:    v.ID.String(),
			Name:  v.Name,
			Spend: money.Float(v.Spend),
		})
	}
	return out
}

// PresentCategorySpend shapes the category breakdown, preserving order
func PresentCategorySpend(categories []service.CategorySpend) []CategorySpendResponse {
	out := make([]CategorySpendResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategorySpendResponse{
			Category: c.Category,
			Spend:    money.Float(c.Spend),
		})
	}
	return out
}

// PresentCashOutflow shapes the forecast buckets, preserving the fixed order
func PresentCashOutflow(buckets []service.OutflowBucket) []OutflowBucketResponse {
	out := make([]OutflowBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, OutflowBucketResponse{
			Bucket:          b.Bucket,
			ExpectedOutflow: money.Float(b.ExpectedOutflow),
		})
	}
	return out
}

// PresentInvoiceList shapes a filtered invoice page
func PresentInvoiceList(list *service.InvoiceList) InvoiceListResponse {
	data := make([]InvoiceRowResponse, 0, len(list.Data))
	for _, r := range list.Data {
		data = append(data, presentInvoiceRow(r))
	}
	return InvoiceListResponse{Data: data, Total: list.Total}
}

// PresentOverview shapes the combined dashboard payload
func PresentOverview(ov *service.Overview) OverviewResponse {
	return OverviewResponse{
		Stats:         PresentStats(&ov.Stats),
		Trend:         PresentTrend(ov.Trend),
		TopVendors:    PresentTopVendors(ov.TopVendors),
		CategorySpend: PresentCategorySpend(ov.CategorySpend),
		CashOutflow:   PresentCashOutflow(ov.CashOutflow),
	}
}

func presentInvoiceRow(r domainRepo.InvoiceListRow) InvoiceRowResponse {
	row := InvoiceRowResponse{
		ID:            r.ID.String(),
		InvoiceNumber: r.InvoiceNumber,
		Date:          r.Date.UTC().Format(time.RFC3339),
		Currency:      r.Currency,
		TotalAmount:   money.Float(r.TotalAmount),
		Status:        r.Status,
		VendorName:    r.VendorName,
	}
	if r.DueDate != nil {
		due := r.DueDate.UTC().Format(time.RFC3339)
		row.DueDate = &due
	}
	return row
}
