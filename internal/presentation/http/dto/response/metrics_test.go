package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/flowbit/analytics-api/internal/application/service"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentStatsFieldNames(t *testing.T) {
	payload, err := json.Marshal(PresentStats(&service.Stats{
		TotalSpend:        decimal.RequireFromString("150.5"),
		TotalInvoices:     2,
		DocumentsUploaded: 3,
		AvgInvoiceValue:   decimal.RequireFromString("75.25"),
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"totalSpend":150.5,"totalInvoices":2,"documentsUploaded":3,"avgInvoiceValue":75.25}`, string(payload))
}

func TestPresentTrendPreservesOrder(t *testing.T) {
	trend := PresentTrend([]service.TrendPoint{
		{Month: "2024-01", InvoiceCount: 1, Spend: decimal.NewFromInt(10)},
		{Month: "2024-02", InvoiceCount: 2, Spend: decimal.NewFromInt(20)},
	})

	require.Len(t, trend, 2)
	assert.Equal(t, "2024-01", trend[0].Month)
	assert.Equal(t, "2024-02", trend[1].Month)
}

func TestPresentTrendEmptyIsArray(t *testing.T) {
	payload, err := json.Marshal(PresentTrend(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}

func TestPresentInvoiceList(t *testing.T) {
	id := uuid.New()
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	list := PresentInvoiceList(&service.InvoiceList{
		Data: []domainRepo.InvoiceListRow{
			{
				ID:            id,
				InvoiceNumber: "INV-1",
				Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				DueDate:       &due,
				Currency:      "USD",
				TotalAmount:   decimal.RequireFromString("99.99"),
				Status:        "unpaid",
				VendorName:    "Acme",
			},
		},
		Total: 42,
	})

	assert.Equal(t, int64(42), list.Total)
	require.Len(t, list.Data, 1)
	row := list.Data[0]
	assert.Equal(t, id.String(), row.ID)
	assert.Equal(t, "2024-03-15T00:00:00Z", row.Date)
	require.NotNil(t, row.DueDate)
	assert.Equal(t, "2024-04-01T00:00:00Z", *row.DueDate)
	assert.Equal(t, 99.99, row.TotalAmount)
}

func TestPresentInvoiceRowOmitsMissingDueDate(t *testing.T) {
	list := PresentInvoiceList(&service.InvoiceList{
		Data: []domainRepo.InvoiceListRow{{ID: uuid.New(), Date: time.Now()}},
	})

	payload, err := json.Marshal(list.Data[0])
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "dueDate")
}
