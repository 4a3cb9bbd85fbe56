package service

import (
	"testing"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dueRow(now time.Time, days int, amount string) repository.DueInvoiceRow {
	return repository.DueInvoiceRow{
		DueDate:     now.AddDate(0, 0, days),
		TotalAmount: decimal.RequireFromString(amount),
	}
}

func TestBucketizeOutflow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := []repository.DueInvoiceRow{
		dueRow(now, 3, "10"),
		dueRow(now, 20, "20"),
		dueRow(now, 45, "30"),
		dueRow(now, 90, "40"),
	}

	buckets := bucketizeOutflow(rows, now)

	require.Len(t, buckets, 4)
	assert.Equal(t, "0 - 7 days", buckets[0].Bucket)
	assert.True(t, buckets[0].ExpectedOutflow.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, "8 - 30 days", buckets[1].Bucket)
	assert.True(t, buckets[1].ExpectedOutflow.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, "31-60 days", buckets[2].Bucket)
	assert.True(t, buckets[2].ExpectedOutflow.Equal(decimal.RequireFromString("30")))
	assert.Equal(t, "60+ days", buckets[3].Bucket)
	assert.True(t, buckets[3].ExpectedOutflow.Equal(decimal.RequireFromString("40")))
}

func TestBucketizeOutflowEmptyEmitsAllBuckets(t *testing.T) {
	buckets := bucketizeOutflow(nil, time.Now())

	require.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.True(t, b.ExpectedOutflow.IsZero(), b.Bucket)
	}
}

func TestBucketizeOutflowOverdueFoldsIntoNearestWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := []repository.DueInvoiceRow{
		dueRow(now, -10, "25"),
		dueRow(now, 2, "5"),
	}

	buckets := bucketizeOutflow(rows, now)

	assert.Equal(t, "0 - 7 days", buckets[0].Bucket)
	assert.True(t, buckets[0].ExpectedOutflow.Equal(decimal.RequireFromString("30")))
}

func TestBucketizeOutflowBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		days   int
		bucket string
	}{
		{7, "0 - 7 days"},
		{8, "8 - 30 days"},
		{30, "8 - 30 days"},
		{31, "31-60 days"},
		{60, "31-60 days"},
		{61, "60+ days"},
	}

	for _, tt := range tests {
		buckets := bucketizeOutflow([]repository.DueInvoiceRow{dueRow(now, tt.days, "1")}, now)
		for _, b := range buckets {
			if b.Bucket == tt.bucket {
				assert.True(t, b.ExpectedOutflow.Equal(decimal.NewFromInt(1)), "day %d should land in %q", tt.days, tt.bucket)
			} else {
				assert.True(t, b.ExpectedOutflow.IsZero(), "day %d leaked into %q", tt.days, b.Bucket)
			}
		}
	}
}

func TestBucketizeOutflowConservation(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []repository.DueInvoiceRow{
		dueRow(now, -3, "11.11"),
		dueRow(now, 5, "22.22"),
		dueRow(now, 25, "33.33"),
		dueRow(now, 55, "44.44"),
		dueRow(now, 400, "55.55"),
	}

	var total decimal.Decimal
	for _, b := range bucketizeOutflow(rows, now) {
		total = total.Add(b.ExpectedOutflow)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("166.65")))
}
