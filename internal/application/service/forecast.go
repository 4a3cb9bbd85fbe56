package service

import (
	"math"
	"time"

	"github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OutflowBucket is one fixed due-date window of expected cash outflow.
type OutflowBucket struct {
	Bucket          string
	ExpectedOutflow decimal.Decimal
}

// The four forecast windows, in presentation order. The series is dense:
// all four buckets are always emitted, zero-valued when empty.
var outflowBuckets = [4]string{
	"0 - 7 days",
	"8 - 30 days",
	"31-60 days",
	"60+ days",
}

// bucketizeOutflow sums expected outflow per due-date window relative to
// now. Overdue invoices (negative day difference) fold into the nearest
// window, "0 - 7 days"; they are still money going out.
func bucketizeOutflow(rows []repository.DueInvoiceRow, now time.Time) []OutflowBucket {
	sums := make(map[string]decimal.Decimal, len(outflowBuckets))
	for _, r := range rows {
		diffDays := int(math.Ceil(r.DueDate.Sub(now).Hours() / 24))
		bucket := outflowBucketFor(diffDays)
		sums[bucket] = sums[bucket].Add(r.TotalAmount)
	}

	result := make([]OutflowBucket, 0, len(outflowBuckets))
	for _, name := range outflowBuckets {
		result = append(result, OutflowBucket{Bucket: name, ExpectedOutflow: sums[name]})
	}
	return result
}

// outflowBucketFor maps a day difference to its window; boundaries are
// evaluated in order and the first match wins.
func outflowBucketFor(diffDays int) string {
	switch {
	case diffDays <= 7:
		return outflowBuckets[0]
	case diffDays <= 30:
		return outflowBuckets[1]
	case diffDays <= 60:
		return outflowBuckets[2]
	default:
		return outflowBuckets[3]
	}
}
