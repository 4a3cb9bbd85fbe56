package money

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FromAny coerces an untrusted numeric value into a decimal amount.
// Non-numeric and missing values fall back to zero; they never propagate
// as null into a sum. This is the single coercion point for amounts that
// enter the system from seed files and external payloads.
func FromAny(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Float converts a decimal amount to a plain float64 for presentation.
func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
