package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, "0"},
		{"float64", 12.5, "12.5"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
		{"numeric string", "19.99", "19.99"},
		{"json number", json.Number("100.01"), "100.01"},
		{"decimal", decimal.RequireFromString("5.55"), "5.55"},
		{"garbage string", "abc", "0"},
		{"bool falls back", true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAny(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 12.5, Float(decimal.RequireFromString("12.5")))
	assert.Equal(t, 0.0, Float(decimal.Zero))
}
