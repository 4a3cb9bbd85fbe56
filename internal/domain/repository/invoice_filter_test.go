package repository

import (
	"testing"
	"time"

	"github.com/flowbit/analytics-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceFilter(t *testing.T) {
	f, err := ParseInvoiceFilter("acme", "unpaid", "Acme Corp", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	assert.Equal(t, "acme", f.Query)
	assert.Equal(t, "unpaid", f.Status)
	assert.Equal(t, "Acme Corp", f.Vendor)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *f.To)
}

func TestParseInvoiceFilterEmpty(t *testing.T) {
	f, err := ParseInvoiceFilter("", "", "", "", "")
	require.NoError(t, err)

	assert.Empty(t, f.Query)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)
}

func TestParseDateBound(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "2024-03-15", false},
		{"empty means unbounded", "", false},
		{"us format", "03/15/2024", true},
		{"partial", "2024-03", true},
		{"garbage", "not-a-date", true},
		{"timestamp", "2024-03-15T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateBound("from", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err))
				return
			}
			require.NoError(t, err)
			if tt.value == "" {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
			}
		})
	}
}
