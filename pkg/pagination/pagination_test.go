package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		in         ListParams
		wantLimit  int
		wantOffset int
	}{
		{"defaults kept", ListParams{Limit: 50, Offset: 0}, 50, 0},
		{"zero limit resets", ListParams{Limit: 0, Offset: 10}, DefaultLimit, 10},
		{"negative limit resets", ListParams{Limit: -5, Offset: 0}, DefaultLimit, 0},
		{"over max clamps", ListParams{Limit: 10000, Offset: 0}, MaxLimit, 0},
		{"negative offset resets", ListParams{Limit: 20, Offset: -1}, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
			assert.Equal(t, tt.wantOffset, tt.in.Offset)
		})
	}
}

func TestDefaultListParams(t *testing.T) {
	p := DefaultListParams()
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
