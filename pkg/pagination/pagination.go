package pagination

// Listing defaults and bounds for limit/offset queries.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ListParams represents limit/offset input parameters for listing queries
type ListParams struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// DefaultListParams returns default listing values
func DefaultListParams() *ListParams {
	return &ListParams{Limit: DefaultLimit, Offset: 0}
}

// Validate clamps listing parameters to valid ranges
func (p *ListParams) Validate() {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
