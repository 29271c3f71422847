package domain

import "time"

// AuditFields holds standard audit information for ledger entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Page is one page of a token-paginated listing.
type Page[T any] struct {
	Items     []T
	NextToken *string
}

// Stored decimal shapes: liters are NUMERIC(20, 3), money NUMERIC(20, 4).
const (
	DecimalDigits = 20
	LiterScale    = 3
	MoneyScale    = 4
)
