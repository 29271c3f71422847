package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeterReading is one pump's opening/closing counter pair within a shift.
type MeterReading struct {
	ReadingID      string           `json:"readingID"`
	CompanyID      string           `json:"companyID"`
	PumpID         string           `json:"pumpID"`
	ShiftID        string           `json:"shiftID"`
	UserID         string           `json:"userID"`
	Opening        decimal.Decimal  `json:"opening"`
	Closing        *decimal.Decimal `json:"closing,omitempty"`
	PricePerLiter  *decimal.Decimal `json:"pricePerLiter,omitempty"`
	ExpectedAmount *decimal.Decimal `json:"expectedAmount,omitempty"`
	ForceClosed    bool             `json:"forceClosed"`
	CreatedAt      time.Time        `json:"createdAt"`
	ClosedAt       *time.Time       `json:"closedAt,omitempty"`
}

// IsOpen reports whether the closing value has not been recorded yet.
func (r MeterReading) IsOpen() bool {
	return r.Closing == nil
}

// LitersSold is closing minus opening, zero while the reading is open.
func (r MeterReading) LitersSold() decimal.Decimal {
	if r.Closing == nil {
		return decimal.Zero
	}
	return r.Closing.Sub(r.Opening)
}

// ReadingFilter narrows ListReadings. Zero values are ignored.
type ReadingFilter struct {
	CompanyID string
	UserID    string
	PumpID    string
	ShiftID   string
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}
