package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeterReading is a row of the meter_readings table.
type MeterReading struct {
	ReadingID      string              `db:"reading_id"`
	CompanyID      string              `db:"company_id"`
	PumpID         string              `db:"pump_id"`
	ShiftID        string              `db:"shift_id"`
	UserID         string              `db:"user_id"`
	Opening        decimal.Decimal     `db:"opening"`
	Closing        decimal.NullDecimal `db:"closing"`
	PricePerLiter  decimal.NullDecimal `db:"price_per_liter"`
	ExpectedAmount decimal.NullDecimal `db:"expected_amount"`
	ForceClosed    bool                `db:"force_closed"`
	CreatedAt      time.Time           `db:"created_at"`
	ClosedAt       *time.Time          `db:"closed_at"`
}
