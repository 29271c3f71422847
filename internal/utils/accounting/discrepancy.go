package accounting

import (
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Discrepancy compares a measured value to the expected one. It returns the
// absolute difference and its direction, or ok=false on an exact match.
func Discrepancy(expected, actual decimal.Decimal) (amount decimal.Decimal, kind domain.AdjustmentType, ok bool) {
	diff := actual.Sub(expected)
	if diff.IsZero() {
		return decimal.Zero, "", false
	}
	if diff.IsNegative() {
		return diff.Abs(), domain.AdjustmentShortage, true
	}
	return diff, domain.AdjustmentExcess, true
}
