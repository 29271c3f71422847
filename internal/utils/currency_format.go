package utils

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// LiterPrecision is the number of decimals pump counters are stored with.
const LiterPrecision = domain.LiterScale

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatLiters formats a volume with the stored counter precision.
func FormatLiters(liters decimal.Decimal) string {
	return liters.StringFixed(LiterPrecision)
}
