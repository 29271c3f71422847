package dto

import (
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// TerminalMetricsParams defines query parameters for terminal metrics.
// Period defaults to day and Date to today (UTC).
type TerminalMetricsParams struct {
	Period domain.Period `form:"period" binding:"omitempty,oneof=day week month"`
	Date   time.Time     `form:"date" time_format:"2006-01-02" time_utc:"1"`
}

// Resolve fills in the defaults.
func (p TerminalMetricsParams) Resolve(now time.Time) (domain.Period, time.Time) {
	period := p.Period
	if period == "" {
		period = domain.PeriodDay
	}
	anchor := p.Date
	if anchor.IsZero() {
		anchor = now
	}
	return period, anchor
}
