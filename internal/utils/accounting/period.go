package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// Window is a half-open UTC interval [From, To).
type Window struct {
	Period domain.Period
	From   time.Time
	To     time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// PeriodWindow returns the day, ISO week (Monday start) or calendar month
// containing anchor, evaluated in UTC.
func PeriodWindow(period domain.Period, anchor time.Time) (Window, error) {
	a := anchor.UTC()
	day := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case domain.PeriodDay:
		return Window{Period: period, From: day, To: day.AddDate(0, 0, 1)}, nil
	case domain.PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7
		from := day.AddDate(0, 0, -offset)
		return Window{Period: period, From: from, To: from.AddDate(0, 0, 7)}, nil
	case domain.PeriodMonth:
		from := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{Period: period, From: from, To: from.AddDate(0, 1, 0)}, nil
	default:
		return Window{}, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
}
