package dto

import (
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// StartShiftRequest defines the data needed to open a shift.
// TerminalID falls back to the caller's terminal claim when empty.
type StartShiftRequest struct {
	TerminalID string `json:"terminalID" binding:"omitempty,max=64"`
	Notes      string `json:"notes" binding:"max=1000"`
}

// EndShiftRequest defines the data sent when closing a shift.
type EndShiftRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

// ListShiftsParams defines query parameters for listing shifts.
type ListShiftsParams struct {
	TerminalID string    `form:"terminalID"`
	WorkerID   string    `form:"workerID"`
	From       time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To         time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	OpenOnly   bool      `form:"openOnly"`
}

// ToFilter converts params to a store filter scoped to the company.
func (p ListShiftsParams) ToFilter(companyID string) domain.ShiftFilter {
	return domain.ShiftFilter{
		CompanyID:  companyID,
		TerminalID: p.TerminalID,
		WorkerID:   p.WorkerID,
		From:       timePtr(p.From),
		To:         dayAfter(p.To),
		OpenOnly:   p.OpenOnly,
	}
}

// EndShiftResponse is returned when a shift is closed. CleanupError is set
// when the shift closed but the cleanup step failed.
type EndShiftResponse struct {
	Shift        domain.Shift         `json:"shift"`
	Cleanup      domain.CleanupReport `json:"cleanup"`
	CleanupError string               `json:"cleanupError,omitempty"`
}

// ListShiftsResponse wraps a list of shifts.
type ListShiftsResponse struct {
	Shifts []domain.Shift `json:"shifts"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// dayAfter turns an inclusive date bound into an exclusive one.
func dayAfter(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	next := t.AddDate(0, 0, 1)
	return &next
}
