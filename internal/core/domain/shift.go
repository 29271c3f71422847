package domain

import "time"

// Shift is one worker's work period at one terminal. EndTime is nil while the shift is open.
type Shift struct {
	ShiftID    string     `json:"shiftID"`
	CompanyID  string     `json:"companyID"`
	WorkerID   string     `json:"workerID"`
	TerminalID string     `json:"terminalID"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Notes      string     `json:"notes"`
	AuditFields
}

// IsOpen reports whether the shift has not been ended.
func (s Shift) IsOpen() bool {
	return s.EndTime == nil
}

// ShiftFilter narrows ListShifts. Zero values are ignored.
type ShiftFilter struct {
	CompanyID  string
	TerminalID string
	WorkerID   string
	From       *time.Time
	To         *time.Time
	OpenOnly   bool
}

// ForceClosePolicy decides what happens to readings still open when a shift ends.
type ForceClosePolicy string

const (
	// ForceCloseZeroVolume closes the reading at its opening value with no expected amount.
	ForceCloseZeroVolume ForceClosePolicy = "zero_volume"
	// ForceCloseSkip leaves open readings untouched.
	ForceCloseSkip ForceClosePolicy = "skip"
)

// CleanupReport describes what EndShift's cleanup step changed.
type CleanupReport struct {
	ForceClosedReadings  []string `json:"forceClosedReadings"`
	AutoVerifiedHandover []string `json:"autoVerifiedHandovers"`
}

// EndShiftResult is returned by EndShift. CleanupErr is set when the shift was
// closed but the cleanup step failed.
type EndShiftResult struct {
	Shift      Shift         `json:"shift"`
	Cleanup    CleanupReport `json:"cleanup"`
	CleanupErr error         `json:"-"`
}
