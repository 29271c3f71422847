package models

import "time"

// Shift is a row of the shifts table. end_time is NULL while open.
type Shift struct {
	ShiftID    string     `db:"shift_id"`
	CompanyID  string     `db:"company_id"`
	WorkerID   string     `db:"worker_id"`
	TerminalID string     `db:"terminal_id"`
	StartTime  time.Time  `db:"start_time"`
	EndTime    *time.Time `db:"end_time"`
	Notes      string     `db:"notes"`
	AuditFields
}
