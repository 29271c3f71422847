package domain

import "time"

// AuditAction names a mutation mirrored to the audit sink.
type AuditAction string

const (
	AuditShiftStart AuditAction = "shift_start"
	AuditShiftEnd   AuditAction = "shift_end"
	AuditCreate     AuditAction = "create"
	AuditVerify     AuditAction = "verify"
	AuditAutoVerify AuditAction = "auto_verify"
	AuditReject     AuditAction = "reject"
	AuditClose      AuditAction = "close"
	AuditForceClose AuditAction = "force_close"
)

// Entity types recorded in audit entries.
const (
	EntityShift             = "shift"
	EntityMeterReading      = "meter_reading"
	EntityCashSubmission    = "cash_submission"
	EntityCashHandover      = "cash_handover"
	EntityElectronicPayment = "electronic_payment"
	EntityExpense           = "expense"
	EntitySalaryAdjustment  = "salary_adjustment"
)

// AuditEntry is one record handed to the audit sink.
type AuditEntry struct {
	CompanyID  string         `json:"companyID"`
	Action     AuditAction    `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityID"`
	ActorID    string         `json:"actorID"`
	Details    map[string]any `json:"details,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
