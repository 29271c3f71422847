package mapping

import (
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:     d.ShiftID,
		CompanyID:   d.CompanyID,
		WorkerID:    d.WorkerID,
		TerminalID:  d.TerminalID,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:     m.ShiftID,
		CompanyID:   m.CompanyID,
		WorkerID:    m.WorkerID,
		TerminalID:  m.TerminalID,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShifts converts a slice of model Shifts
func ToDomainShifts(ms []models.Shift) []domain.Shift {
	out := make([]domain.Shift, len(ms))
	for i, m := range ms {
		out[i] = ToDomainShift(m)
	}
	return out
}
