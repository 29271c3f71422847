package mapping

import (
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
)

// ToDomainCashSubmission converts a model CashSubmission to a domain CashSubmission
func ToDomainCashSubmission(m models.CashSubmission) domain.CashSubmission {
	return domain.CashSubmission{
		SubmissionID: m.SubmissionID,
		CompanyID:    m.CompanyID,
		ShiftID:      m.ShiftID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Verified:     m.Verified,
		VerifiedBy:   m.VerifiedBy,
		VerifiedAt:   m.VerifiedAt,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainCashHandover converts a model CashHandover to a domain CashHandover
func ToDomainCashHandover(m models.CashHandover) domain.CashHandover {
	return domain.CashHandover{
		HandoverID:   m.HandoverID,
		CompanyID:    m.CompanyID,
		ShiftID:      m.ShiftID,
		FromUserID:   m.FromUserID,
		ToUserID:     m.ToUserID,
		Amount:       m.Amount,
		Verified:     m.Verified,
		VerifiedBy:   m.VerifiedBy,
		VerifiedAt:   m.VerifiedAt,
		AutoVerified: m.AutoVerified,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainElectronicPayment converts a model ElectronicPayment to a domain ElectronicPayment
func ToDomainElectronicPayment(m models.ElectronicPayment) domain.ElectronicPayment {
	return domain.ElectronicPayment{
		PaymentID:       m.PaymentID,
		CompanyID:       m.CompanyID,
		ShiftID:         m.ShiftID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		ReferenceNumber: m.ReferenceNumber,
		Status:          domain.PaymentStatus(m.Status),
		VerifiedBy:      m.VerifiedBy,
		VerifiedAt:      m.VerifiedAt,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		CompanyID:   m.CompanyID,
		ShiftID:     m.ShiftID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainSalaryAdjustment converts a model SalaryAdjustment to a domain SalaryAdjustment
func ToDomainSalaryAdjustment(m models.SalaryAdjustment) domain.SalaryAdjustment {
	return domain.SalaryAdjustment{
		AdjustmentID:   m.AdjustmentID,
		CompanyID:      m.CompanyID,
		EmployeeID:     m.EmployeeID,
		Amount:         m.Amount,
		AdjustmentType: domain.AdjustmentType(m.AdjustmentType),
		Reason:         m.Reason,
		ReferenceID:    m.ReferenceID,
		ReferenceType:  domain.ReferenceType(m.ReferenceType),
		AdjustedBy:     m.AdjustedBy,
		AdjustmentDate: m.AdjustmentDate,
	}
}

// ToDomainPump converts a model Pump to a domain Pump
func ToDomainPump(m models.Pump) domain.Pump {
	return domain.Pump(m)
}

// mapSlice converts every row with fn.
func mapSlice[M any, D any](rows []M, fn func(M) D) []D {
	out := make([]D, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}

// ToDomainCashSubmissions converts a slice of model CashSubmissions
func ToDomainCashSubmissions(ms []models.CashSubmission) []domain.CashSubmission {
	return mapSlice(ms, ToDomainCashSubmission)
}

// ToDomainCashHandovers converts a slice of model CashHandovers
func ToDomainCashHandovers(ms []models.CashHandover) []domain.CashHandover {
	return mapSlice(ms, ToDomainCashHandover)
}

// ToDomainElectronicPayments converts a slice of model ElectronicPayments
func ToDomainElectronicPayments(ms []models.ElectronicPayment) []domain.ElectronicPayment {
	return mapSlice(ms, ToDomainElectronicPayment)
}

// ToDomainExpenses converts a slice of model Expenses
func ToDomainExpenses(ms []models.Expense) []domain.Expense {
	return mapSlice(ms, ToDomainExpense)
}

// ToDomainSalaryAdjustments converts a slice of model SalaryAdjustments
func ToDomainSalaryAdjustments(ms []models.SalaryAdjustment) []domain.SalaryAdjustment {
	return mapSlice(ms, ToDomainSalaryAdjustment)
}
