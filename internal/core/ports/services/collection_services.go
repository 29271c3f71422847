package services

import (
	"context"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// CashSvc defines cash submissions and handovers
type CashSvc interface {
	SubmitCash(ctx context.Context, actor domain.Actor, req dto.SubmitCashRequest) (*domain.CashSubmission, error)

	// VerifyCash verifies a submission exactly once; a second call is apperrors.ErrNotFound.
	VerifyCash(ctx context.Context, actor domain.Actor, submissionID string) (*domain.CashSubmission, error)

	RecordHandover(ctx context.Context, actor domain.Actor, req dto.RecordHandoverRequest) (*domain.CashHandover, error)
	VerifyHandover(ctx context.Context, actor domain.Actor, handoverID string) (*domain.CashHandover, error)
}

// ElectronicPaymentSvc defines non-cash payments
type ElectronicPaymentSvc interface {
	RecordElectronicPayment(ctx context.Context, actor domain.Actor, req dto.RecordElectronicPaymentRequest) (*domain.ElectronicPayment, error)
	VerifyElectronicPayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.VerifyElectronicPaymentRequest) (*domain.ElectronicPayment, error)
}

// ExpenseSvc defines till expenses
type ExpenseSvc interface {
	RecordExpense(ctx context.Context, actor domain.Actor, req dto.RecordExpenseRequest) (*domain.Expense, error)
}

// CollectionSvcFacade combines all collection-related service interfaces
type CollectionSvcFacade interface {
	CashSvc
	ElectronicPaymentSvc
	ExpenseSvc
}
