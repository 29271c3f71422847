package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

func (v *view) FindCashSubmissionByID(_ context.Context, submissionID string) (*domain.CashSubmission, error) {
	sub, ok := v.state.cash[submissionID]
	if !ok {
		return nil, fmt.Errorf("%w: cash submission %s", apperrors.ErrNotFound, submissionID)
	}
	return &sub, nil
}

func (v *view) FindHandoverByID(_ context.Context, handoverID string) (*domain.CashHandover, error) {
	h, ok := v.state.handovers[handoverID]
	if !ok {
		return nil, fmt.Errorf("%w: cash handover %s", apperrors.ErrNotFound, handoverID)
	}
	return &h, nil
}

func (v *view) FindElectronicPaymentByID(_ context.Context, paymentID string) (*domain.ElectronicPayment, error) {
	p, ok := v.state.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("%w: electronic payment %s", apperrors.ErrNotFound, paymentID)
	}
	return &p, nil
}

func (v *view) ReferenceNumberExists(_ context.Context, referenceNumber string) (bool, error) {
	if referenceNumber == "" {
		return false, nil
	}
	for _, p := range v.state.payments {
		if p.ReferenceNumber == referenceNumber {
			return true, nil
		}
	}
	return false, nil
}

func (v *view) SaveCashSubmission(_ context.Context, sub domain.CashSubmission) error {
	if _, exists := v.state.cash[sub.SubmissionID]; exists {
		return fmt.Errorf("%w: cash submission %s already exists", apperrors.ErrConflict, sub.SubmissionID)
	}
	v.state.cash[sub.SubmissionID] = sub
	return nil
}

func (v *view) VerifyCashSubmission(_ context.Context, submissionID, verifierID string, at time.Time) error {
	sub, ok := v.state.cash[submissionID]
	if !ok || sub.Verified {
		return fmt.Errorf("%w: unverified cash submission %s", apperrors.ErrNotFound, submissionID)
	}
	verifiedAt := at
	sub.Verified = true
	sub.VerifiedBy = &verifierID
	sub.VerifiedAt = &verifiedAt
	v.state.cash[submissionID] = sub
	return nil
}

func (v *view) SaveHandover(_ context.Context, h domain.CashHandover) error {
	if _, exists := v.state.handovers[h.HandoverID]; exists {
		return fmt.Errorf("%w: cash handover %s already exists", apperrors.ErrConflict, h.HandoverID)
	}
	v.state.handovers[h.HandoverID] = h
	return nil
}

func (v *view) VerifyHandover(_ context.Context, handoverID, verifierID string, at time.Time) error {
	h, ok := v.state.handovers[handoverID]
	if !ok || h.Verified {
		return fmt.Errorf("%w: unverified cash handover %s", apperrors.ErrNotFound, handoverID)
	}
	verifiedAt := at
	h.Verified = true
	h.VerifiedBy = &verifierID
	h.VerifiedAt = &verifiedAt
	v.state.handovers[handoverID] = h
	return nil
}

func (v *view) AutoVerifyHandovers(_ context.Context, shiftID, verifierID string, at time.Time) ([]string, error) {
	ids := make([]string, 0)
	for id, h := range v.state.handovers {
		if h.ShiftID != shiftID || h.Verified {
			continue
		}
		verifier := verifierID
		verifiedAt := at
		h.Verified = true
		h.AutoVerified = true
		h.VerifiedBy = &verifier
		h.VerifiedAt = &verifiedAt
		v.state.handovers[id] = h
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (v *view) SaveElectronicPayment(_ context.Context, p domain.ElectronicPayment) error {
	if _, exists := v.state.payments[p.PaymentID]; exists {
		return fmt.Errorf("%w: electronic payment %s already exists", apperrors.ErrConflict, p.PaymentID)
	}
	if p.ReferenceNumber != "" {
		for _, other := range v.state.payments {
			if other.ReferenceNumber == p.ReferenceNumber {
				return fmt.Errorf("%w: reference number %s already used", apperrors.ErrConflict, p.ReferenceNumber)
			}
		}
	}
	v.state.payments[p.PaymentID] = p
	return nil
}

func (v *view) DecideElectronicPayment(_ context.Context, paymentID string, status domain.PaymentStatus, verifierID string, at time.Time) error {
	p, ok := v.state.payments[paymentID]
	if !ok || p.Status != domain.PaymentPending {
		return fmt.Errorf("%w: pending electronic payment %s", apperrors.ErrNotFound, paymentID)
	}
	verifiedAt := at
	p.Status = status
	p.VerifiedBy = &verifierID
	p.VerifiedAt = &verifiedAt
	v.state.payments[paymentID] = p
	return nil
}

func (v *view) SaveExpense(_ context.Context, e domain.Expense) error {
	if _, exists := v.state.expenses[e.ExpenseID]; exists {
		return fmt.Errorf("%w: expense %s already exists", apperrors.ErrConflict, e.ExpenseID)
	}
	v.state.expenses[e.ExpenseID] = e
	return nil
}
