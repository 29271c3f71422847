package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// collectionService tracks cash, handovers, electronic payments and expenses.
type collectionService struct {
	BaseService
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(ledger portsrepo.LedgerStore, audit portsrepo.AuditSink, opts ...ServiceOption) portssvc.CollectionSvcFacade {
	return &collectionService{BaseService: newBaseService(ledger, audit, opts...)}
}

var _ portssvc.CollectionSvcFacade = (*collectionService)(nil)

func (s *collectionService) SubmitCash(ctx context.Context, actor domain.Actor, req dto.SubmitCashRequest) (*domain.CashSubmission, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.CashSubmission, error) {
		if _, err := requireOwnOpenShift(ctx, tx, actor, req.ShiftID); err != nil {
			return nil, err
		}
		sub := domain.CashSubmission{
			SubmissionID: uuid.NewString(),
			CompanyID:    actor.CompanyID,
			ShiftID:      req.ShiftID,
			UserID:       actor.UserID,
			Amount:       req.Amount,
			Notes:        req.Notes,
			CreatedAt:    s.Now(),
		}
		if err := tx.SaveCashSubmission(ctx, sub); err != nil {
			return nil, err
		}
		trail.record(domain.AuditCreate, domain.EntityCashSubmission, sub.SubmissionID, map[string]any{
			"shiftID": sub.ShiftID,
			"amount":  sub.Amount.String(),
		})
		return &sub, nil
	})
}

// verifierRoles may verify cash and decide electronic payments.
var verifierRoles = []domain.Role{domain.RoleCashier, domain.RoleSupervisor, domain.RoleAdmin}

func (s *collectionService) VerifyCash(ctx context.Context, actor domain.Actor, submissionID string) (*domain.CashSubmission, error) {
	if err := requireRole(actor, verifierRoles...); err != nil {
		return nil, err
	}
	sub, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.CashSubmission, error) {
		sub, err := tx.FindCashSubmissionByID(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, sub.CompanyID, domain.EntityCashSubmission, submissionID); err != nil {
			return nil, err
		}
		if sub.Verified {
			return nil, fmt.Errorf("%w: unverified cash submission %s", apperrors.ErrNotFound, submissionID)
		}
		if sub.UserID == actor.UserID {
			return nil, fmt.Errorf("%w: a submission cannot be verified by its submitter", apperrors.ErrValidation)
		}
		if err := tx.VerifyCashSubmission(ctx, submissionID, actor.UserID, s.Now()); err != nil {
			return nil, err
		}
		trail.record(domain.AuditVerify, domain.EntityCashSubmission, submissionID, nil)
		return tx.FindCashSubmissionByID(ctx, submissionID)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Cash submission verified", slog.String("submission_id", submissionID))
	return sub, nil
}

func (s *collectionService) RecordHandover(ctx context.Context, actor domain.Actor, req dto.RecordHandoverRequest) (*domain.CashHandover, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	if req.ToUserID == actor.UserID {
		return nil, fmt.Errorf("%w: cannot hand over cash to yourself", apperrors.ErrValidation)
	}
	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.CashHandover, error) {
		if _, err := requireOwnOpenShift(ctx, tx, actor, req.ShiftID); err != nil {
			return nil, err
		}
		h := domain.CashHandover{
			HandoverID: uuid.NewString(),
			CompanyID:  actor.CompanyID,
			ShiftID:    req.ShiftID,
			FromUserID: actor.UserID,
			ToUserID:   req.ToUserID,
			Amount:     req.Amount,
			Notes:      req.Notes,
			CreatedAt:  s.Now(),
		}
		if err := tx.SaveHandover(ctx, h); err != nil {
			return nil, err
		}
		trail.record(domain.AuditCreate, domain.EntityCashHandover, h.HandoverID, map[string]any{
			"shiftID":  h.ShiftID,
			"toUserID": h.ToUserID,
			"amount":   h.Amount.String(),
		})
		return &h, nil
	})
}

func (s *collectionService) VerifyHandover(ctx context.Context, actor domain.Actor, handoverID string) (*domain.CashHandover, error) {
	h, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.CashHandover, error) {
		h, err := tx.FindHandoverByID(ctx, handoverID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, h.CompanyID, domain.EntityCashHandover, handoverID); err != nil {
			return nil, err
		}
		if h.Verified {
			return nil, fmt.Errorf("%w: unverified cash handover %s", apperrors.ErrNotFound, handoverID)
		}
		if h.FromUserID == actor.UserID {
			return nil, fmt.Errorf("%w: a handover cannot be verified by the user handing it over", apperrors.ErrValidation)
		}
		if err := tx.VerifyHandover(ctx, handoverID, actor.UserID, s.Now()); err != nil {
			return nil, err
		}
		trail.record(domain.AuditVerify, domain.EntityCashHandover, handoverID, nil)
		return tx.FindHandoverByID(ctx, handoverID)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Cash handover verified", slog.String("handover_id", handoverID))
	return h, nil
}

func (s *collectionService) RecordElectronicPayment(ctx context.Context, actor domain.Actor, req dto.RecordElectronicPaymentRequest) (*domain.ElectronicPayment, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	p, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.ElectronicPayment, error) {
		if _, err := requireOwnOpenShift(ctx, tx, actor, req.ShiftID); err != nil {
			return nil, err
		}
		// Fast path; the store's reference constraint is authoritative.
		if req.ReferenceNumber != "" {
			used, err := tx.ReferenceNumberExists(ctx, req.ReferenceNumber)
			if err != nil {
				return nil, err
			}
			if used {
				return nil, fmt.Errorf("%w: reference number %s already used", apperrors.ErrConflict, req.ReferenceNumber)
			}
		}
		p := domain.ElectronicPayment{
			PaymentID:       uuid.NewString(),
			CompanyID:       actor.CompanyID,
			ShiftID:         req.ShiftID,
			UserID:          actor.UserID,
			Amount:          req.Amount,
			PaymentMethod:   req.PaymentMethod,
			ReferenceNumber: req.ReferenceNumber,
			Status:          domain.PaymentPending,
			Notes:           req.Notes,
			CreatedAt:       s.Now(),
		}
		if err := tx.SaveElectronicPayment(ctx, p); err != nil {
			return nil, err
		}
		trail.record(domain.AuditCreate, domain.EntityElectronicPayment, p.PaymentID, map[string]any{
			"shiftID":         p.ShiftID,
			"amount":          p.Amount.String(),
			"paymentMethod":   string(p.PaymentMethod),
			"referenceNumber": p.ReferenceNumber,
		})
		return &p, nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogDebug(ctx, "Duplicate payment reference rejected", slog.String("reference_number", req.ReferenceNumber))
		}
		return nil, err
	}
	return p, nil
}

func (s *collectionService) VerifyElectronicPayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.VerifyElectronicPaymentRequest) (*domain.ElectronicPayment, error) {
	if err := requireRole(actor, verifierRoles...); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	action := domain.AuditVerify
	if req.Decision == domain.PaymentRejected {
		action = domain.AuditReject
	}

	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.ElectronicPayment, error) {
		p, err := tx.FindElectronicPaymentByID(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, p.CompanyID, domain.EntityElectronicPayment, paymentID); err != nil {
			return nil, err
		}
		if p.Status != domain.PaymentPending {
			return nil, fmt.Errorf("%w: pending electronic payment %s", apperrors.ErrNotFound, paymentID)
		}
		if p.UserID == actor.UserID {
			return nil, fmt.Errorf("%w: a payment cannot be verified by its recorder", apperrors.ErrValidation)
		}
		if err := tx.DecideElectronicPayment(ctx, paymentID, req.Decision, actor.UserID, s.Now()); err != nil {
			return nil, err
		}
		trail.record(action, domain.EntityElectronicPayment, paymentID, map[string]any{"decision": string(req.Decision)})
		return tx.FindElectronicPaymentByID(ctx, paymentID)
	})
}

func (s *collectionService) RecordExpense(ctx context.Context, actor domain.Actor, req dto.RecordExpenseRequest) (*domain.Expense, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.Expense, error) {
		if _, err := requireOwnOpenShift(ctx, tx, actor, req.ShiftID); err != nil {
			return nil, err
		}
		e := domain.Expense{
			ExpenseID:   uuid.NewString(),
			CompanyID:   actor.CompanyID,
			ShiftID:     req.ShiftID,
			UserID:      actor.UserID,
			Amount:      req.Amount,
			Category:    req.Category,
			Description: req.Description,
			CreatedAt:   s.Now(),
		}
		if err := tx.SaveExpense(ctx, e); err != nil {
			return nil, err
		}
		trail.record(domain.AuditCreate, domain.EntityExpense, e.ExpenseID, map[string]any{
			"shiftID":  e.ShiftID,
			"amount":   e.Amount.String(),
			"category": e.Category,
		})
		return &e, nil
	})
}
