package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/SscSPs/fuel_station_app/internal/utils/accounting"
)

// salaryAdjustmentService turns measured discrepancies into salary adjustments.
type salaryAdjustmentService struct {
	BaseService
}

// NewSalaryAdjustmentService creates a new SalaryAdjustmentService.
func NewSalaryAdjustmentService(ledger portsrepo.LedgerStore, audit portsrepo.AuditSink, opts ...ServiceOption) portssvc.SalaryAdjustmentSvcFacade {
	return &salaryAdjustmentService{BaseService: newBaseService(ledger, audit, opts...)}
}

var _ portssvc.SalaryAdjustmentSvcFacade = (*salaryAdjustmentService)(nil)

type discrepancyEvent struct {
	employeeID    string
	expected      decimal.Decimal
	actual        decimal.Decimal
	referenceID   string
	referenceType domain.ReferenceType
	reason        string
}

func (s *salaryAdjustmentService) RecordDiscrepancy(ctx context.Context, actor domain.Actor, req dto.RecordDiscrepancyRequest) (*domain.SalaryAdjustment, error) {
	if err := requireRole(actor, domain.RoleSupervisor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	ev := discrepancyEvent{
		employeeID:    req.EmployeeID,
		expected:      req.ExpectedVolume,
		actual:        req.ActualVolume,
		referenceID:   req.ReferenceID,
		referenceType: req.ReferenceType,
		reason:        req.Reason,
	}
	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.SalaryAdjustment, error) {
		return s.record(ctx, tx, trail, actor, ev)
	})
}

func (s *salaryAdjustmentService) RecordShiftVariance(ctx context.Context, actor domain.Actor, shiftID string) (*domain.SalaryAdjustment, error) {
	if err := requireRole(actor, domain.RoleSupervisor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.SalaryAdjustment, error) {
		shift, err := tx.LockShift(ctx, shiftID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, shift.CompanyID, domain.EntityShift, shiftID); err != nil {
			return nil, err
		}
		if shift.IsOpen() {
			return nil, fmt.Errorf("%w: closed shift %s", apperrors.ErrNotFound, shiftID)
		}
		ledger, err := tx.LoadShiftLedger(ctx, shiftID)
		if err != nil {
			return nil, err
		}
		summary := accounting.SummarizeShift(*ledger)
		return s.record(ctx, tx, trail, actor, discrepancyEvent{
			employeeID:    shift.WorkerID,
			expected:      summary.ExpectedCash,
			actual:        summary.SubmittedCash,
			referenceID:   shiftID,
			referenceType: domain.ReferenceShift,
			reason:        fmt.Sprintf("cash variance for shift %s", shiftID),
		})
	})
}

// record persists one adjustment for a nonzero discrepancy. An exact match returns nil.
func (s *salaryAdjustmentService) record(ctx context.Context, tx portsrepo.LedgerTx, trail *auditTrail, actor domain.Actor, ev discrepancyEvent) (*domain.SalaryAdjustment, error) {
	amount, kind, ok := accounting.Discrepancy(ev.expected, ev.actual)
	if !ok {
		s.LogDebug(ctx, "No discrepancy, no adjustment recorded",
			slog.String("employee_id", ev.employeeID),
			slog.String("reference_id", ev.referenceID))
		return nil, nil
	}

	reason := ev.reason
	if reason == "" {
		reason = fmt.Sprintf("%s of %s against expected %s", kind, amount, ev.expected)
	}
	adj := domain.SalaryAdjustment{
		AdjustmentID:   uuid.NewString(),
		CompanyID:      actor.CompanyID,
		EmployeeID:     ev.employeeID,
		Amount:         amount,
		AdjustmentType: kind,
		Reason:         reason,
		ReferenceID:    ev.referenceID,
		ReferenceType:  ev.referenceType,
		AdjustedBy:     actor.UserID,
		AdjustmentDate: s.Now(),
	}
	if err := tx.SaveSalaryAdjustment(ctx, adj); err != nil {
		return nil, err
	}
	trail.record(domain.AuditCreate, domain.EntitySalaryAdjustment, adj.AdjustmentID, map[string]any{
		"employeeID":     adj.EmployeeID,
		"amount":         adj.Amount.String(),
		"adjustmentType": string(adj.AdjustmentType),
		"referenceID":    adj.ReferenceID,
		"referenceType":  string(adj.ReferenceType),
	})
	s.LogInfo(ctx, "Salary adjustment recorded",
		slog.String("adjustment_id", adj.AdjustmentID),
		slog.String("employee_id", adj.EmployeeID),
		slog.String("type", string(kind)))
	return &adj, nil
}

func (s *salaryAdjustmentService) ListAdjustments(ctx context.Context, actor domain.Actor, params dto.ListAdjustmentsParams) ([]domain.SalaryAdjustment, error) {
	filter := params.ToFilter(actor.CompanyID)
	// Workers only see their own adjustments.
	if actor.Role == domain.RoleWorker {
		filter.EmployeeID = actor.UserID
	}
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) ([]domain.SalaryAdjustment, error) {
		return r.ListAdjustments(ctx, filter)
	})
}
