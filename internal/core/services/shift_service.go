package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// ShiftPolicy holds the configurable parts of shift close-out.
type ShiftPolicy struct {
	ForceClose          domain.ForceClosePolicy
	AutoVerifyHandovers bool
}

// DefaultShiftPolicy matches the historical close-out behaviour.
func DefaultShiftPolicy() ShiftPolicy {
	return ShiftPolicy{ForceClose: domain.ForceCloseZeroVolume, AutoVerifyHandovers: true}
}

// shiftService implements the shift lifecycle.
type shiftService struct {
	BaseService
	policy ShiftPolicy
}

// NewShiftService creates a new ShiftService.
func NewShiftService(ledger portsrepo.LedgerStore, audit portsrepo.AuditSink, policy ShiftPolicy, opts ...ServiceOption) portssvc.ShiftSvcFacade {
	return &shiftService{
		BaseService: newBaseService(ledger, audit, opts...),
		policy:      policy,
	}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

func (s *shiftService) StartShift(ctx context.Context, actor domain.Actor, req dto.StartShiftRequest) (*domain.Shift, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	terminalID := req.TerminalID
	if terminalID == "" {
		terminalID = actor.TerminalID
	}
	// A session pinned to a terminal cannot open shifts elsewhere.
	if actor.TerminalID != "" && terminalID != actor.TerminalID {
		return nil, fmt.Errorf("%w: session is bound to terminal %s", apperrors.ErrForbidden, actor.TerminalID)
	}
	if terminalID == "" {
		return nil, fmt.Errorf("%w: terminal is required", apperrors.ErrValidation)
	}

	shift, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.Shift, error) {
		// Fast path; the store's open-shift constraint is authoritative.
		existing, err := tx.FindOpenShiftByWorker(ctx, actor.UserID)
		if err == nil {
			return nil, fmt.Errorf("%w: worker already has an open shift %s", apperrors.ErrConflict, existing.ShiftID)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

		now := s.Now()
		shift := domain.Shift{
			ShiftID:    uuid.NewString(),
			CompanyID:  actor.CompanyID,
			WorkerID:   actor.UserID,
			TerminalID: terminalID,
			StartTime:  now,
			Notes:      req.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if err := tx.SaveShift(ctx, shift); err != nil {
			return nil, err
		}
		trail.record(domain.AuditShiftStart, domain.EntityShift, shift.ShiftID, map[string]any{"terminalID": terminalID})
		return &shift, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to start shift", slog.String("worker_id", actor.UserID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Shift started", slog.String("shift_id", shift.ShiftID), slog.String("terminal_id", terminalID))
	return shift, nil
}

func (s *shiftService) EndShift(ctx context.Context, actor domain.Actor, shiftID string, req dto.EndShiftRequest) (*domain.EndShiftResult, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	closed, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.Shift, error) {
		shift, err := requireOwnOpenShift(ctx, tx, actor, shiftID)
		if err != nil {
			return nil, err
		}
		now := s.Now()
		notes := mergeNotes(shift.Notes, req.Notes)
		if err := tx.CloseShift(ctx, shiftID, now, notes, actor.UserID); err != nil {
			return nil, err
		}
		shift.EndTime = &now
		shift.Notes = notes
		shift.LastUpdatedAt = now
		shift.LastUpdatedBy = actor.UserID
		trail.record(domain.AuditShiftEnd, domain.EntityShift, shiftID, nil)
		return shift, nil
	})
	if err != nil {
		return nil, err
	}

	result := &domain.EndShiftResult{Shift: *closed}
	report, cleanupErr := s.cleanup(ctx, actor, *closed)
	result.Cleanup = report
	if cleanupErr != nil {
		wrapped := &apperrors.CleanupError{ShiftID: shiftID, Err: cleanupErr}
		result.CleanupErr = wrapped
		s.LogError(ctx, cleanupErr, "Shift closed but cleanup failed", slog.String("shift_id", shiftID))
		return result, wrapped
	}

	s.LogInfo(ctx, "Shift ended",
		slog.String("shift_id", shiftID),
		slog.Int("force_closed_readings", len(report.ForceClosedReadings)),
		slog.Int("auto_verified_handovers", len(report.AutoVerifiedHandover)))
	return result, nil
}

// cleanup runs in its own transaction after the close has committed.
func (s *shiftService) cleanup(ctx context.Context, actor domain.Actor, shift domain.Shift) (domain.CleanupReport, error) {
	return runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (domain.CleanupReport, error) {
		report := domain.CleanupReport{ForceClosedReadings: []string{}, AutoVerifiedHandover: []string{}}
		if _, err := tx.LockShift(ctx, shift.ShiftID); err != nil {
			return report, err
		}
		now := s.Now()

		if s.policy.ForceClose == domain.ForceCloseZeroVolume {
			readings, err := tx.ForceCloseOpenReadings(ctx, shift.ShiftID, now)
			if err != nil {
				return report, fmt.Errorf("force-closing readings: %w", err)
			}
			for _, r := range readings {
				report.ForceClosedReadings = append(report.ForceClosedReadings, r.ReadingID)
				trail.record(domain.AuditForceClose, domain.EntityMeterReading, r.ReadingID, map[string]any{
					"shiftID": shift.ShiftID,
					"pumpID":  r.PumpID,
					"opening": r.Opening.String(),
				})
			}
		}

		if s.policy.AutoVerifyHandovers {
			ids, err := tx.AutoVerifyHandovers(ctx, shift.ShiftID, actor.UserID, now)
			if err != nil {
				return report, fmt.Errorf("auto-verifying handovers: %w", err)
			}
			for _, id := range ids {
				report.AutoVerifiedHandover = append(report.AutoVerifiedHandover, id)
				trail.record(domain.AuditAutoVerify, domain.EntityCashHandover, id, map[string]any{
					"shiftID": shift.ShiftID,
					"reason":  "shift_close",
				})
			}
		}
		return report, nil
	})
}

func mergeNotes(existing, added string) string {
	added = strings.TrimSpace(added)
	switch {
	case added == "":
		return existing
	case existing == "":
		return added
	default:
		return existing + "\n" + added
	}
}

func (s *shiftService) GetActiveShift(ctx context.Context, actor domain.Actor, workerID string) (*domain.Shift, error) {
	return s.findOpenShift(ctx, actor, workerID, "")
}

func (s *shiftService) GetCurrentShift(ctx context.Context, actor domain.Actor, workerID, terminalID string) (*domain.Shift, error) {
	if terminalID == "" {
		return nil, fmt.Errorf("%w: terminal is required", apperrors.ErrValidation)
	}
	return s.findOpenShift(ctx, actor, workerID, terminalID)
}

func (s *shiftService) findOpenShift(ctx context.Context, actor domain.Actor, workerID, terminalID string) (*domain.Shift, error) {
	if workerID == "" {
		workerID = actor.UserID
	}
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) (*domain.Shift, error) {
		shift, err := r.FindOpenShiftByWorker(ctx, workerID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if shift.CompanyID != actor.CompanyID {
			return nil, nil
		}
		if terminalID != "" && shift.TerminalID != terminalID {
			return nil, nil
		}
		return shift, nil
	})
}

func (s *shiftService) GetShift(ctx context.Context, actor domain.Actor, shiftID string) (*domain.Shift, error) {
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) (*domain.Shift, error) {
		shift, err := r.FindShiftByID(ctx, shiftID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, shift.CompanyID, domain.EntityShift, shiftID); err != nil {
			return nil, err
		}
		return shift, nil
	})
}

func (s *shiftService) ListShifts(ctx context.Context, actor domain.Actor, params dto.ListShiftsParams) ([]domain.Shift, error) {
	filter := params.ToFilter(actor.CompanyID)
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) ([]domain.Shift, error) {
		return r.ListShifts(ctx, filter)
	})
}
