package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/SscSPs/fuel_station_app/internal/middleware"
	"github.com/SscSPs/fuel_station_app/internal/utils/validation"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Ledger   portsrepo.LedgerStore
	Audit    portsrepo.AuditSink
	Now      func() time.Time
	Validate *validator.Validate
}

// ServiceOption configures a BaseService.
type ServiceOption func(*BaseService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(b *BaseService) {
		b.Now = now
	}
}

// WithValidator overrides the request validator.
func WithValidator(v *validator.Validate) ServiceOption {
	return func(b *BaseService) {
		b.Validate = v
	}
}

func newBaseService(ledger portsrepo.LedgerStore, audit portsrepo.AuditSink, opts ...ServiceOption) BaseService {
	b := BaseService{
		Ledger:   ledger,
		Audit:    audit,
		Now:      func() time.Time { return time.Now().UTC() },
		Validate: validation.New(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// validateRequest runs the binding rules and wraps failures as validation errors.
func (s *BaseService) validateRequest(req any) error {
	if err := s.Validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, validation.Describe(err))
	}
	return nil
}

// requireTenant hides records of other companies behind ErrNotFound.
func requireTenant(actor domain.Actor, companyID, entity, id string) error {
	if companyID != actor.CompanyID {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
	}
	return nil
}

// requireRole rejects actors without one of the roles.
func requireRole(actor domain.Actor, roles ...domain.Role) error {
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q may not perform this action", apperrors.ErrForbidden, actor.Role)
}

// requireOwnOpenShift locks the shift and checks it is open and worked by the actor.
func requireOwnOpenShift(ctx context.Context, tx portsrepo.LedgerTx, actor domain.Actor, shiftID string) (*domain.Shift, error) {
	shift, err := tx.LockOpenShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.CompanyID != actor.CompanyID || shift.WorkerID != actor.UserID {
		return nil, fmt.Errorf("%w: no open shift %s for user %s", apperrors.ErrNotFound, shiftID, actor.UserID)
	}
	return shift, nil
}
