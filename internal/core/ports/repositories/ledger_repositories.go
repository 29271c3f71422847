package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a shift by id, open or closed.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindOpenShiftByWorker returns the worker's open shift or apperrors.ErrNotFound.
	FindOpenShiftByWorker(ctx context.Context, workerID string) (*domain.Shift, error)

	// ListShifts returns shifts matching the filter, newest first.
	ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// LockShift takes a row lock on the shift regardless of state.
	LockShift(ctx context.Context, shiftID string) (*domain.Shift, error)

	// LockOpenShift takes a row lock on the shift and returns apperrors.ErrNotFound unless it is open.
	LockOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error)

	// SaveShift inserts a new shift. A second open shift for the worker is apperrors.ErrConflict.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// CloseShift sets the end time and notes of an open shift.
	CloseShift(ctx context.Context, shiftID string, endTime time.Time, notes string, updatedBy string) error
}

// MeterReadingReader defines read operations for meter readings
type MeterReadingReader interface {
	FindReadingByID(ctx context.Context, readingID string) (*domain.MeterReading, error)

	// FindOpenReading returns the open reading for pump+shift or apperrors.ErrNotFound.
	FindOpenReading(ctx context.Context, pumpID, shiftID string) (*domain.MeterReading, error)

	// LastClosingReading returns the highest recorded closing value for the pump
	// across all shifts, or nil when the pump has never been closed.
	LastClosingReading(ctx context.Context, pumpID string) (*decimal.Decimal, error)

	// ListReadings retrieves a page of readings ordered by creation time.
	// It returns the readings, a token for the next page, and an error.
	ListReadings(ctx context.Context, filter domain.ReadingFilter) ([]domain.MeterReading, *string, error)
}

// MeterReadingWriter defines write operations for meter readings
type MeterReadingWriter interface {
	// LockPump serializes readers and writers of the pump's counter until the transaction ends.
	LockPump(ctx context.Context, pumpID string) error

	// SaveReading inserts an open reading. A second open reading for pump+shift is apperrors.ErrConflict.
	SaveReading(ctx context.Context, reading domain.MeterReading) error

	// CloseReading stores closing, price and expected amount if the reading is
	// still open, apperrors.ErrNotFound otherwise.
	CloseReading(ctx context.Context, reading domain.MeterReading) error

	// ForceCloseOpenReadings closes every open reading on the shift at its opening value.
	ForceCloseOpenReadings(ctx context.Context, shiftID string, closedAt time.Time) ([]domain.MeterReading, error)
}

// CollectionReader defines read operations for cash and electronic collections
type CollectionReader interface {
	FindCashSubmissionByID(ctx context.Context, submissionID string) (*domain.CashSubmission, error)
	FindHandoverByID(ctx context.Context, handoverID string) (*domain.CashHandover, error)
	FindElectronicPaymentByID(ctx context.Context, paymentID string) (*domain.ElectronicPayment, error)

	// ReferenceNumberExists reports whether a non-empty reference is already used by any payment.
	ReferenceNumberExists(ctx context.Context, referenceNumber string) (bool, error)
}

// CollectionWriter defines write operations for cash and electronic collections
type CollectionWriter interface {
	SaveCashSubmission(ctx context.Context, sub domain.CashSubmission) error

	// VerifyCashSubmission flips verified false->true, apperrors.ErrNotFound if already verified.
	VerifyCashSubmission(ctx context.Context, submissionID, verifierID string, at time.Time) error

	SaveHandover(ctx context.Context, h domain.CashHandover) error

	// VerifyHandover flips verified false->true, apperrors.ErrNotFound if already verified.
	VerifyHandover(ctx context.Context, handoverID, verifierID string, at time.Time) error

	// AutoVerifyHandovers verifies every unverified handover on the shift and flags them as automatic.
	AutoVerifyHandovers(ctx context.Context, shiftID, verifierID string, at time.Time) ([]string, error)

	// SaveElectronicPayment inserts a pending payment. A used reference is apperrors.ErrConflict.
	SaveElectronicPayment(ctx context.Context, p domain.ElectronicPayment) error

	// DecideElectronicPayment moves a pending payment to status, apperrors.ErrNotFound unless pending.
	DecideElectronicPayment(ctx context.Context, paymentID string, status domain.PaymentStatus, verifierID string, at time.Time) error

	SaveExpense(ctx context.Context, e domain.Expense) error
}

// SalaryAdjustmentReader defines read operations for salary adjustments
type SalaryAdjustmentReader interface {
	ListAdjustments(ctx context.Context, filter domain.AdjustmentFilter) ([]domain.SalaryAdjustment, error)
}

// SalaryAdjustmentWriter defines write operations for salary adjustments
type SalaryAdjustmentWriter interface {
	SaveSalaryAdjustment(ctx context.Context, adj domain.SalaryAdjustment) error
}

// ReconciliationReader loads complete shift ledgers for the calculator.
type ReconciliationReader interface {
	// LoadShiftLedger returns the shift and every record attached to it.
	LoadShiftLedger(ctx context.Context, shiftID string) (*domain.ShiftLedger, error)

	// LoadTerminalLedgers returns ledgers of the company's shifts at the terminal started in [from, to).
	LoadTerminalLedgers(ctx context.Context, companyID, terminalID string, from, to time.Time) ([]domain.ShiftLedger, error)
}

// LedgerReader combines every read interface of the ledger.
type LedgerReader interface {
	ShiftReader
	MeterReadingReader
	CollectionReader
	SalaryAdjustmentReader
	ReconciliationReader
}

// LedgerTx is the view of the ledger inside one atomic transaction.
type LedgerTx interface {
	LedgerReader
	ShiftWriter
	MeterReadingWriter
	CollectionWriter
	SalaryAdjustmentWriter
}

// LedgerStore runs operations against the ledger. Every engine operation uses
// exactly one WithinTx or ReadOnly call per atomic step.
type LedgerStore interface {
	// WithinTx runs fn in a transaction, committing when fn returns nil.
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error

	// ReadOnly runs fn against a consistent snapshot.
	ReadOnly(ctx context.Context, fn func(r LedgerReader) error) error
}
