package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const (
	cashColumns     = `submission_id, company_id, shift_id, user_id, amount, verified, verified_by, verified_at, notes, created_at`
	handoverColumns = `handover_id, company_id, shift_id, from_user_id, to_user_id, amount, verified, verified_by, verified_at,
		auto_verified, notes, created_at`
	paymentColumns = `payment_id, company_id, shift_id, user_id, amount, payment_method, reference_number, status,
		verified_by, verified_at, notes, created_at`
	expenseColumns = `expense_id, company_id, shift_id, user_id, amount, category, description, created_at`
)

// collectOne scans exactly one row into M and converts it with fn.
func collectOne[M any, D any](rows pgx.Rows, what string, fn func(M) D) (*D, error) {
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, notFoundOr(err, what)
	}
	d := fn(m)
	return &d, nil
}

func (t *ledgerTx) FindCashSubmissionByID(ctx context.Context, submissionID string) (*domain.CashSubmission, error) {
	rows, err := t.q.Query(ctx, `SELECT `+cashColumns+` FROM cash_submissions WHERE submission_id = $1;`, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash submission %s: %w", submissionID, err)
	}
	return collectOne(rows, "cash submission "+submissionID, mapping.ToDomainCashSubmission)
}

func (t *ledgerTx) FindHandoverByID(ctx context.Context, handoverID string) (*domain.CashHandover, error) {
	rows, err := t.q.Query(ctx, `SELECT `+handoverColumns+` FROM cash_handovers WHERE handover_id = $1;`, handoverID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash handover %s: %w", handoverID, err)
	}
	return collectOne(rows, "cash handover "+handoverID, mapping.ToDomainCashHandover)
}

func (t *ledgerTx) FindElectronicPaymentByID(ctx context.Context, paymentID string) (*domain.ElectronicPayment, error) {
	rows, err := t.q.Query(ctx, `SELECT `+paymentColumns+` FROM electronic_payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query electronic payment %s: %w", paymentID, err)
	}
	return collectOne(rows, "electronic payment "+paymentID, mapping.ToDomainElectronicPayment)
}

func (t *ledgerTx) ReferenceNumberExists(ctx context.Context, referenceNumber string) (bool, error) {
	if referenceNumber == "" {
		return false, nil
	}
	var exists bool
	err := t.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM electronic_payments WHERE reference_number = $1);`, referenceNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reference number: %w", err)
	}
	return exists, nil
}

func (t *ledgerTx) SaveCashSubmission(ctx context.Context, sub domain.CashSubmission) error {
	query := `
		INSERT INTO cash_submissions (submission_id, company_id, shift_id, user_id, amount, verified, verified_by, verified_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := t.q.Exec(ctx, query,
		sub.SubmissionID, sub.CompanyID, sub.ShiftID, sub.UserID, sub.Amount,
		sub.Verified, sub.VerifiedBy, sub.VerifiedAt, sub.Notes, sub.CreatedAt,
	)
	if err != nil {
		return wrapWriteErr(err, "cash submission "+sub.SubmissionID+" already exists", "failed to save cash submission %s", sub.SubmissionID)
	}
	return nil
}

func (t *ledgerTx) VerifyCashSubmission(ctx context.Context, submissionID, verifierID string, at time.Time) error {
	query := `
		UPDATE cash_submissions SET verified = TRUE, verified_by = $2, verified_at = $3
		WHERE submission_id = $1 AND verified = FALSE;
	`
	tag, err := t.q.Exec(ctx, query, submissionID, verifierID, at)
	if err != nil {
		return fmt.Errorf("failed to verify cash submission %s: %w", submissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: unverified cash submission %s", apperrors.ErrNotFound, submissionID)
	}
	return nil
}

func (t *ledgerTx) SaveHandover(ctx context.Context, h domain.CashHandover) error {
	query := `
		INSERT INTO cash_handovers (handover_id, company_id, shift_id, from_user_id, to_user_id, amount,
			verified, verified_by, verified_at, auto_verified, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := t.q.Exec(ctx, query,
		h.HandoverID, h.CompanyID, h.ShiftID, h.FromUserID, h.ToUserID, h.Amount,
		h.Verified, h.VerifiedBy, h.VerifiedAt, h.AutoVerified, h.Notes, h.CreatedAt,
	)
	if err != nil {
		return wrapWriteErr(err, "cash handover "+h.HandoverID+" already exists", "failed to save cash handover %s", h.HandoverID)
	}
	return nil
}

func (t *ledgerTx) VerifyHandover(ctx context.Context, handoverID, verifierID string, at time.Time) error {
	query := `
		UPDATE cash_handovers SET verified = TRUE, verified_by = $2, verified_at = $3
		WHERE handover_id = $1 AND verified = FALSE;
	`
	tag, err := t.q.Exec(ctx, query, handoverID, verifierID, at)
	if err != nil {
		return fmt.Errorf("failed to verify cash handover %s: %w", handoverID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: unverified cash handover %s", apperrors.ErrNotFound, handoverID)
	}
	return nil
}

func (t *ledgerTx) AutoVerifyHandovers(ctx context.Context, shiftID, verifierID string, at time.Time) ([]string, error) {
	query := `
		UPDATE cash_handovers SET verified = TRUE, auto_verified = TRUE, verified_by = $2, verified_at = $3
		WHERE shift_id = $1 AND verified = FALSE
		RETURNING handover_id;
	`
	rows, err := t.q.Query(ctx, query, shiftID, verifierID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-verify handovers of shift %s: %w", shiftID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan auto-verified handovers: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// SaveElectronicPayment inserts a payment. The partial unique index on
// non-empty reference numbers is the authority on duplicates.
func (t *ledgerTx) SaveElectronicPayment(ctx context.Context, p domain.ElectronicPayment) error {
	query := `
		INSERT INTO electronic_payments (payment_id, company_id, shift_id, user_id, amount, payment_method,
			reference_number, status, verified_by, verified_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := t.q.Exec(ctx, query,
		p.PaymentID, p.CompanyID, p.ShiftID, p.UserID, p.Amount, string(p.PaymentMethod),
		p.ReferenceNumber, string(p.Status), p.VerifiedBy, p.VerifiedAt, p.Notes, p.CreatedAt,
	)
	if err != nil {
		return wrapWriteErr(err, "reference number "+p.ReferenceNumber+" already used", "failed to save electronic payment %s", p.PaymentID)
	}
	return nil
}

func (t *ledgerTx) DecideElectronicPayment(ctx context.Context, paymentID string, status domain.PaymentStatus, verifierID string, at time.Time) error {
	query := `
		UPDATE electronic_payments SET status = $2, verified_by = $3, verified_at = $4
		WHERE payment_id = $1 AND status = 'pending';
	`
	tag, err := t.q.Exec(ctx, query, paymentID, string(status), verifierID, at)
	if err != nil {
		return fmt.Errorf("failed to decide electronic payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pending electronic payment %s", apperrors.ErrNotFound, paymentID)
	}
	return nil
}

func (t *ledgerTx) SaveExpense(ctx context.Context, e domain.Expense) error {
	query := `
		INSERT INTO shift_expenses (expense_id, company_id, shift_id, user_id, amount, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := t.q.Exec(ctx, query, e.ExpenseID, e.CompanyID, e.ShiftID, e.UserID, e.Amount, e.Category, e.Description, e.CreatedAt)
	if err != nil {
		return wrapWriteErr(err, "expense "+e.ExpenseID+" already exists", "failed to save expense %s", e.ExpenseID)
	}
	return nil
}
