package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/core/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

type CollectionServiceTestSuite struct {
	suite.Suite
	e     *engine
	ctx   context.Context
	shift *domain.Shift
}

func (suite *CollectionServiceTestSuite) SetupTest() {
	suite.e = newEngine(services.DefaultShiftPolicy())
	suite.ctx = context.Background()
	suite.shift = suite.e.startShift(suite.T(), workerA)
}

func (suite *CollectionServiceTestSuite) submitCash(amount string) *domain.CashSubmission {
	sub, err := suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{ShiftID: suite.shift.ShiftID, Amount: dec(amount)})
	suite.Require().NoError(err)
	return sub
}

func (suite *CollectionServiceTestSuite) recordPayment(amount, reference string) *domain.ElectronicPayment {
	p, err := suite.e.collections.RecordElectronicPayment(suite.ctx, workerA, dto.RecordElectronicPaymentRequest{
		ShiftID:         suite.shift.ShiftID,
		Amount:          dec(amount),
		PaymentMethod:   domain.PaymentPOS,
		ReferenceNumber: reference,
	})
	suite.Require().NoError(err)
	return p
}

func (suite *CollectionServiceTestSuite) TestSubmitCash_Success() {
	sub := suite.submitCash("120.75")

	suite.False(sub.Verified)
	suite.Nil(sub.VerifiedBy)
	suite.Equal(workerA.UserID, sub.UserID)
	requireDecimal(suite.T(), "120.75", sub.Amount)
	suite.Equal([]domain.AuditAction{domain.AuditCreate}, suite.e.audit.actionsFor(domain.EntityCashSubmission))
}

func (suite *CollectionServiceTestSuite) TestSubmitCash_Invalid() {
	_, err := suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{ShiftID: suite.shift.ShiftID, Amount: dec("0")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{Amount: dec("10")})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CollectionServiceTestSuite) TestSubmitCash_AmountFinerThanStored() {
	_, err := suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{ShiftID: suite.shift.ShiftID, Amount: dec("0.000000001")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.e.collections.RecordElectronicPayment(suite.ctx, workerA, dto.RecordElectronicPaymentRequest{
		ShiftID: suite.shift.ShiftID, Amount: dec("10.00001"), PaymentMethod: domain.PaymentPOS,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	cash, err := suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{ShiftID: suite.shift.ShiftID, Amount: dec("10.1234")})
	suite.Require().NoError(err)
	requireDecimal(suite.T(), "10.1234", cash.Amount)
}

func (suite *CollectionServiceTestSuite) TestSubmitCash_ClosedShift() {
	_, err := suite.e.shifts.EndShift(suite.ctx, workerA, suite.shift.ShiftID, dto.EndShiftRequest{})
	suite.Require().NoError(err)

	_, err = suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{ShiftID: suite.shift.ShiftID, Amount: dec("10")})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CollectionServiceTestSuite) TestVerifyCash() {
	sub := suite.submitCash("100")

	_, err := suite.e.collections.VerifyCash(suite.ctx, workerA, sub.SubmissionID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.e.collections.VerifyCash(suite.ctx, workerB, sub.SubmissionID)
	suite.ErrorIs(err, apperrors.ErrForbidden, "workers cannot verify each other")

	_, err = suite.e.collections.VerifyCash(suite.ctx, outsider, sub.SubmissionID)
	suite.ErrorIs(err, apperrors.ErrNotFound, "other tenants cannot see it")

	verified, err := suite.e.collections.VerifyCash(suite.ctx, cashier, sub.SubmissionID)
	suite.Require().NoError(err)
	suite.True(verified.Verified)
	suite.Require().NotNil(verified.VerifiedBy)
	suite.Equal(cashier.UserID, *verified.VerifiedBy)
	suite.NotNil(verified.VerifiedAt)

	_, err = suite.e.collections.VerifyCash(suite.ctx, boss, sub.SubmissionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Equal([]domain.AuditAction{domain.AuditCreate, domain.AuditVerify}, suite.e.audit.actionsFor(domain.EntityCashSubmission))
}

func (suite *CollectionServiceTestSuite) TestVerify_SubmitterCannotVerifyOwnRecords() {
	shift, err := suite.e.shifts.StartShift(suite.ctx, boss, dto.StartShiftRequest{TerminalID: "terminal-1"})
	suite.Require().NoError(err)

	sub, err := suite.e.collections.SubmitCash(suite.ctx, boss, dto.SubmitCashRequest{ShiftID: shift.ShiftID, Amount: dec("40")})
	suite.Require().NoError(err)
	_, err = suite.e.collections.VerifyCash(suite.ctx, boss, sub.SubmissionID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	p, err := suite.e.collections.RecordElectronicPayment(suite.ctx, boss, dto.RecordElectronicPaymentRequest{
		ShiftID: shift.ShiftID, Amount: dec("15"), PaymentMethod: domain.PaymentTransfer, ReferenceNumber: "TRF-BOSS",
	})
	suite.Require().NoError(err)
	_, err = suite.e.collections.VerifyElectronicPayment(suite.ctx, boss, p.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentVerified})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.e.collections.VerifyCash(suite.ctx, cashier, sub.SubmissionID)
	suite.NoError(err)
}

func (suite *CollectionServiceTestSuite) TestRecordHandover() {
	_, err := suite.e.collections.RecordHandover(suite.ctx, workerA, dto.RecordHandoverRequest{
		ShiftID: suite.shift.ShiftID, ToUserID: workerA.UserID, Amount: dec("10"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	h, err := suite.e.collections.RecordHandover(suite.ctx, workerA, dto.RecordHandoverRequest{
		ShiftID: suite.shift.ShiftID, ToUserID: cashier.UserID, Amount: dec("300"), Notes: "drop safe",
	})
	suite.Require().NoError(err)
	suite.Equal(workerA.UserID, h.FromUserID)
	suite.Equal(cashier.UserID, h.ToUserID)
	suite.False(h.Verified)
	suite.False(h.AutoVerified)
}

func (suite *CollectionServiceTestSuite) TestVerifyHandover() {
	h, err := suite.e.collections.RecordHandover(suite.ctx, workerA, dto.RecordHandoverRequest{
		ShiftID: suite.shift.ShiftID, ToUserID: cashier.UserID, Amount: dec("300"),
	})
	suite.Require().NoError(err)

	_, err = suite.e.collections.VerifyHandover(suite.ctx, workerA, h.HandoverID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	verified, err := suite.e.collections.VerifyHandover(suite.ctx, cashier, h.HandoverID)
	suite.Require().NoError(err)
	suite.True(verified.Verified)
	suite.False(verified.AutoVerified)

	_, err = suite.e.collections.VerifyHandover(suite.ctx, cashier, h.HandoverID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// Already verified handovers are left alone by shift close-out.
	result, err := suite.e.shifts.EndShift(suite.ctx, workerA, suite.shift.ShiftID, dto.EndShiftRequest{})
	suite.Require().NoError(err)
	suite.Empty(result.Cleanup.AutoVerifiedHandover)
}

func (suite *CollectionServiceTestSuite) TestRecordElectronicPayment_DuplicateReference() {
	p := suite.recordPayment("45", "TXN-001")
	suite.Equal(domain.PaymentPending, p.Status)

	_, err := suite.e.collections.RecordElectronicPayment(suite.ctx, workerA, dto.RecordElectronicPaymentRequest{
		ShiftID: suite.shift.ShiftID, Amount: dec("45"), PaymentMethod: domain.PaymentTransfer, ReferenceNumber: "TXN-001",
	})
	suite.ErrorIs(err, apperrors.ErrConflict)

	// References are unique across shifts too.
	other := suite.e.startShift(suite.T(), workerB)
	_, err = suite.e.collections.RecordElectronicPayment(suite.ctx, workerB, dto.RecordElectronicPaymentRequest{
		ShiftID: other.ShiftID, Amount: dec("5"), PaymentMethod: domain.PaymentCard, ReferenceNumber: "TXN-001",
	})
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CollectionServiceTestSuite) TestRecordElectronicPayment_EmptyReferenceRepeats() {
	suite.recordPayment("10", "")
	suite.recordPayment("10", "")
}

func (suite *CollectionServiceTestSuite) TestRecordElectronicPayment_UnknownMethod() {
	_, err := suite.e.collections.RecordElectronicPayment(suite.ctx, workerA, dto.RecordElectronicPaymentRequest{
		ShiftID: suite.shift.ShiftID, Amount: dec("10"), PaymentMethod: "cheque",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CollectionServiceTestSuite) TestVerifyElectronicPayment_RejectIsFinal() {
	p := suite.recordPayment("60", "MM-77")

	_, err := suite.e.collections.VerifyElectronicPayment(suite.ctx, workerB, p.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentVerified})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.e.collections.VerifyElectronicPayment(suite.ctx, cashier, p.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentPending})
	suite.ErrorIs(err, apperrors.ErrValidation)

	rejected, err := suite.e.collections.VerifyElectronicPayment(suite.ctx, cashier, p.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentRejected})
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentRejected, rejected.Status)
	suite.Require().NotNil(rejected.VerifiedBy)
	suite.Equal(cashier.UserID, *rejected.VerifiedBy)

	_, err = suite.e.collections.VerifyElectronicPayment(suite.ctx, boss, p.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentVerified})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Equal([]domain.AuditAction{domain.AuditCreate, domain.AuditReject}, suite.e.audit.actionsFor(domain.EntityElectronicPayment))
}

func (suite *CollectionServiceTestSuite) TestVerifyElectronicPayment_Verified() {
	p := suite.recordPayment("60", "")

	verified, err := suite.e.collections.VerifyElectronicPayment(suite.ctx, boss, p.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentVerified})
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentVerified, verified.Status)
	suite.Contains(suite.e.audit.actionsFor(domain.EntityElectronicPayment), domain.AuditVerify)
}

func (suite *CollectionServiceTestSuite) TestRecordExpense() {
	e, err := suite.e.collections.RecordExpense(suite.ctx, workerA, dto.RecordExpenseRequest{
		ShiftID: suite.shift.ShiftID, Amount: dec("12.40"), Category: "cleaning", Description: "mop heads",
	})
	suite.Require().NoError(err)
	suite.Equal("cleaning", e.Category)

	_, err = suite.e.collections.RecordExpense(suite.ctx, workerA, dto.RecordExpenseRequest{
		ShiftID: suite.shift.ShiftID, Amount: dec("1"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.e.collections.RecordExpense(suite.ctx, workerB, dto.RecordExpenseRequest{
		ShiftID: suite.shift.ShiftID, Amount: dec("1"), Category: "misc",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCollectionService(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}
