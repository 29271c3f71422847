package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/core/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// MockWorkbookRenderer is a mock type for the MetricsWorkbookRenderer interface
type MockWorkbookRenderer struct {
	mock.Mock
}

func (m *MockWorkbookRenderer) RenderMetrics(metrics domain.TerminalMetrics) ([]byte, error) {
	args := m.Called(metrics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSlipRenderer is a mock type for the ShiftSlipRenderer interface
type MockSlipRenderer struct {
	mock.Mock
}

func (m *MockSlipRenderer) RenderSlip(ledger domain.ShiftLedger, summary domain.ShiftSummary) ([]byte, error) {
	args := m.Called(ledger, summary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type ReconciliationServiceTestSuite struct {
	suite.Suite
	e     *engine
	ctx   context.Context
	shift *domain.Shift
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.e = newEngine(services.ShiftPolicy{ForceClose: domain.ForceCloseSkip})
	suite.ctx = context.Background()
	suite.shift = suite.seedShift()
}

// seedShift records one shift with every kind of collection:
// 40 L at 2.50 expected 100, cash 80, electronic 20 (rejected) + 15, handover 30, expense 5,
// and one reading left open.
func (suite *ReconciliationServiceTestSuite) seedShift() *domain.Shift {
	t := suite.T()
	shift := suite.e.startShift(t, workerA)
	r := suite.e.openReading(t, workerA, shift.ShiftID, "pump-2", "0")
	suite.e.closeReading(t, workerA, r.ReadingID, "40")
	suite.e.openReading(t, workerA, shift.ShiftID, "pump-3", "0")

	_, err := suite.e.collections.SubmitCash(suite.ctx, workerA, dto.SubmitCashRequest{ShiftID: shift.ShiftID, Amount: dec("80")})
	suite.Require().NoError(err)

	rejected, err := suite.e.collections.RecordElectronicPayment(suite.ctx, workerA, dto.RecordElectronicPaymentRequest{
		ShiftID: shift.ShiftID, Amount: dec("20"), PaymentMethod: domain.PaymentPOS, ReferenceNumber: "POS-1",
	})
	suite.Require().NoError(err)
	_, err = suite.e.collections.VerifyElectronicPayment(suite.ctx, cashier, rejected.PaymentID, dto.VerifyElectronicPaymentRequest{Decision: domain.PaymentRejected})
	suite.Require().NoError(err)
	_, err = suite.e.collections.RecordElectronicPayment(suite.ctx, workerA, dto.RecordElectronicPaymentRequest{
		ShiftID: shift.ShiftID, Amount: dec("15"), PaymentMethod: domain.PaymentTransfer,
	})
	suite.Require().NoError(err)

	_, err = suite.e.collections.RecordHandover(suite.ctx, workerA, dto.RecordHandoverRequest{ShiftID: shift.ShiftID, ToUserID: cashier.UserID, Amount: dec("30")})
	suite.Require().NoError(err)
	_, err = suite.e.collections.RecordExpense(suite.ctx, workerA, dto.RecordExpenseRequest{ShiftID: shift.ShiftID, Amount: dec("5"), Category: "supplies"})
	suite.Require().NoError(err)
	return shift
}

func (suite *ReconciliationServiceTestSuite) TestSummarizeShift() {
	summary, err := suite.e.recon.SummarizeShift(suite.ctx, workerA, suite.shift.ShiftID)
	suite.Require().NoError(err)

	t := suite.T()
	suite.Equal(suite.shift.ShiftID, summary.ShiftID)
	requireDecimal(t, "40", summary.TotalFuelSold)
	requireDecimal(t, "100", summary.ExpectedCash)
	requireDecimal(t, "80", summary.SubmittedCash)
	requireDecimal(t, "30", summary.HandoverTotal)
	requireDecimal(t, "35", summary.ElectronicTotal)
	requireDecimal(t, "20", summary.ElectronicByMethod[domain.PaymentPOS])
	requireDecimal(t, "15", summary.ElectronicByMethod[domain.PaymentTransfer])
	requireDecimal(t, "5", summary.ExpenseTotal)
	requireDecimal(t, "115", summary.TotalCollected)
	requireDecimal(t, "-20", summary.CashVariance)
	suite.Equal(domain.VarianceShortage, summary.Status)
	suite.Equal(1, summary.OpenReadings)
}

func (suite *ReconciliationServiceTestSuite) TestSummarizeShift_IsRepeatable() {
	first, err := suite.e.recon.SummarizeShift(suite.ctx, boss, suite.shift.ShiftID)
	suite.Require().NoError(err)
	second, err := suite.e.recon.SummarizeShift(suite.ctx, boss, suite.shift.ShiftID)
	suite.Require().NoError(err)
	suite.Equal(first, second)
}

func (suite *ReconciliationServiceTestSuite) TestSummarizeShift_OtherCompanyAndUnknown() {
	_, err := suite.e.recon.SummarizeShift(suite.ctx, outsider, suite.shift.ShiftID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.e.recon.SummarizeShift(suite.ctx, workerA, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestSummarizeTerminal_Windows() {
	_, err := suite.e.shifts.EndShift(suite.ctx, workerA, suite.shift.ShiftID, dto.EndShiftRequest{})
	suite.Require().NoError(err)

	// Saturday of the same ISO week.
	suite.e.clock.Set(time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC))
	saturday := suite.e.startShift(suite.T(), workerB)
	_, err = suite.e.collections.SubmitCash(suite.ctx, workerB, dto.SubmitCashRequest{ShiftID: saturday.ShiftID, Amount: dec("10")})
	suite.Require().NoError(err)
	_, err = suite.e.shifts.EndShift(suite.ctx, workerB, saturday.ShiftID, dto.EndShiftRequest{})
	suite.Require().NoError(err)

	// Next month, different week.
	suite.e.clock.Set(time.Date(2024, 4, 1, 6, 0, 0, 0, time.UTC))
	suite.e.startShift(suite.T(), workerB)

	// Another company on the same terminal id is never counted.
	suite.e.clock.Set(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	suite.e.startShift(suite.T(), domain.Actor{UserID: "worker-y", Role: domain.RoleWorker, CompanyID: "company-2", TerminalID: "terminal-1"})

	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	day, err := suite.e.recon.SummarizeTerminal(suite.ctx, boss, "terminal-1", domain.PeriodDay, anchor)
	suite.Require().NoError(err)
	suite.Equal(1, day.ShiftCount)
	suite.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), day.From)
	suite.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), day.To)
	requireDecimal(suite.T(), "80", day.SubmittedCash)
	requireDecimal(suite.T(), "-20", day.CashVariance)
	suite.Equal(1, day.OpenReadings)

	week, err := suite.e.recon.SummarizeTerminal(suite.ctx, boss, "terminal-1", domain.PeriodWeek, anchor)
	suite.Require().NoError(err)
	suite.Equal(2, week.ShiftCount)
	suite.Equal(time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), week.From)
	requireDecimal(suite.T(), "90", week.SubmittedCash)
	requireDecimal(suite.T(), "-10", week.CashVariance)
	suite.Require().Len(week.Shifts, 2)
	suite.Equal(suite.shift.ShiftID, week.Shifts[0].ShiftID)
	suite.Equal(saturday.ShiftID, week.Shifts[1].ShiftID)

	month, err := suite.e.recon.SummarizeTerminal(suite.ctx, boss, "terminal-1", domain.PeriodMonth, anchor)
	suite.Require().NoError(err)
	suite.Equal(2, month.ShiftCount)

	empty, err := suite.e.recon.SummarizeTerminal(suite.ctx, boss, "terminal-7", domain.PeriodMonth, anchor)
	suite.Require().NoError(err)
	suite.Equal(0, empty.ShiftCount)
	requireDecimal(suite.T(), "0", empty.CashVariance)
}

func (suite *ReconciliationServiceTestSuite) TestSummarizeTerminal_UnknownPeriod() {
	_, err := suite.e.recon.SummarizeTerminal(suite.ctx, boss, "terminal-1", domain.Period("year"), time.Now())
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestExportTerminalMetrics() {
	workbook := new(MockWorkbookRenderer)
	workbook.On("RenderMetrics", mock.MatchedBy(func(m domain.TerminalMetrics) bool {
		return m.TerminalID == "terminal-1" && m.ShiftCount == 1
	})).Return([]byte("xlsx-bytes"), nil).Once()
	svc := services.NewReconciliationService(suite.e.store, workbook, new(MockSlipRenderer))

	doc, err := svc.ExportTerminalMetrics(suite.ctx, boss, "terminal-1", domain.PeriodDay, time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Equal("terminal_terminal-1_day_2024-03-01.xlsx", doc.FileName)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc.ContentType)
	suite.Equal([]byte("xlsx-bytes"), doc.Content)
	workbook.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestExportTerminalMetrics_RenderFailure() {
	workbook := new(MockWorkbookRenderer)
	workbook.On("RenderMetrics", mock.Anything).Return(nil, errors.New("sheet limit")).Once()
	svc := services.NewReconciliationService(suite.e.store, workbook, new(MockSlipRenderer))

	_, err := svc.ExportTerminalMetrics(suite.ctx, boss, "terminal-1", domain.PeriodDay, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.Error(err)
	suite.Equal(apperrors.ErrInternal, apperrors.Kind(err))
}

func (suite *ReconciliationServiceTestSuite) TestRenderShiftSlip() {
	slip := new(MockSlipRenderer)
	slip.On("RenderSlip",
		mock.MatchedBy(func(l domain.ShiftLedger) bool { return l.Shift.ShiftID == suite.shift.ShiftID && len(l.Readings) == 2 }),
		mock.MatchedBy(func(s domain.ShiftSummary) bool { return s.Status == domain.VarianceShortage }),
	).Return([]byte("%PDF-1.3"), nil).Once()
	svc := services.NewReconciliationService(suite.e.store, new(MockWorkbookRenderer), slip)

	doc, err := svc.RenderShiftSlip(suite.ctx, workerA, suite.shift.ShiftID)
	suite.Require().NoError(err)
	suite.Equal("shift_"+suite.shift.ShiftID+".pdf", doc.FileName)
	suite.Equal("application/pdf", doc.ContentType)
	slip.AssertExpectations(suite.T())

	_, err = svc.RenderShiftSlip(suite.ctx, outsider, suite.shift.ShiftID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
