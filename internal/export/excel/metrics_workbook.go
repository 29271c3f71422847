// Package excel renders terminal metrics as an xlsx workbook.
package excel

import (
	"fmt"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	shiftsSheet  = "Shifts"
)

var paymentMethods = []domain.PaymentMethod{
	domain.PaymentPOS,
	domain.PaymentTransfer,
	domain.PaymentMobileMoney,
	domain.PaymentCard,
}

// MetricsWorkbook renders terminal metrics into a two-sheet workbook.
type MetricsWorkbook struct {
	precision int32
}

// NewMetricsWorkbook creates a renderer that rounds money to precision decimals.
func NewMetricsWorkbook(precision int) *MetricsWorkbook {
	return &MetricsWorkbook{precision: int32(precision)}
}

func (w *MetricsWorkbook) RenderMetrics(metrics domain.TerminalMetrics) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := w.writeSummary(file, metrics); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(shiftsSheet); err != nil {
		return nil, err
	}
	if err := w.writeShifts(file, metrics.Shifts); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *MetricsWorkbook) writeSummary(file *excelize.File, m domain.TerminalMetrics) error {
	rows := [][]any{
		{"Terminal", m.TerminalID},
		{"Period", string(m.Period)},
		{"From", m.From.Format(time.DateOnly)},
		{"To (exclusive)", m.To.Format(time.DateOnly)},
		{"Shifts", m.ShiftCount},
		{"Open readings", m.OpenReadings},
		{"Fuel sold (L)", w.liters(m.TotalFuelSold)},
		{"Expected cash", w.money(m.ExpectedCash)},
		{"Submitted cash", w.money(m.SubmittedCash)},
		{"Handovers", w.money(m.HandoverTotal)},
		{"Electronic payments", w.money(m.ElectronicTotal)},
	}
	for _, method := range paymentMethods {
		rows = append(rows, []any{"  " + string(method), w.money(m.ElectronicByMethod[method])})
	}
	rows = append(rows,
		[]any{"Expenses", w.money(m.ExpenseTotal)},
		[]any{"Total collected", w.money(m.TotalCollected)},
		[]any{"Cash variance", w.money(m.CashVariance)},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	_ = file.SetColWidth(summarySheet, "A", "A", 24)
	_ = file.SetColWidth(summarySheet, "B", "B", 20)
	return nil
}

func (w *MetricsWorkbook) writeShifts(file *excelize.File, shifts []domain.ShiftSummary) error {
	headers := []any{
		"Shift", "Fuel sold (L)", "Expected cash", "Submitted cash", "Handovers",
		"Electronic", "Expenses", "Total collected", "Cash variance", "Open readings", "Status",
	}
	if err := file.SetSheetRow(shiftsSheet, "A1", &headers); err != nil {
		return err
	}
	for i, s := range shifts {
		row := []any{
			s.ShiftID,
			w.liters(s.TotalFuelSold),
			w.money(s.ExpectedCash),
			w.money(s.SubmittedCash),
			w.money(s.HandoverTotal),
			w.money(s.ElectronicTotal),
			w.money(s.ExpenseTotal),
			w.money(s.TotalCollected),
			w.money(s.CashVariance),
			s.OpenReadings,
			string(s.Status),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(shiftsSheet, cell, &row); err != nil {
			return err
		}
	}
	_ = file.SetColWidth(shiftsSheet, "A", "A", 38)
	_ = file.SetColWidth(shiftsSheet, "B", "K", 16)
	return nil
}

func (w *MetricsWorkbook) money(d decimal.Decimal) float64 {
	return d.Round(w.precision).InexactFloat64()
}

func (w *MetricsWorkbook) liters(d decimal.Decimal) float64 {
	return d.Round(utils.LiterPrecision).InexactFloat64()
}
