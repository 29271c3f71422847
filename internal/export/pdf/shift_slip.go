// Package pdf renders a printable reconciliation slip for one shift.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const fontName = "Helvetica"

// ShiftSlip renders shift ledgers with the core Helvetica font.
type ShiftSlip struct {
	precision int
}

// NewShiftSlip creates a renderer that prints money with precision decimals.
func NewShiftSlip(precision int) *ShiftSlip {
	return &ShiftSlip{precision: precision}
}

func (s *ShiftSlip) RenderSlip(ledger domain.ShiftLedger, summary domain.ShiftSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Shift reconciliation "+ledger.Shift.ShiftID, false)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, "Shift reconciliation", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 10)
	shift := ledger.Shift
	end := "open"
	if shift.EndTime != nil {
		end = formatTime(*shift.EndTime)
	}
	for _, line := range []string{
		"Shift: " + shift.ShiftID,
		"Worker: " + shift.WorkerID,
		"Terminal: " + shift.TerminalID,
		"Started: " + formatTime(shift.StartTime),
		"Ended: " + end,
	} {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	s.section(pdf, "Meter readings")
	widths := []float64{45, 30, 30, 30, 45}
	drawRow(pdf, []string{"Pump", "Opening", "Closing", "Liters", "Expected"}, widths, true)
	for _, r := range ledger.Readings {
		closing, expected := "open", "-"
		if r.Closing != nil {
			closing = utils.FormatLiters(*r.Closing)
		}
		if r.ExpectedAmount != nil {
			expected = s.money(*r.ExpectedAmount)
		}
		if r.ForceClosed {
			expected += " (forced)"
		}
		drawRow(pdf, []string{r.PumpID, utils.FormatLiters(r.Opening), closing, utils.FormatLiters(r.LitersSold()), expected}, widths, false)
	}
	pdf.Ln(3)

	s.section(pdf, "Collections")
	totals := [][2]string{
		{"Expected cash", s.money(summary.ExpectedCash)},
		{"Submitted cash", s.money(summary.SubmittedCash)},
		{"Handovers", s.money(summary.HandoverTotal)},
		{"Electronic payments", s.money(summary.ElectronicTotal)},
		{"Expenses", s.money(summary.ExpenseTotal)},
		{"Total collected", s.money(summary.TotalCollected)},
		{"Fuel sold (L)", utils.FormatLiters(summary.TotalFuelSold)},
	}
	for _, t := range totals {
		drawRow(pdf, []string{t[0], t[1]}, []float64{90, 60}, false)
	}
	pdf.Ln(3)

	pdf.SetFont(fontName, "B", 12)
	variance := fmt.Sprintf("Cash variance: %s (%s)", s.money(summary.CashVariance), summary.Status)
	if summary.Status == domain.VarianceShortage {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(0, 8, variance, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if summary.OpenReadings > 0 {
		pdf.SetFont(fontName, "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d reading(s) still open; their volume is not counted.", summary.OpenReadings), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ShiftSlip) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
}

func (s *ShiftSlip) money(d decimal.Decimal) string {
	return utils.FormatWithPrecision(d, s.precision)
}

func drawRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 MST")
}
