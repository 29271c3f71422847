package accounting

import (
	"sort"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizeShift aggregates everything attached to a shift. Open readings
// contribute nothing to fuel sold or expected cash and are counted instead.
// Verification state never filters an item out.
func SummarizeShift(ledger domain.ShiftLedger) domain.ShiftSummary {
	summary := domain.ShiftSummary{
		ShiftID:            ledger.Shift.ShiftID,
		TotalFuelSold:      decimal.Zero,
		ExpectedCash:       decimal.Zero,
		SubmittedCash:      decimal.Zero,
		HandoverTotal:      decimal.Zero,
		ElectronicTotal:    decimal.Zero,
		ElectronicByMethod: make(map[domain.PaymentMethod]decimal.Decimal),
		ExpenseTotal:       decimal.Zero,
	}

	for _, reading := range ledger.Readings {
		if reading.IsOpen() {
			summary.OpenReadings++
			continue
		}
		summary.TotalFuelSold = summary.TotalFuelSold.Add(reading.LitersSold())
		if reading.ExpectedAmount != nil {
			summary.ExpectedCash = summary.ExpectedCash.Add(*reading.ExpectedAmount)
		}
	}

	for _, sub := range ledger.CashSubmissions {
		summary.SubmittedCash = summary.SubmittedCash.Add(sub.Amount)
	}

	// Handovers move custody of cash already counted; they stay a separate total.
	for _, h := range ledger.Handovers {
		summary.HandoverTotal = summary.HandoverTotal.Add(h.Amount)
	}

	for _, p := range ledger.ElectronicPayments {
		summary.ElectronicTotal = summary.ElectronicTotal.Add(p.Amount)
		summary.ElectronicByMethod[p.PaymentMethod] = summary.ElectronicByMethod[p.PaymentMethod].Add(p.Amount)
	}

	for _, e := range ledger.Expenses {
		summary.ExpenseTotal = summary.ExpenseTotal.Add(e.Amount)
	}

	summary.TotalCollected = summary.SubmittedCash.Add(summary.ElectronicTotal)
	summary.CashVariance = CashVariance(summary.ExpectedCash, summary.SubmittedCash)
	summary.Status = VarianceStatusOf(summary.CashVariance)
	return summary
}

// CashVariance is submitted minus expected. Positive is excess, negative is shortage.
func CashVariance(expected, submitted decimal.Decimal) decimal.Decimal {
	return submitted.Sub(expected)
}

// VarianceStatusOf classifies a variance by its sign.
func VarianceStatusOf(variance decimal.Decimal) domain.VarianceStatus {
	switch variance.Sign() {
	case -1:
		return domain.VarianceShortage
	case 1:
		return domain.VarianceExcess
	default:
		return domain.VarianceBalanced
	}
}

// SummarizeTerminal sums the summaries of the given shift ledgers into one
// metrics record for the window [from, to). Shifts are ordered by start time.
func SummarizeTerminal(terminalID string, window Window, ledgers []domain.ShiftLedger) domain.TerminalMetrics {
	metrics := domain.TerminalMetrics{
		TerminalID:         terminalID,
		Period:             window.Period,
		From:               window.From,
		To:                 window.To,
		TotalFuelSold:      decimal.Zero,
		ExpectedCash:       decimal.Zero,
		SubmittedCash:      decimal.Zero,
		HandoverTotal:      decimal.Zero,
		ElectronicTotal:    decimal.Zero,
		ElectronicByMethod: make(map[domain.PaymentMethod]decimal.Decimal),
		ExpenseTotal:       decimal.Zero,
		Shifts:             make([]domain.ShiftSummary, 0, len(ledgers)),
	}

	ordered := make([]domain.ShiftLedger, len(ledgers))
	copy(ordered, ledgers)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Shift, ordered[j].Shift
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ShiftID < b.ShiftID
	})

	for _, ledger := range ordered {
		s := SummarizeShift(ledger)
		metrics.ShiftCount++
		metrics.TotalFuelSold = metrics.TotalFuelSold.Add(s.TotalFuelSold)
		metrics.ExpectedCash = metrics.ExpectedCash.Add(s.ExpectedCash)
		metrics.SubmittedCash = metrics.SubmittedCash.Add(s.SubmittedCash)
		metrics.HandoverTotal = metrics.HandoverTotal.Add(s.HandoverTotal)
		metrics.ElectronicTotal = metrics.ElectronicTotal.Add(s.ElectronicTotal)
		for method, amount := range s.ElectronicByMethod {
			metrics.ElectronicByMethod[method] = metrics.ElectronicByMethod[method].Add(amount)
		}
		metrics.ExpenseTotal = metrics.ExpenseTotal.Add(s.ExpenseTotal)
		metrics.OpenReadings += s.OpenReadings
		metrics.Shifts = append(metrics.Shifts, s)
	}

	metrics.TotalCollected = metrics.SubmittedCash.Add(metrics.ElectronicTotal)
	metrics.CashVariance = CashVariance(metrics.ExpectedCash, metrics.SubmittedCash)
	return metrics
}

// ExpectedAmount prices dispensed liters, rounded to the stored money scale.
func ExpectedAmount(litersSold, pricePerLiter decimal.Decimal) decimal.Decimal {
	return litersSold.Mul(pricePerLiter).Round(domain.MoneyScale)
}
