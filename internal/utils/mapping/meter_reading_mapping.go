package mapping

import (
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelMeterReading converts a domain MeterReading to a model MeterReading
func ToModelMeterReading(d domain.MeterReading) models.MeterReading {
	return models.MeterReading{
		ReadingID:      d.ReadingID,
		CompanyID:      d.CompanyID,
		PumpID:         d.PumpID,
		ShiftID:        d.ShiftID,
		UserID:         d.UserID,
		Opening:        d.Opening,
		Closing:        toNullDecimal(d.Closing),
		PricePerLiter:  toNullDecimal(d.PricePerLiter),
		ExpectedAmount: toNullDecimal(d.ExpectedAmount),
		ForceClosed:    d.ForceClosed,
		CreatedAt:      d.CreatedAt,
		ClosedAt:       d.ClosedAt,
	}
}

// ToDomainMeterReading converts a model MeterReading to a domain MeterReading
func ToDomainMeterReading(m models.MeterReading) domain.MeterReading {
	return domain.MeterReading{
		ReadingID:      m.ReadingID,
		CompanyID:      m.CompanyID,
		PumpID:         m.PumpID,
		ShiftID:        m.ShiftID,
		UserID:         m.UserID,
		Opening:        m.Opening,
		Closing:        fromNullDecimal(m.Closing),
		PricePerLiter:  fromNullDecimal(m.PricePerLiter),
		ExpectedAmount: fromNullDecimal(m.ExpectedAmount),
		ForceClosed:    m.ForceClosed,
		CreatedAt:      m.CreatedAt,
		ClosedAt:       m.ClosedAt,
	}
}

// ToDomainMeterReadings converts a slice of model MeterReadings
func ToDomainMeterReadings(ms []models.MeterReading) []domain.MeterReading {
	out := make([]domain.MeterReading, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMeterReading(m)
	}
	return out
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
