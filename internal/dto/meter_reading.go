package dto

import (
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenReadingRequest defines the data needed to open a pump reading.
type OpenReadingRequest struct {
	PumpID  string          `json:"pumpID" binding:"required"`
	ShiftID string          `json:"shiftID" binding:"required"`
	Opening decimal.Decimal `json:"opening" binding:"gte=0,liters"`
}

// CloseReadingRequest defines the closing counter of a reading.
type CloseReadingRequest struct {
	Closing decimal.Decimal `json:"closing" binding:"gte=0,liters"`
}

// ListReadingsParams defines query parameters for listing readings.
type ListReadingsParams struct {
	UserID    string    `form:"userID"`
	PumpID    string    `form:"pumpID"`
	ShiftID   string    `form:"shiftID"`
	From      time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To        time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit     int       `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string   `form:"nextToken"`
}

// ToFilter converts params to a store filter scoped to the company.
func (p ListReadingsParams) ToFilter(companyID string) domain.ReadingFilter {
	return domain.ReadingFilter{
		CompanyID: companyID,
		UserID:    p.UserID,
		PumpID:    p.PumpID,
		ShiftID:   p.ShiftID,
		From:      timePtr(p.From),
		To:        dayAfter(p.To),
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}
}

// ListReadingsResponse is one page of readings.
type ListReadingsResponse struct {
	Readings  []MeterReadingResponse `json:"readings"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// MeterReadingResponse adds the derived liters to a reading.
type MeterReadingResponse struct {
	domain.MeterReading
	LitersSold decimal.Decimal `json:"litersSold"`
}

// ToMeterReadingResponse converts a domain.MeterReading to its response DTO.
func ToMeterReadingResponse(r domain.MeterReading) MeterReadingResponse {
	return MeterReadingResponse{MeterReading: r, LitersSold: r.LitersSold()}
}

// ToMeterReadingResponses converts a slice of readings.
func ToMeterReadingResponses(readings []domain.MeterReading) []MeterReadingResponse {
	responses := make([]MeterReadingResponse, len(readings))
	for i, r := range readings {
		responses[i] = ToMeterReadingResponse(r)
	}
	return responses
}
