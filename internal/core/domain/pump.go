package domain

import "github.com/shopspring/decimal"

// Pump is the registry view of a fuel pump. The engine never mutates it.
type Pump struct {
	PumpID         string          `json:"pumpID"`
	CompanyID      string          `json:"companyID"`
	TerminalID     string          `json:"terminalID"`
	TankID         string          `json:"tankID"`
	PricePerLiter  decimal.Decimal `json:"pricePerLiter"`
	InitialCounter decimal.Decimal `json:"initialCounter"`
}
