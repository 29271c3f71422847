package models

import "github.com/shopspring/decimal"

// Pump is the joined pumps/tanks view read by the registry.
type Pump struct {
	PumpID         string          `db:"pump_id"`
	CompanyID      string          `db:"company_id"`
	TerminalID     string          `db:"terminal_id"`
	TankID         string          `db:"tank_id"`
	PricePerLiter  decimal.Decimal `db:"price_per_liter"`
	InitialCounter decimal.Decimal `db:"initial_counter"`
}
