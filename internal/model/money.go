package model

import "github.com/shopspring/decimal"

// Bounds of a NUMERIC(14,2) amount accepted by the catalog.
var (
	MinMoney = decimal.RequireFromString("0.01")
	MaxMoney = decimal.RequireFromString("999999999999.99")
)
