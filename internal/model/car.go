package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Car struct {
	ID      int64
	ModelID int64
	Year    int
	Fuel    string
	Doors   int
	Color   string
	Value   decimal.Decimal
	// Unix seconds captured once at registration.
	RegisteredAt int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CarView is a car joined with its model and brand.
type CarView struct {
	Car
	ModelName string
	BrandID   int64
	BrandName string
}

type CreateCarParams struct {
	BrandName string
	ModelName string
	Year      int
	Fuel      string
	Doors     int
	Color     string
	Value     decimal.Decimal
}

// UpdateCarParams overwrites the attributes of a car. The model is
// re-resolved from ModelName when it is not blank, looked up by ModelID
// when set, and left unchanged otherwise.
type UpdateCarParams struct {
	ModelID   *int64
	ModelName string
	BrandName string
	Year      int
	Fuel      string
	Doors     int
	Color     string
	Value     decimal.Decimal
}

// CarsFilter narrows a car listing. Nil fields are ignored.
type CarsFilter struct {
	ModelID  *int64
	BrandID  *int64
	Year     *int
	Fuel     *string
	Color    *string
	MinValue *decimal.Decimal
	MaxValue *decimal.Decimal
}
