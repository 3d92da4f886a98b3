package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CarModel struct {
	ID      int64
	BrandID int64
	// Denormalized from the owning brand on every read.
	BrandName string
	Name      string
	// Nil for models created implicitly while registering a car.
	ReferencePrice *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CarModelParams struct {
	BrandID        int64
	Name           string
	ReferencePrice decimal.Decimal
}
