package catalogv1

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount encoded as a bare JSON number with at most two
// decimals. It decodes from a number or a quoted string.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(2).String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}
