package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount in currency units, stored as decimal(10,2) and
// rendered in JSON as a fixed two-decimal string ("36.00", never 36).
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d), nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.StringFixed(2))
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Also accept a bare JSON number.
		return m.Decimal.UnmarshalJSON(data)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// MulInt returns the line contribution for a quantity, rounded to 2 decimals.
func (m Money) MulInt(qty int) Money {
	return NewMoney(m.Decimal.Mul(decimal.NewFromInt(int64(qty))))
}

func (m Money) AddMoney(other Money) Money {
	return NewMoney(m.Decimal.Add(other.Decimal))
}
