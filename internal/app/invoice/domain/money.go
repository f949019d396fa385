package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with exact decimal arithmetic.
// It is backed by an arbitrary-precision decimal so no binary floating-point
// rounding ever enters a calculation.
type Money struct {
	amount decimal.Decimal
}

// NewMoney parses a decimal literal such as "199.99".
func NewMoney(value string) (*Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid money amount %q: %w", value, err)
	}
	return &Money{amount: amount}, nil
}

// MustMoney is like NewMoney but panics on malformed input.
// Intended for constants and tests.
func MustMoney(value string) *Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a Money value of exactly zero.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: m.amount.Add(other.amount)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyByDecimal multiplies this Money value by a decimal factor.
func (m *Money) MultiplyByDecimal(factor decimal.Decimal) *Money {
	return &Money{amount: m.amount.Mul(factor)}
}

// MultiplyByQuantity multiplies this Money value by a whole quantity.
func (m *Money) MultiplyByQuantity(quantity int) *Money {
	return &Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals compares numerically, ignoring scale: 12.3 equals 12.30.
func (m *Money) Equals(other *Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the value rounded half-up to two decimal places.
func (m *Money) String() string {
	return m.amount.StringFixed(2)
}

// Copy creates a copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{amount: m.amount}
}
