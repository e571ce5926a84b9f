package kernel

import (
	"github.com/shopspring/decimal"
)

// Money is an immutable value object representing a non-directional monetary
// amount. It wraps decimal.Decimal to keep price arithmetic exact: totals are
// summed, multiplied by policy factors and reduced by discount fractions
// without binary floating point drift. No rounding is performed internally;
// presentation layers format for display.
//
// The zero value is a valid zero amount. Money is safe for concurrent use.
//
// Example usage:
//
//	price := kernel.MoneyFromFloat(24.99)
//	total := price.Add(kernel.MoneyFromFloat(4.50))
//	discounted := total.MulFactor(decimal.NewFromFloat(0.8))
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat creates a Money from a float64 amount.
// Intended for construction sites where prices arrive as floats;
// the decimal conversion uses the shortest exact representation.
func MoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m minus other. The result may be negative; callers that
// require non-negative amounts must check IsNegative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulFactor returns m scaled by the given decimal factor.
func (m Money) MulFactor(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals reports whether two amounts are numerically equal.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. Precision may be lost for
// amounts that exceed float64 resolution; use Decimal for exact math.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
