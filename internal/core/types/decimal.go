// Package types provides common type aliases and utilities.
package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ZeroMoney returns zero Money value.
func ZeroMoney() Money {
	return decimal.Zero
}

// Quantity is a fixed-point quantity with 4 decimal places (scale = 1e4).
// Matches Postgres NUMERIC(15,4) semantics and stores as BIGINT without
// floating point errors.
type Quantity int64

// QuantityScale is the fixed-point scale factor.
const QuantityScale int64 = 10_000

// NewQuantityFromFloat64 converts a float, rounding to the nearest step.
func NewQuantityFromFloat64(v float64) Quantity {
	return Quantity(math.Round(v * float64(QuantityScale)))
}

// NewQuantityFromInt64Scaled wraps an already-scaled integer.
func NewQuantityFromInt64Scaled(v int64) Quantity { return Quantity(v) }

// Int64Scaled returns the scaled integer representation.
func (q Quantity) Int64Scaled() int64 { return int64(q) }

// Float64 returns the quantity as a float.
func (q Quantity) Float64() float64 { return float64(q) / float64(QuantityScale) }

// IsZero reports whether the quantity is zero.
func (q Quantity) IsZero() bool { return q == 0 }

// IsPositive reports whether the quantity is greater than zero.
func (q Quantity) IsPositive() bool { return q > 0 }

// IsNegative reports whether the quantity is less than zero.
func (q Quantity) IsNegative() bool { return q < 0 }

// Neg returns the negated quantity.
func (q Quantity) Neg() Quantity { return -q }

// Abs returns the absolute value.
func (q Quantity) Abs() Quantity {
	if q < 0 {
		return -q
	}
	return q
}

// Add returns the sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity { return q + other }
