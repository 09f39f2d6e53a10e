package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoneyFromString or NewMoneyFromDecimal",
)

// commissionRate is the platform's cut of an order total: 10%.
var commissionRate = decimal.New(1, -1)

// Money is a value object representing a monetary amount with exactly two
// decimal places. It is backed by shopspring/decimal, so arithmetic is exact
// and free of binary floating-point drift.
//
// Amounts are never negative. The zero value is invalid; construct through
// NewMoneyFromString or NewMoneyFromDecimal. Money is immutable.
//
// Example:
//
//	total, err := kernel.NewMoneyFromString("1000.00")
//	if err != nil {
//	    // handle validation error
//	}
//	commission, net := total.Commission()
//	// commission = 100.00, net = 900.00, commission + net == total exactly
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoneyFromString parses a Money amount from its decimal string form.
// The amount must be non-negative and carry at most two decimal places.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal creates a Money amount from a decimal value.
// The amount must be non-negative and carry at most two decimal places:
// sub-cent precision is rejected rather than silently rounded, so that a
// caller can never smuggle in an amount the ledger cannot represent.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", d.String()),
		)
	}
	if !d.Equal(d.Round(2)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s has more than 2 decimal places", d.String()),
		)
	}

	return Money{
		amount: d,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustMoney parses a Money amount and panics on failure.
// Intended for literals in tests and seed data only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by a non-negative integer quantity.
// A two-decimal amount times an integer stays at two decimals, so the result
// is exact with no rounding involved.
func (m Money) MulInt(n int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(n))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Commission splits the amount into the platform commission and the vendor
// net. The commission is 10% of the amount rounded half-up to two decimal
// places; the net is the remainder, so commission + net always reproduces
// the original amount exactly.
//
// This is a pure function of the amount: calling it again at any later time
// yields the same split, which is what makes the commission record derivable
// rather than separately mutable state.
func (m Money) Commission() (commission Money, net Money) {
	c := m.amount.Mul(commissionRate).Round(2)
	n := m.amount.Sub(c)

	commission = Money{amount: c, guard: guard.NewConstructorGuard()}
	net = Money{amount: n, guard: guard.NewConstructorGuard()}
	return commission, net
}
