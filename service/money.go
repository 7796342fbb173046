package service

import (
	"github.com/shopspring/decimal"

	"creditcalc/domain"
)

// Rounding selects how an amount is brought to whole currency units.
type Rounding int

const (
	// RoundUp (ceil) applies to payments and overpayment.
	RoundUp Rounding = iota
	// RoundDown applies to principal, which is truncated toward zero.
	RoundDown
)

// RoundCurrency rounds value to a whole currency unit using rule.
func RoundCurrency(value float64, rule Rounding) (decimal.Decimal, error) {
	if !isFinite(value) {
		return decimal.Zero, &domain.MathDomainError{Op: "roundCurrency", Reason: "amount is not finite"}
	}
	d := decimal.NewFromFloat(value)
	if rule == RoundDown {
		return d.Truncate(0), nil
	}
	return d.Ceil(), nil
}

func roundAmount(value float64, rule Rounding) (int64, error) {
	d, err := RoundCurrency(value, rule)
	if err != nil {
		return 0, err
	}
	return wholeUnits(d)
}

// wholeUnits converts an already rounded amount, refusing anything a report
// field cannot hold.
func wholeUnits(d decimal.Decimal) (int64, error) {
	if !d.BigInt().IsInt64() {
		return 0, &domain.MathDomainError{Op: "roundCurrency", Reason: "amount " + d.String() + " is out of range"}
	}
	return d.IntPart(), nil
}
