package service

import (
	"fmt"
	"math"

	"creditcalc/domain"
)

// NominalRate converts an annual percentage rate into the monthly rate.
func NominalRate(annualRate float64) float64 {
	return annualRate / (100 * 12)
}

// AnnuityPayment returns the fixed monthly payment that amortizes principal
// over periods months at the monthly rate.
func AnnuityPayment(rate float64, periods int, principal float64) (float64, error) {
	growth := math.Pow(1+rate, float64(periods))
	payment := principal * rate * growth / (growth - 1)
	if !isFinite(payment) {
		return 0, &domain.MathDomainError{
			Op:     "annuityPayment",
			Reason: fmt.Sprintf("undefined for rate %g over %d periods", rate, periods),
		}
	}
	return payment, nil
}

// NumberOfPeriods returns how many monthly payments of the given size repay
// principal, rounded up to a whole month. The payment must exceed the
// interest accrued in the first month.
func NumberOfPeriods(payment, rate, principal float64) (int, error) {
	if rate <= 0 {
		return 0, &domain.MathDomainError{Op: "numberOfPeriods", Reason: "interest rate must be positive"}
	}
	if payment <= rate*principal {
		return 0, &domain.MathDomainError{
			Op:     "numberOfPeriods",
			Reason: fmt.Sprintf("payment %g does not cover monthly interest %g", payment, rate*principal),
		}
	}

	n := math.Ceil(math.Log(payment/(payment-rate*principal)) / math.Log(1+rate))
	if !isFinite(n) || n > MaxPeriods {
		return 0, &domain.MathDomainError{Op: "numberOfPeriods", Reason: fmt.Sprintf("%g periods is out of range", n)}
	}
	return int(n), nil
}

// PrincipalFromPayment inverts AnnuityPayment.
func PrincipalFromPayment(payment, rate float64, periods int) (float64, error) {
	growth := math.Pow(1+rate, float64(periods))
	principal := payment / (rate * growth / (growth - 1))
	if !isFinite(principal) {
		return 0, &domain.MathDomainError{
			Op:     "principalFromPayment",
			Reason: fmt.Sprintf("undefined for rate %g over %d periods", rate, periods),
		}
	}
	return principal, nil
}

// DifferentiatedPayment returns the payment due in month (1-based) when the
// principal is repaid in equal parts and interest accrues on the remainder.
func DifferentiatedPayment(principal, rate float64, periods, month int) (float64, error) {
	if periods <= 0 {
		return 0, &domain.MathDomainError{Op: "differentiatedPayment", Reason: "periods must be positive"}
	}
	if month < 1 || month > periods {
		return 0, &domain.MathDomainError{
			Op:     "differentiatedPayment",
			Reason: fmt.Sprintf("month %d outside [1, %d]", month, periods),
		}
	}

	n := float64(periods)
	payment := principal/n + rate*(principal-principal*float64(month-1)/n)
	if !isFinite(payment) {
		return 0, &domain.MathDomainError{Op: "differentiatedPayment", Reason: "result is not finite"}
	}
	return payment, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
