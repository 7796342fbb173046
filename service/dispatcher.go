package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"creditcalc/domain"
)

// Dispatch solves for whichever quantity the terms leave open and builds the
// report. Terms must have passed Validate.
func Dispatch(terms domain.LoanTerms) (domain.Report, error) {
	rate := NominalRate(*terms.Interest)

	switch terms.Unknown() {
	case domain.UnknownPeriods:
		return solvePeriods(*terms.Principal, *terms.Payment, rate)
	case domain.UnknownPayment:
		return solvePayment(*terms.Principal, *terms.Periods, rate)
	case domain.UnknownPrincipal:
		return solvePrincipal(*terms.Payment, *terms.Periods, rate)
	default:
		return differentiatedSchedule(*terms.Principal, *terms.Periods, rate)
	}
}

func solvePeriods(principal, payment, rate float64) (domain.Report, error) {
	periods, err := NumberOfPeriods(payment, rate, principal)
	if err != nil {
		return domain.Report{}, err
	}
	overpayment, err := roundAmount(payment*float64(periods)-principal, RoundUp)
	if err != nil {
		return domain.Report{}, err
	}
	roundedPayment, err := roundAmount(payment, RoundUp)
	if err != nil {
		return domain.Report{}, err
	}
	roundedPrincipal, err := roundAmount(principal, RoundDown)
	if err != nil {
		return domain.Report{}, err
	}

	return domain.Report{
		Type:        domain.LoanTypeAnnuity,
		Solved:      domain.UnknownPeriods,
		Principal:   roundedPrincipal,
		Payment:     roundedPayment,
		Periods:     periods,
		Overpayment: overpayment,
		Lines: []string{
			fmt.Sprintf("It will take %s to repay this loan!", describeTerm(periods)),
			fmt.Sprintf("Overpayment = %d", overpayment),
		},
	}, nil
}

func solvePayment(principal float64, periods int, rate float64) (domain.Report, error) {
	raw, err := AnnuityPayment(rate, periods, principal)
	if err != nil {
		return domain.Report{}, err
	}
	payment, err := roundAmount(raw, RoundUp)
	if err != nil {
		return domain.Report{}, err
	}
	// Overpayment is based on the rounded payment the borrower actually makes.
	overpayment, err := roundAmount(float64(payment)*float64(periods)-principal, RoundUp)
	if err != nil {
		return domain.Report{}, err
	}
	roundedPrincipal, err := roundAmount(principal, RoundDown)
	if err != nil {
		return domain.Report{}, err
	}

	return domain.Report{
		Type:        domain.LoanTypeAnnuity,
		Solved:      domain.UnknownPayment,
		Principal:   roundedPrincipal,
		Payment:     payment,
		Periods:     periods,
		Overpayment: overpayment,
		Lines: []string{
			fmt.Sprintf("Your monthly payment = %d!", payment),
			fmt.Sprintf("Overpayment = %d", overpayment),
		},
	}, nil
}

func solvePrincipal(payment float64, periods int, rate float64) (domain.Report, error) {
	raw, err := PrincipalFromPayment(payment, rate, periods)
	if err != nil {
		return domain.Report{}, err
	}
	principal, err := roundAmount(raw, RoundDown)
	if err != nil {
		return domain.Report{}, err
	}
	overpayment, err := roundAmount(payment*float64(periods)-raw, RoundUp)
	if err != nil {
		return domain.Report{}, err
	}
	roundedPayment, err := roundAmount(payment, RoundUp)
	if err != nil {
		return domain.Report{}, err
	}

	return domain.Report{
		Type:        domain.LoanTypeAnnuity,
		Solved:      domain.UnknownPrincipal,
		Principal:   principal,
		Payment:     roundedPayment,
		Periods:     periods,
		Overpayment: overpayment,
		Lines: []string{
			fmt.Sprintf("Your loan principal = %d!", principal),
			fmt.Sprintf("Overpayment = %d", overpayment),
		},
	}, nil
}

func differentiatedSchedule(principal float64, periods int, rate float64) (domain.Report, error) {
	if periods <= 0 || periods > MaxPeriods {
		return domain.Report{}, &domain.MathDomainError{
			Op:     "differentiatedPayment",
			Reason: fmt.Sprintf("periods must be in [1, %d]", MaxPeriods),
		}
	}

	payments := make([]domain.MonthlyPayment, 0, periods)
	lines := make([]string, 0, periods+2)
	totalPaid := decimal.Zero

	for month := 1; month <= periods; month++ {
		raw, err := DifferentiatedPayment(principal, rate, periods, month)
		if err != nil {
			return domain.Report{}, err
		}
		payment, err := roundAmount(raw, RoundUp)
		if err != nil {
			return domain.Report{}, err
		}
		payments = append(payments, domain.MonthlyPayment{Month: month, Payment: payment})
		lines = append(lines, fmt.Sprintf("Month %d: payment is %d", month, payment))
		totalPaid = totalPaid.Add(decimal.NewFromInt(payment))
	}

	overpayment, err := wholeUnits(totalPaid.Sub(decimal.NewFromFloat(principal)).Ceil())
	if err != nil {
		return domain.Report{}, err
	}
	roundedPrincipal, err := roundAmount(principal, RoundDown)
	if err != nil {
		return domain.Report{}, err
	}
	lines = append(lines, "", fmt.Sprintf("Overpayment = %d", overpayment))

	return domain.Report{
		Type:            domain.LoanTypeDiff,
		Solved:          domain.UnknownSchedule,
		Principal:       roundedPrincipal,
		Periods:         periods,
		MonthlyPayments: payments,
		Overpayment:     overpayment,
		Lines:           lines,
	}, nil
}

// describeTerm renders a number of months as years and months.
func describeTerm(periods int) string {
	years, months := periods/12, periods%12
	switch {
	case years > 0 && months > 0:
		return plural(years, "year") + " and " + plural(months, "month")
	case years > 0:
		return plural(years, "year")
	default:
		return plural(months, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
