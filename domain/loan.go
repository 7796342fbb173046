package domain

import (
	"strconv"
	"strings"
	"time"
)

// LoanType selects the amortization model.
type LoanType string

const (
	LoanTypeAnnuity LoanType = "annuity"
	LoanTypeDiff    LoanType = "diff"
)

// Unknown names the quantity a calculation solves for.
type Unknown string

const (
	UnknownPeriods   Unknown = "periods"
	UnknownPayment   Unknown = "payment"
	UnknownPrincipal Unknown = "principal"
	UnknownSchedule  Unknown = "schedule"
)

// LoanTerms holds the inputs of one calculation. Optional values are
// pointers so that an absent value is distinguishable from zero.
type LoanTerms struct {
	Type      LoanType `json:"type"`
	Principal *float64 `json:"principal,omitempty"`
	Payment   *float64 `json:"payment,omitempty"`
	Periods   *int     `json:"periods,omitempty"`
	Interest  *float64 `json:"interest,omitempty"`
}

// Unknown reports which quantity the terms leave open. Terms must be valid.
func (t LoanTerms) Unknown() Unknown {
	switch {
	case t.Type == LoanTypeDiff:
		return UnknownSchedule
	case t.Periods == nil:
		return UnknownPeriods
	case t.Payment == nil:
		return UnknownPayment
	default:
		return UnknownPrincipal
	}
}

// Key returns a canonical string for the terms, used as a cache key.
func (t LoanTerms) Key() string {
	parts := []string{
		string(t.Type),
		"principal=" + formatOptionalFloat(t.Principal),
		"payment=" + formatOptionalFloat(t.Payment),
		"periods=" + formatOptionalInt(t.Periods),
		"interest=" + formatOptionalFloat(t.Interest),
	}
	return strings.Join(parts, ":")
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// MonthlyPayment is one line of a differentiated schedule.
type MonthlyPayment struct {
	Month   int   `json:"month"`
	Payment int64 `json:"payment"`
}

// Report is the outcome of a calculation. Amounts are already rounded to
// whole currency units; Lines holds the text printed to the user.
type Report struct {
	Type            LoanType         `json:"type"`
	Solved          Unknown          `json:"solved"`
	Principal       int64            `json:"principal"`
	Payment         int64            `json:"payment,omitempty"`
	Periods         int              `json:"periods"`
	MonthlyPayments []MonthlyPayment `json:"monthly_payments,omitempty"`
	Overpayment     int64            `json:"overpayment"`
	Lines           []string         `json:"lines"`
}

// Calculation is a history entry.
type Calculation struct {
	Terms        LoanTerms `json:"terms"`
	Report       Report    `json:"report"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// Float64 returns a pointer to v, for building LoanTerms literals.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
