package domain

import (
	"math"
	"strconv"
)

// Validate checks the presence pattern and signs of the terms. It does not
// evaluate any formula; values that are valid here may still produce a
// MathDomainError later.
func (t LoanTerms) Validate() error {
	if t.Type == "" {
		return &MissingArgumentError{Name: "type"}
	}
	if t.Type != LoanTypeAnnuity && t.Type != LoanTypeDiff {
		return &InvalidArgumentError{Name: "type", Value: string(t.Type), Reason: "must be annuity or diff"}
	}
	if t.Interest == nil {
		return &MissingArgumentError{Name: "interest"}
	}
	if t.Type == LoanTypeDiff && t.Payment != nil {
		return &InvalidArgumentError{Name: "payment", Reason: "not accepted for differentiated payments"}
	}

	if err := checkAmount("principal", t.Principal); err != nil {
		return err
	}
	if err := checkAmount("payment", t.Payment); err != nil {
		return err
	}
	if err := checkAmount("interest", t.Interest); err != nil {
		return err
	}
	if t.Periods != nil && *t.Periods < 0 {
		return &InvalidArgumentError{Name: "periods", Value: strconv.Itoa(*t.Periods), Reason: "must not be negative"}
	}

	if t.Type == LoanTypeDiff {
		if t.Principal == nil {
			return &MissingArgumentError{Name: "principal"}
		}
		if t.Periods == nil {
			return &MissingArgumentError{Name: "periods"}
		}
		return nil
	}

	var absent []string
	if t.Principal == nil {
		absent = append(absent, "principal")
	}
	if t.Payment == nil {
		absent = append(absent, "payment")
	}
	if t.Periods == nil {
		absent = append(absent, "periods")
	}
	switch len(absent) {
	case 0:
		return &InvalidArgumentError{Name: "periods", Reason: "one of principal, payment or periods must be omitted"}
	case 1:
		return nil
	default:
		return &MissingArgumentError{Name: absent[0]}
	}
}

func checkAmount(name string, v *float64) error {
	if v == nil {
		return nil
	}
	value := strconv.FormatFloat(*v, 'g', -1, 64)
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return &InvalidArgumentError{Name: name, Value: value, Reason: "must be a finite number"}
	}
	if *v < 0 {
		return &InvalidArgumentError{Name: name, Value: value, Reason: "must not be negative"}
	}
	return nil
}
