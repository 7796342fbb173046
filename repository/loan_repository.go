package repository

import "creditcalc/domain"

type LoanRepository interface {
	Save(terms domain.LoanTerms, report domain.Report) error
	Recent(limit int) []domain.Calculation
}
