// Package cli implements the command-line front end of the calculator.
package cli

import (
	"flag"
	"io"
	"strconv"
	"strings"

	"creditcalc/domain"
)

// MinArgs is the fewest argument tokens (excluding the program name) a
// calculation can be expressed in.
const MinArgs = 3

// ParseArgs converts command-line arguments, without the program name, into
// loan terms. Only the syntax of each value is checked here; the terms still
// need Validate.
func ParseArgs(args []string) (domain.LoanTerms, error) {
	fs := flag.NewFlagSet("creditcalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	loanType := fs.String("type", "", "annuity or diff")
	payment := fs.String("payment", "", "monthly payment")
	principal := fs.String("principal", "", "loan principal")
	periods := fs.String("periods", "", "number of monthly payments")
	interest := fs.String("interest", "", "annual interest rate, percent")

	if err := fs.Parse(args); err != nil {
		return domain.LoanTerms{}, &domain.InvalidArgumentError{Name: "flags", Reason: err.Error()}
	}
	if fs.NArg() > 0 {
		return domain.LoanTerms{}, &domain.InvalidArgumentError{
			Name:   "flags",
			Reason: "unexpected arguments: " + strings.Join(fs.Args(), " "),
		}
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	var terms domain.LoanTerms
	var err error
	if seen["type"] {
		terms.Type = domain.LoanType(*loanType)
	}
	if seen["payment"] {
		if terms.Payment, err = parseFloat("payment", *payment); err != nil {
			return domain.LoanTerms{}, err
		}
	}
	if seen["principal"] {
		if terms.Principal, err = parseFloat("principal", *principal); err != nil {
			return domain.LoanTerms{}, err
		}
	}
	if seen["periods"] {
		if terms.Periods, err = parseInt("periods", *periods); err != nil {
			return domain.LoanTerms{}, err
		}
	}
	if seen["interest"] {
		if terms.Interest, err = parseFloat("interest", *interest); err != nil {
			return domain.LoanTerms{}, err
		}
	}
	return terms, nil
}

func parseFloat(name, raw string) (*float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, &domain.InvalidArgumentError{Name: name, Value: raw, Reason: "not a number"}
	}
	return &v, nil
}

func parseInt(name, raw string) (*int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, &domain.InvalidArgumentError{Name: name, Value: raw, Reason: "not a whole number"}
	}
	return &v, nil
}
