package cli

import (
	"context"
	"fmt"
	"io"

	"creditcalc/common"
	"creditcalc/domain"
)

// Calculator computes a report for validated or unvalidated terms.
type Calculator interface {
	Calculate(ctx context.Context, terms domain.LoanTerms) (domain.Report, error)
}

// Run executes one calculation for args (without the program name), writes
// the report to stdout and returns the process exit status. Rejected input
// prints only the fixed "Incorrect parameters" line.
func Run(ctx context.Context, args []string, stdout io.Writer, calc Calculator, logger *common.Logger) int {
	report, err := calculate(ctx, args, calc)
	if err != nil {
		logger.Debug().Err(err).Strs("args", args).Msg("Rejected parameters")
		fmt.Fprintln(stdout, domain.IncorrectParameters)
		return 1
	}

	for _, line := range report.Lines {
		fmt.Fprintln(stdout, line)
	}
	return 0
}

func calculate(ctx context.Context, args []string, calc Calculator) (domain.Report, error) {
	if len(args) < MinArgs {
		return domain.Report{}, &domain.InvalidArgumentError{
			Name:   "flags",
			Reason: fmt.Sprintf("expected at least %d arguments, got %d", MinArgs, len(args)),
		}
	}

	terms, err := ParseArgs(args)
	if err != nil {
		return domain.Report{}, err
	}
	if err := terms.Validate(); err != nil {
		return domain.Report{}, err
	}
	return calc.Calculate(ctx, terms)
}
