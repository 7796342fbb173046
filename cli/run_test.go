package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditcalc/common"
	"creditcalc/domain"
	"creditcalc/repository"
	"creditcalc/service"
)

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	svc := service.NewLoanService(repository.NewLoanRepositoryMemory(), repository.NewMemoryCache(time.Hour), nil)
	var out bytes.Buffer
	code := Run(context.Background(), args, &out, svc, common.NewSilentLogger())
	return out.String(), code
}

func TestRun_AnnuityPayment(t *testing.T) {
	out, code := run(t, "--type=annuity", "--principal=1000000", "--periods=60", "--interest=10")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Your monthly payment = 21248!\nOverpayment = 274880\n", out)
}

func TestRun_AnnuityPeriods(t *testing.T) {
	out, code := run(t, "--type=annuity", "--principal=500000", "--payment=23000", "--interest=7.8")
	assert.Equal(t, 0, code)
	assert.Equal(t, "It will take 2 years to repay this loan!\nOverpayment = 52000\n", out)
}

func TestRun_AnnuityPrincipal(t *testing.T) {
	out, code := run(t, "--type=annuity", "--payment=8722", "--periods=120", "--interest=5.6")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Your loan principal = 800018!\nOverpayment = 246622\n", out)
}

func TestRun_SpaceSeparatedValues(t *testing.T) {
	out, code := run(t, "--type", "annuity", "--principal", "500000", "--payment", "8722", "--interest", "7.8")
	assert.Equal(t, 0, code)
	assert.Equal(t, "It will take 6 years to repay this loan!\nOverpayment = 127984\n", out)
}

func TestRun_Differentiated(t *testing.T) {
	out, code := run(t, "--type=diff", "--principal=1000000", "--periods=10", "--interest=10")
	assert.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Month 1: payment is 108334", lines[0])
	assert.Equal(t, "Month 2: payment is 107500", lines[1])
	assert.Equal(t, "Month 10: payment is 100834", lines[9])
	assert.Equal(t, "", lines[10])
	assert.Equal(t, "Overpayment = 45837", lines[11])
}

func TestRun_IncorrectParameters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"diff with payment", []string{"--type=diff", "--payment=100", "--principal=1000", "--periods=10", "--interest=10"}},
		{"missing type", []string{"--principal=1000000", "--periods=60", "--interest=10"}},
		{"unknown type", []string{"--type=balloon", "--principal=1000000", "--periods=60", "--interest=10"}},
		{"missing interest", []string{"--type=annuity", "--principal=100000", "--payment=10400", "--periods=8"}},
		{"too few arguments", []string{"--type=annuity", "--interest=10"}},
		{"negative principal", []string{"--type=annuity", "--principal=-1000000", "--periods=60", "--interest=10"}},
		{"negative periods", []string{"--type=diff", "--principal=30000", "--periods=-14", "--interest=10"}},
		{"negative payment", []string{"--type=annuity", "--principal=1000", "--payment", "-100", "--interest=10"}},
		{"non-numeric payment", []string{"--type=annuity", "--principal=1000", "--payment=lots", "--interest=10"}},
		{"fractional periods", []string{"--type=annuity", "--principal=1000", "--periods=10.5", "--interest=10"}},
		{"unknown flag", []string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=10", "--currency=USD"}},
		{"stray argument", []string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=10", "extra"}},
		{"two unknowns", []string{"--type=annuity", "--principal=1000", "--interest=10"}},
		{"nothing to solve", []string{"--type=annuity", "--principal=1000", "--payment=100", "--periods=10", "--interest=10"}},
		{"payment too small", []string{"--type=annuity", "--principal=1000000", "--payment=100", "--interest=10"}},
		{"annuity without interest rate", []string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=0"}},
		{"payment overflows", []string{"--type=annuity", "--principal=1e30", "--periods=60", "--interest=10"}},
		{"principal overflows", []string{"--type=annuity", "--payment=1e20", "--periods=60", "--interest=10"}},
		{"diff payments overflow", []string{"--type=diff", "--principal=1e25", "--periods=2", "--interest=10"}},
		{"no arguments", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code := run(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Equal(t, "Incorrect parameters\n", out)
		})
	}
}

func TestParseArgs(t *testing.T) {
	terms, err := ParseArgs([]string{"--type=annuity", "--principal=1000", "--periods=10", "--interest=7.5"})
	require.NoError(t, err)

	assert.Equal(t, domain.LoanTypeAnnuity, terms.Type)
	require.NotNil(t, terms.Principal)
	assert.Equal(t, 1000.0, *terms.Principal)
	require.NotNil(t, terms.Periods)
	assert.Equal(t, 10, *terms.Periods)
	require.NotNil(t, terms.Interest)
	assert.Equal(t, 7.5, *terms.Interest)
	assert.Nil(t, terms.Payment, "absent flags stay nil")
}

func TestParseArgs_ZeroIsPresent(t *testing.T) {
	terms, err := ParseArgs([]string{"--type=diff", "--principal=0", "--periods=10", "--interest=0"})
	require.NoError(t, err)
	require.NotNil(t, terms.Principal)
	assert.Zero(t, *terms.Principal)
	require.NotNil(t, terms.Interest)
}

func TestParseArgs_InvalidNumber(t *testing.T) {
	_, err := ParseArgs([]string{"--principal=abc"})
	require.Error(t, err)
	assert.True(t, domain.IsIncorrectParameters(err))
	assert.Contains(t, err.Error(), "principal")
}
