package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditcalc/domain"
)

func isMathDomainError(err error) bool {
	var target *domain.MathDomainError
	return errors.As(err, &target)
}

func TestNominalRate(t *testing.T) {
	assert.InDelta(t, 0.0083333333, NominalRate(10), 1e-9)
	assert.InDelta(t, 0.0065, NominalRate(7.8), 1e-12)
	assert.Zero(t, NominalRate(0))
}

func TestAnnuityPayment(t *testing.T) {
	payment, err := AnnuityPayment(NominalRate(10), 60, 1000000)
	require.NoError(t, err)
	assert.InDelta(t, 21247.0447, payment, 1e-3)

	payment, err = AnnuityPayment(NominalRate(10), 60, 0)
	require.NoError(t, err)
	assert.Zero(t, payment)
}

func TestAnnuityPayment_Undefined(t *testing.T) {
	_, err := AnnuityPayment(0, 60, 1000000)
	assert.True(t, isMathDomainError(err), "zero rate: %v", err)

	_, err = AnnuityPayment(NominalRate(10), 0, 1000000)
	assert.True(t, isMathDomainError(err), "zero periods: %v", err)
}

func TestNumberOfPeriods(t *testing.T) {
	tests := []struct {
		payment, principal, interest float64
		want                         int
	}{
		{8722, 500000, 7.8, 72},
		{23000, 500000, 7.8, 24},
		{8722, 500000, 5.6, 67},
		{10000, 100000, 12, 11},
		{5000, 60000, 6, 13},
	}
	for _, tt := range tests {
		n, err := NumberOfPeriods(tt.payment, NominalRate(tt.interest), tt.principal)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "payment=%v principal=%v interest=%v", tt.payment, tt.principal, tt.interest)
	}
}

func TestNumberOfPeriods_PaymentTooSmall(t *testing.T) {
	rate := NominalRate(12)
	// Monthly interest on 100000 at 12% is exactly 1000.
	for _, payment := range []float64{0, 500, 1000} {
		_, err := NumberOfPeriods(payment, rate, 100000)
		assert.True(t, isMathDomainError(err), "payment %v: %v", payment, err)
	}
}

func TestNumberOfPeriods_ZeroRate(t *testing.T) {
	_, err := NumberOfPeriods(1000, 0, 12000)
	assert.True(t, isMathDomainError(err))
}

func TestNumberOfPeriods_OutOfRange(t *testing.T) {
	// Barely covering interest at 0.01% takes hundreds of thousands of months.
	_, err := NumberOfPeriods(9, NominalRate(0.01), 1000000)
	assert.True(t, isMathDomainError(err))
}

func TestNumberOfPeriods_MonotonicInPayment(t *testing.T) {
	rate := NominalRate(9)
	principal := 250000.0
	floor := rate * principal

	prev := 0
	for payment := 50000.0; payment > floor+1; payment *= 0.97 {
		n, err := NumberOfPeriods(payment, rate, principal)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev, "payment %v", payment)
		prev = n
	}
}

func TestPrincipalFromPayment(t *testing.T) {
	principal, err := PrincipalFromPayment(8722, NominalRate(5.6), 120)
	require.NoError(t, err)
	assert.InDelta(t, 800018.6944, principal, 1e-3)

	_, err = PrincipalFromPayment(8722, 0, 120)
	assert.True(t, isMathDomainError(err))
}

func TestPrincipalRoundTrip(t *testing.T) {
	for _, principal := range []float64{1000, 12345.67, 500000, 1000000, 75000000} {
		for _, periods := range []int{1, 12, 60, 240, 360} {
			for _, interest := range []float64{0.5, 3.9, 10, 24} {
				rate := NominalRate(interest)
				payment, err := AnnuityPayment(rate, periods, principal)
				require.NoError(t, err)

				back, err := PrincipalFromPayment(payment, rate, periods)
				require.NoError(t, err)

				got, err := roundAmount(back, RoundDown)
				require.NoError(t, err)
				assert.LessOrEqual(t, math.Abs(float64(got)-principal), 1.0,
					"principal=%v periods=%d interest=%v", principal, periods, interest)
			}
		}
	}
}

func TestDifferentiatedPayment(t *testing.T) {
	rate := NominalRate(10)
	first, err := DifferentiatedPayment(1000000, rate, 10, 1)
	require.NoError(t, err)
	assert.InDelta(t, 108333.333, first, 1e-3)

	last, err := DifferentiatedPayment(1000000, rate, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 100833.333, last, 1e-3)
}

func TestDifferentiatedPayment_Decreasing(t *testing.T) {
	rate := NominalRate(7.5)
	periods := 48

	prev := math.Inf(1)
	for month := 1; month <= periods; month++ {
		p, err := DifferentiatedPayment(350000, rate, periods, month)
		require.NoError(t, err)
		assert.Less(t, p, prev, "month %d", month)
		prev = p
	}
}

func TestDifferentiatedPayment_OutOfDomain(t *testing.T) {
	_, err := DifferentiatedPayment(1000, 0.01, 0, 1)
	assert.True(t, isMathDomainError(err))

	_, err = DifferentiatedPayment(1000, 0.01, 10, 0)
	assert.True(t, isMathDomainError(err))

	_, err = DifferentiatedPayment(1000, 0.01, 10, 11)
	assert.True(t, isMathDomainError(err))
}
