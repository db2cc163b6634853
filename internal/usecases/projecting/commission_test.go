package projecting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

func TestProjectCommission(t *testing.T) {
	result := ProjectCommission(25, 800, 20)

	assert.Equal(t, 25, result.ReferredUserCount)
	assert.Equal(t, 20000.0, result.GrossRevenue)
	assert.Equal(t, 4000.0, result.YourEarnings)
	assert.InDelta(t, 333.33, result.MonthlyEquivalent, 0.005)
}

func TestProjectCommission_NoReferralsIsAllZero(t *testing.T) {
	for _, count := range []int{0, -5} {
		result := ProjectCommission(count, 800, 20)

		assert.Equal(t, 0, result.ReferredUserCount)
		assert.Equal(t, 0.0, result.GrossRevenue)
		assert.Equal(t, 0.0, result.YourEarnings)
		assert.Equal(t, 0.0, result.MonthlyEquivalent)
	}
}

func TestProjectCommission_RateIsClamped(t *testing.T) {
	tests := []struct {
		name         string
		rate         float64
		expectedRate float64
		earnings     float64
	}{
		{name: "Taxa negativa vira zero", rate: -10, expectedRate: 0, earnings: 0},
		{name: "Taxa acima de 100 limitada", rate: 150, expectedRate: 100, earnings: 8000},
		{name: "Taxa NaN vira zero", rate: math.NaN(), expectedRate: 0, earnings: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProjectCommission(10, 800, tt.rate)

			assert.Equal(t, tt.expectedRate, result.CommissionRatePercent)
			assert.Equal(t, tt.earnings, result.YourEarnings)
		})
	}
}

func TestProjectCommission_NegativeRevenue(t *testing.T) {
	result := ProjectCommission(10, -800, 20)

	assert.Equal(t, 0.0, result.GrossRevenue)
	assert.Equal(t, 0.0, result.YourEarnings)
}

func TestProjectCommissionOverWindow(t *testing.T) {
	result := ProjectCommissionOverWindow(25, 800, 20, 6)

	assert.InDelta(t, 666.67, result.MonthlyEquivalent, 0.005)

	fallback := ProjectCommissionOverWindow(25, 800, 20, 0)
	assert.Equal(t, ProjectCommission(25, 800, 20), fallback)
}

func TestProjectCommission_Idempotent(t *testing.T) {
	assert.Equal(t, ProjectCommission(13, 799.99, 17.5), ProjectCommission(13, 799.99, 17.5))
}

func TestResolveCommissionRate(t *testing.T) {
	rate := 35.0
	overLimit := 120.0

	assert.Equal(t, 35.0, ResolveCommissionRate(&domain.Partner{CommissionRate: &rate}, 20))
	assert.Equal(t, 20.0, ResolveCommissionRate(&domain.Partner{}, 20))
	assert.Equal(t, 20.0, ResolveCommissionRate(nil, 20))
	assert.Equal(t, 100.0, ResolveCommissionRate(&domain.Partner{CommissionRate: &overLimit}, 20))
}

func TestProjectCommission_HugeRevenueStaysFinite(t *testing.T) {
	result := ProjectCommission(math.MaxInt64, 1e308, 20)

	assert.Equal(t, MaxInputAmount, result.AvgRevenuePerUser)
	for _, v := range []float64{result.GrossRevenue, result.YourEarnings, result.MonthlyEquivalent} {
		assert.False(t, math.IsInf(v, 0))
		assert.False(t, math.IsNaN(v))
	}
	assert.Greater(t, result.GrossRevenue, 0.0)
}
