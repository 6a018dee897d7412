package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHSATaxCalculator_MarginalFederalRate(t *testing.T) {
	tc := NewHSATaxCalculator()

	tests := []struct {
		bracket string
		want    float64
	}{
		{"under_50k", 0.12},  // midpoint 35000
		{"50k_75k", 0.22},    // midpoint 62500
		{"75k_100k", 0.22},   // midpoint 87500
		{"100k_150k", 0.24},  // midpoint 125000
		{"150k_200k", 0.24},  // midpoint 175000
		{"over_200k", 0.35},  // midpoint 250000
		{"not_a_bracket", 0.22}, // default income 75000
		{"", 0.22},
	}

	for _, tt := range tests {
		got := tc.MarginalFederalRate(tt.bracket)
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)),
			"bracket %q: want %v, got %s", tt.bracket, tt.want, got)
	}
}

func TestHSATaxCalculator_EffectiveRate(t *testing.T) {
	tc := NewHSATaxCalculator()

	// 24% federal + 5% state + 7.65% payroll.
	got := tc.EffectiveRate("100k_150k")
	assert.True(t, got.Equal(decimal.NewFromFloat(0.3665)), "got %s", got)
}

func TestHSATaxCalculator_ProjectSavings(t *testing.T) {
	tc := NewHSATaxCalculator()

	savings := tc.ProjectSavings(decimal.NewFromInt(4300), "100k_150k")
	assert.True(t, savings.Equal(decimal.NewFromFloat(1575.95)), "got %s", savings)

	savings = tc.ProjectSavings(decimal.Zero, "100k_150k")
	assert.True(t, savings.IsZero(), "zero contribution saves nothing")
}

func TestHSATaxCalculator_EmptyBrackets(t *testing.T) {
	tc := &HSATaxCalculator{
		StateRate:     decimal.NewFromFloat(0.05),
		PayrollRate:   decimal.NewFromFloat(0.0765),
		DefaultIncome: decimal.NewFromInt(75000),
	}

	assert.True(t, tc.MarginalFederalRate("any").IsZero(), "no brackets means no federal rate")
	assert.True(t, tc.EffectiveRate("any").Equal(decimal.NewFromFloat(0.1265)))
}
