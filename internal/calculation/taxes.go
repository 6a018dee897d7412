package calculation

import (
	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX PROJECTION ASSUMPTIONS:
//
// 1. Federal: 2025 brackets, selected by the midpoint of the employee's
//    stated income bracket. The marginal rate is used directly; no deduction
//    modeling, since HSA contributions come off the top of gross income.
//
// 2. State: flat 5% average estimate (actual rates vary 0-13%). The
//    projection is an opportunity figure, not a filing.
//
// 3. Payroll: 7.65% FICA applies because HSA contributions made through
//    payroll are exempt from it. FSA employer seeds get no such projection.

// HSATaxCalculator projects the tax savings of pre-tax HSA contributions.
type HSATaxCalculator struct {
	Brackets        []domain.TaxBracket
	StateRate       decimal.Decimal
	PayrollRate     decimal.Decimal
	IncomeMidpoints map[string]decimal.Decimal
	DefaultIncome   decimal.Decimal
}

// NewHSATaxCalculator creates a tax calculator from the default rates table.
func NewHSATaxCalculator() *HSATaxCalculator {
	return NewHSATaxCalculatorWithRates(domain.DefaultRates())
}

// NewHSATaxCalculatorWithRates creates a tax calculator from a supplied
// rates table.
func NewHSATaxCalculatorWithRates(rates domain.Rates) *HSATaxCalculator {
	return &HSATaxCalculator{
		Brackets:        rates.TaxBrackets,
		StateRate:       rates.StateRate,
		PayrollRate:     rates.PayrollRate,
		IncomeMidpoints: rates.IncomeMidpoints,
		DefaultIncome:   rates.DefaultIncome,
	}
}

// MarginalFederalRate returns the federal bracket rate at the midpoint of an
// income bracket key. Unknown keys assume the default income; income below
// every bracket floor falls back to the first bracket.
func (tc *HSATaxCalculator) MarginalFederalRate(incomeBracket string) decimal.Decimal {
	income := lookupOr(tc.IncomeMidpoints, incomeBracket, tc.DefaultIncome)

	for _, b := range tc.Brackets {
		if income.GreaterThanOrEqual(b.Min) && income.LessThan(b.Max) {
			return b.Rate
		}
	}
	if len(tc.Brackets) > 0 {
		return tc.Brackets[0].Rate
	}
	return decimal.Zero
}

// EffectiveRate is the combined federal, state, and payroll rate applied to
// pre-tax HSA contributions.
func (tc *HSATaxCalculator) EffectiveRate(incomeBracket string) decimal.Decimal {
	return tc.MarginalFederalRate(incomeBracket).Add(tc.StateRate).Add(tc.PayrollRate)
}

// ProjectSavings returns the annual tax saved by contributing the given
// amount pre-tax.
func (tc *HSATaxCalculator) ProjectSavings(contribution decimal.Decimal, incomeBracket string) decimal.Decimal {
	return contribution.Mul(tc.EffectiveRate(incomeBracket))
}
