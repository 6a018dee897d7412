package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario selects between the expected-utilization and bad-year cost models.
type Scenario string

const (
	ScenarioTypical Scenario = "typical"
	ScenarioWorst   Scenario = "worst"
)

// Account types a bundle can pair with its plan.
const (
	AccountHSA  = "HSA"
	AccountFSA  = "FSA"
	AccountNone = "None"
)

// Bundle keys in the response map.
const (
	BundleFutureBuilder = "futureBuilder"
	BundleSafetyNet     = "safetyNet"
	BundleLeanAndMean   = "leanAndMean"
	BundlePeaceOfMind   = "peaceOfMind"
)

// CostBreakdown is the estimated annual cost of one plan for one scenario.
// Deductible is the member-paid portion of medical spend after the
// out-of-pocket cap, excluding copays. Coinsurance is the pre-cap coinsurance
// amount, carried for display.
type CostBreakdown struct {
	Premium       decimal.Decimal `json:"premium"`
	Deductible    decimal.Decimal `json:"deductible"`
	Copays        decimal.Decimal `json:"copays"`
	Coinsurance   decimal.Decimal `json:"coinsurance"`
	Prescriptions decimal.Decimal `json:"prescriptions"`
	Total         decimal.Decimal `json:"total"`

	HSASavings              decimal.Decimal `json:"hsaSavings"`
	HSAEmployerContribution decimal.Decimal `json:"hsaEmployerContribution"`
	FSAEmployerContribution decimal.Decimal `json:"fsaEmployerContribution"`

	// NetCost is Total less all account benefits.
	NetCost decimal.Decimal `json:"netCost"`
}

// PlanAnalysis pairs a plan with its typical and worst-case breakdowns.
type PlanAnalysis struct {
	Plan      Plan          `json:"plan"`
	Typical   CostBreakdown `json:"typical"`
	WorstCase CostBreakdown `json:"worstCase"`
}

// BundleRecommendation is a named plan-plus-account pairing.
type BundleRecommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Plan        Plan   `json:"plan"`
	AccountType string `json:"accountType"`

	// Contribution is the annual dollars associated with the bundle's
	// account: an illustrative default for HSAs, the predictable-cost
	// estimate for FSAs, zero for account-free bundles.
	Contribution decimal.Decimal `json:"contribution"`

	CostBreakdown CostBreakdown `json:"costBreakdown"`
	Reasons       []string      `json:"reasons"`
}

// BundleSet holds the up-to-four assembled bundles. A nil field means the
// bundle's prerequisite plan was not available.
type BundleSet struct {
	FutureBuilder *BundleRecommendation `json:"futureBuilder,omitempty"`
	SafetyNet     *BundleRecommendation `json:"safetyNet,omitempty"`
	LeanAndMean   *BundleRecommendation `json:"leanAndMean,omitempty"`
	PeaceOfMind   *BundleRecommendation `json:"peaceOfMind,omitempty"`
}

// Get returns the bundle for a key, or nil when the key is unknown or the
// bundle is absent.
func (s *BundleSet) Get(key string) *BundleRecommendation {
	switch key {
	case BundleFutureBuilder:
		return s.FutureBuilder
	case BundleSafetyNet:
		return s.SafetyNet
	case BundleLeanAndMean:
		return s.LeanAndMean
	case BundlePeaceOfMind:
		return s.PeaceOfMind
	}
	return nil
}

// Has reports whether the bundle for a key is present.
func (s *BundleSet) Has(key string) bool {
	return s.Get(key) != nil
}

// Keys returns the present bundle keys in canonical display order.
func (s *BundleSet) Keys() []string {
	keys := make([]string, 0, 4)
	for _, k := range []string{BundleFutureBuilder, BundleSafetyNet, BundleLeanAndMean, BundlePeaceOfMind} {
		if s.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of present bundles.
func (s *BundleSet) Len() int {
	return len(s.Keys())
}

// BundleResponse is the engine's composite output. BestFit keys into Bundles
// and is empty only in the degenerate zero-bundle case.
type BundleResponse struct {
	Bundles BundleSet `json:"bundles"`
	BestFit string    `json:"bestFitBundle,omitempty"`
}
