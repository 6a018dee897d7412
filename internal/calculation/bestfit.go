package calculation

import (
	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Selector policy constants.
var (
	// defaultMaxSurpriseBill stands in when the employee left the
	// surprise-bill question blank.
	defaultMaxSurpriseBill = decimal.NewFromInt(2000)

	// predictableCostFloor is the known-recurring-spend threshold above
	// which pre-funding an FSA beats skipping accounts.
	predictableCostFloor = decimal.NewFromInt(500)

	// bestFitFallback orders the presence fallback from least risky and
	// least complex to most, mirroring the selector's own default arm.
	bestFitFallback = []string{
		domain.BundlePeaceOfMind,
		domain.BundleSafetyNet,
		domain.BundleLeanAndMean,
		domain.BundleFutureBuilder,
	}
)

// selectBestFit names exactly one bundle for the profile. Liquidity is
// checked before stated risk preference: an HDHP pick that bankrupts the
// employee on a bad year is worse than overriding their premium-minimization
// answer. The returned key is guaranteed present in bundles.
func selectBestFit(profile *domain.UserProfile, bestHdhp, bestAlt *domain.PlanAnalysis, bundles *domain.BundleSet) string {
	predictableCost := decimalZero
	if bestAlt != nil {
		predictableCost = bestAlt.Typical.Prescriptions.Add(bestAlt.Typical.Copays)
	}

	maxSurpriseBill := profile.MaxSurpriseBill
	if maxSurpriseBill.IsZero() {
		maxSurpriseBill = defaultMaxSurpriseBill
	}

	// The worst-case deductible exposure is contractual, not
	// utilization-dependent: even a healthy year's accident triggers it.
	leanMeanRisky := bestHdhp != nil && bestHdhp.WorstCase.Deductible.GreaterThan(maxSurpriseBill)

	var bestFit string
	switch {
	case profile.IsLowLiquidity():
		if leanMeanRisky {
			if predictableCost.GreaterThan(predictableCostFloor) {
				bestFit = domain.BundleSafetyNet
			} else {
				bestFit = domain.BundlePeaceOfMind
			}
		} else {
			bestFit = domain.BundleLeanAndMean
		}
	case profile.RiskTolerance == domain.RiskSaver || profile.RiskTolerance == domain.RiskMinimizePremium:
		bestFit = domain.BundleFutureBuilder
	case predictableCost.GreaterThan(predictableCostFloor) && !profile.WantsSimplicity():
		bestFit = domain.BundleSafetyNet
	default:
		bestFit = domain.BundlePeaceOfMind
	}

	return ensurePresent(bundles, bestFit)
}

// ensurePresent guards the response invariant that BestFit references an
// assembled bundle. The naive rule can name an absent bundle (e.g.
// futureBuilder with no HSA-eligible HDHP in the catalog); walk the fallback
// order instead.
func ensurePresent(bundles *domain.BundleSet, key string) string {
	if bundles.Has(key) {
		return key
	}
	for _, k := range bestFitFallback {
		if bundles.Has(k) {
			return k
		}
	}
	return ""
}
