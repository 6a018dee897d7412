package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNoCandidatePlans is returned when the candidate list contains no plan of
// any recognized type, so no bundle can be assembled. The accompanying
// response carries an empty bundle set and no best fit.
var ErrNoCandidatePlans = errors.New("no candidate plans")

// defaultHSAContribution is the illustrative annual contribution shown on the
// futureBuilder bundle. The tax-savings projection is independent of it; see
// CostEstimator.Estimate.
var defaultHSAContribution = decimal.NewFromInt(3000)

// BundleComposer assembles lifestyle bundles from candidate plans.
type BundleComposer struct {
	Estimator *CostEstimator
	Logger    Logger
}

// NewBundleComposer creates a composer on the default rates table.
func NewBundleComposer() *BundleComposer {
	return &BundleComposer{Estimator: NewCostEstimator(), Logger: NopLogger{}}
}

// NewBundleComposerWithRates creates a composer on a supplied rates table.
func NewBundleComposerWithRates(rates domain.Rates) *BundleComposer {
	return &BundleComposer{Estimator: NewCostEstimatorWithRates(rates), Logger: NopLogger{}}
}

// AnalyzePlans runs the estimator across every plan for both scenarios,
// preserving input order.
func (bc *BundleComposer) AnalyzePlans(profile *domain.UserProfile, plans []domain.Plan, prescriptions []domain.Prescription) []domain.PlanAnalysis {
	analyses := make([]domain.PlanAnalysis, 0, len(plans))
	for _, plan := range plans {
		analyses = append(analyses, domain.PlanAnalysis{
			Plan:      plan,
			Typical:   bc.Estimator.Estimate(profile, &plan, prescriptions, domain.ScenarioTypical),
			WorstCase: bc.Estimator.Estimate(profile, &plan, prescriptions, domain.ScenarioWorst),
		})
	}
	return analyses
}

// GenerateBundles assembles up to four named bundles and selects the best
// fit. Bundles whose prerequisite plan type is missing are omitted rather
// than failing the computation; when no bundle at all can be assembled the
// response is empty, BestFit is blank, and ErrNoCandidatePlans is returned.
func (bc *BundleComposer) GenerateBundles(profile *domain.UserProfile, plans []domain.Plan, prescriptions []domain.Prescription) (domain.BundleResponse, error) {
	bc.Logger.Infof("generating bundles: coverage=%s plans=%d prescriptions=%d",
		profile.CoverageType, len(plans), len(prescriptions))

	analyses := bc.AnalyzePlans(profile, plans, prescriptions)

	var hdhpCandidates, altCandidates []domain.PlanAnalysis
	for _, a := range analyses {
		switch {
		case a.Plan.IsHDHP():
			hdhpCandidates = append(hdhpCandidates, a)
		case a.Plan.IsAlternative():
			altCandidates = append(altCandidates, a)
		}
	}

	// Lowest typical-year net cost wins within each group; stable sort keeps
	// catalog order as the tie-break.
	bestHdhp := cheapestByNetCost(hdhpCandidates)
	bestAlt := cheapestByNetCost(altCandidates)

	if bestHdhp == nil || bestAlt == nil {
		bc.Logger.Warnf("incomplete candidate set: hdhp=%v alternative=%v", bestHdhp != nil, bestAlt != nil)
	}

	var bundles domain.BundleSet

	if bestHdhp != nil && bestHdhp.Plan.HSAEligible {
		bundles.FutureBuilder = &domain.BundleRecommendation{
			ID:            "future_builder",
			Title:         "The Future Builder",
			Description:   "Maximize tax savings and build long-term wealth.",
			Plan:          bestHdhp.Plan,
			AccountType:   domain.AccountHSA,
			Contribution:  defaultHSAContribution,
			CostBreakdown: bestHdhp.Typical,
			Reasons: []string{
				"Lowest monthly premiums",
				"Tax-free growth potential",
				"Employer contribution included",
			},
		}
	}

	if bestAlt != nil {
		// Size the FSA to the known recurring spend on the plan.
		predictable := bestAlt.Typical.Prescriptions.Add(bestAlt.Typical.Copays)
		bundles.SafetyNet = &domain.BundleRecommendation{
			ID:            "safety_net",
			Title:         "The Safety Net",
			Description:   "Predictable costs with a discount on known bills.",
			Plan:          bestAlt.Plan,
			AccountType:   domain.AccountFSA,
			Contribution:  predictable,
			CostBreakdown: bestAlt.Typical,
			Reasons: []string{
				"Predictable copays",
				fmt.Sprintf("Cover $%s of known costs tax-free", predictable.Round(0)),
				"No surprise bills",
			},
		}
	}

	if bestHdhp != nil {
		bundles.LeanAndMean = &domain.BundleRecommendation{
			ID:            "lean_mean",
			Title:         "The Lean & Mean",
			Description:   "Lowest possible monthly cost. Pay only when you go.",
			Plan:          bestHdhp.Plan,
			AccountType:   domain.AccountNone,
			Contribution:  decimalZero,
			CostBreakdown: withoutHSABenefits(bestHdhp.Typical),
			Reasons: []string{
				"Maximum cash in pocket now",
				"Pay for care only if needed",
				"No \"use it or lose it\" risk",
			},
		}
	}

	if bestAlt != nil {
		bundles.PeaceOfMind = &domain.BundleRecommendation{
			ID:            "peace_mind",
			Title:         "The Peace of Mind",
			Description:   "Maximum coverage without the complexity of accounts.",
			Plan:          bestAlt.Plan,
			AccountType:   domain.AccountNone,
			Contribution:  decimalZero,
			CostBreakdown: withoutFSABenefits(bestAlt.Typical),
			Reasons: []string{
				"See any doctor",
				"No tax forms to manage",
				"Simple and stress-free",
			},
		}
	}

	resp := domain.BundleResponse{Bundles: bundles}
	if bundles.Len() == 0 {
		return resp, ErrNoCandidatePlans
	}

	resp.BestFit = selectBestFit(profile, bestHdhp, bestAlt, &bundles)
	return resp, nil
}

// cheapestByNetCost returns the analysis with the lowest typical net cost,
// or nil for an empty slice. Ties keep the earlier plan.
func cheapestByNetCost(analyses []domain.PlanAnalysis) *domain.PlanAnalysis {
	if len(analyses) == 0 {
		return nil
	}
	sorted := make([]domain.PlanAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Typical.NetCost.LessThan(sorted[j].Typical.NetCost)
	})
	return &sorted[0]
}

// withoutHSABenefits copies a breakdown with the HSA fields zeroed and the
// net cost restated as the full total, for bundles that elect no account.
func withoutHSABenefits(b domain.CostBreakdown) domain.CostBreakdown {
	b.HSASavings = decimalZero
	b.HSAEmployerContribution = decimalZero
	b.NetCost = b.Total
	return b
}

// withoutFSABenefits copies a breakdown with the FSA seed zeroed and the net
// cost restated as the full total.
func withoutFSABenefits(b domain.CostBreakdown) domain.CostBreakdown {
	b.FSAEmployerContribution = decimalZero
	b.NetCost = b.Total
	return b
}
