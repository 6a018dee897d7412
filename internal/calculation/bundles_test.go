package calculation

import (
	"testing"

	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []domain.Plan {
	return []domain.Plan{hdhpPlan(), ppoPlan()}
}

func drugCatalog() []domain.Prescription {
	return []domain.Prescription{
		{ID: "drug-x", Name: "Drug X", DefaultTier: domain.RxTierPreferred, AvgMonthlyCost: d(30)},
	}
}

func TestGenerateBundles_AssemblesAllFour(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Bundles.Len())
	require.True(t, resp.Bundles.Has(domain.BundleFutureBuilder))
	require.True(t, resp.Bundles.Has(domain.BundleSafetyNet))
	require.True(t, resp.Bundles.Has(domain.BundleLeanAndMean))
	require.True(t, resp.Bundles.Has(domain.BundlePeaceOfMind))

	fb := resp.Bundles.FutureBuilder
	assert.Equal(t, "plan-hdhp", fb.Plan.ID)
	assert.Equal(t, domain.AccountHSA, fb.AccountType)
	assert.True(t, fb.Contribution.Equal(d(3000)))

	pm := resp.Bundles.PeaceOfMind
	assert.Equal(t, "plan-ppo", pm.Plan.ID)
	assert.Equal(t, domain.AccountNone, pm.AccountType)
	assert.True(t, pm.Contribution.IsZero())
}

func TestGenerateBundles_LeanAndMeanDropsAccountBenefits(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)

	lm := resp.Bundles.LeanAndMean
	require.NotNil(t, lm)
	assert.True(t, lm.CostBreakdown.HSASavings.IsZero())
	assert.True(t, lm.CostBreakdown.HSAEmployerContribution.IsZero())
	assert.True(t, lm.CostBreakdown.NetCost.Equal(lm.CostBreakdown.Total),
		"with no account elected, net cost is the full total")

	// The same plan under futureBuilder keeps its HSA benefits.
	fb := resp.Bundles.FutureBuilder
	assert.True(t, fb.CostBreakdown.HSAEmployerContribution.Equal(d(500)))
	assert.True(t, fb.CostBreakdown.NetCost.LessThan(fb.CostBreakdown.Total))
}

func TestGenerateBundles_SafetyNetSizesFSAToKnownSpend(t *testing.T) {
	bc := NewBundleComposer()

	profile := baseProfile()
	profile.HealthStatus = domain.HealthFair
	profile.PCPVisits = "frequently"
	profile.SpecialistVisits = "occasionally"
	profile.Prescriptions = []domain.RxSelection{{ID: "drug-x", Quantity: 1}}

	resp, err := bc.GenerateBundles(&profile, catalog(), drugCatalog())
	require.NoError(t, err)

	sn := resp.Bundles.SafetyNet
	require.NotNil(t, sn)
	assert.Equal(t, domain.AccountFSA, sn.AccountType)
	// PPO copays: 12 PCP visits and 3 specialist visits at fair health (1.2x)
	// come to $540; drug-x at the generic rate adds $120.
	assert.True(t, sn.Contribution.Equal(d(660)), "got %s", sn.Contribution)
	assert.Contains(t, sn.Reasons, "Cover $660 of known costs tax-free")
}

func TestGenerateBundles_BestFitSaverPrefersFutureBuilder(t *testing.T) {
	bc := NewBundleComposer()

	profile := baseProfile()
	profile.RiskTolerance = domain.RiskSaver

	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleFutureBuilder, resp.BestFit)

	profile.RiskTolerance = domain.RiskMinimizePremium
	resp, err = bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleFutureBuilder, resp.BestFit)
}

func TestGenerateBundles_BestFitPredictableSpendPrefersSafetyNet(t *testing.T) {
	bc := NewBundleComposer()

	profile := baseProfile()
	profile.HealthStatus = domain.HealthFair
	profile.PCPVisits = "frequently"
	profile.SpecialistVisits = "occasionally"

	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleSafetyNet, resp.BestFit)

	// An employee who refuses account paperwork gets peace of mind instead.
	profile.ComplexityTolerance = boolPtr(false)
	resp, err = bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePeaceOfMind, resp.BestFit)
}

func TestGenerateBundles_BestFitLowLiquidity(t *testing.T) {
	bc := NewBundleComposer()

	profile := baseProfile()
	profile.LiquidityCheck = boolPtr(false)
	profile.MaxSurpriseBill = d(500)

	// The HDHP's worst-case deductible exposure ($3000) dwarfs what the
	// employee could absorb, so lean & mean is off the table.
	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePeaceOfMind, resp.BestFit)

	// Same answer with the question left blank: the $2000 default still
	// rules the HDHP out.
	profile.MaxSurpriseBill = decimal.Zero
	resp, err = bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePeaceOfMind, resp.BestFit)

	// With meaningful predictable spend the FSA route wins over plain PPO.
	profile.HealthStatus = domain.HealthFair
	profile.PCPVisits = "frequently"
	profile.SpecialistVisits = "occasionally"
	resp, err = bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleSafetyNet, resp.BestFit)
}

func TestGenerateBundles_BestFitLowLiquidityTolerableDeductible(t *testing.T) {
	bc := NewBundleComposer()

	profile := baseProfile()
	profile.LiquidityCheck = boolPtr(false)
	profile.MaxSurpriseBill = d(6000)

	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleLeanAndMean, resp.BestFit,
		"a deductible within stated tolerance keeps the cheap plan viable")
}

func TestGenerateBundles_BestFitDefaultsToPeaceOfMind(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	resp, err := bc.GenerateBundles(&profile, catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePeaceOfMind, resp.BestFit)
}

func TestGenerateBundles_BestFitFallsBackWhenBundleAbsent(t *testing.T) {
	bc := NewBundleComposer()

	// No HSA on the HDHP: futureBuilder cannot be assembled, so the saver
	// preference degrades to the least complex available bundle.
	noHSA := hdhpPlan()
	noHSA.HSAEligible = false
	noHSA.HSAEmployerContribution = domain.TierAmounts{}

	profile := baseProfile()
	profile.RiskTolerance = domain.RiskSaver

	resp, err := bc.GenerateBundles(&profile, []domain.Plan{noHSA, ppoPlan()}, nil)
	require.NoError(t, err)
	assert.False(t, resp.Bundles.Has(domain.BundleFutureBuilder))
	assert.Equal(t, domain.BundlePeaceOfMind, resp.BestFit)
}

func TestGenerateBundles_HDHPOnlyCatalog(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	resp, err := bc.GenerateBundles(&profile, []domain.Plan{hdhpPlan()}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Bundles.Len())
	assert.True(t, resp.Bundles.Has(domain.BundleFutureBuilder))
	assert.True(t, resp.Bundles.Has(domain.BundleLeanAndMean))
	assert.False(t, resp.Bundles.Has(domain.BundleSafetyNet))
	assert.False(t, resp.Bundles.Has(domain.BundlePeaceOfMind))

	// The default pick names an absent bundle; the fallback lands on the
	// least risky one actually present.
	assert.Equal(t, domain.BundleLeanAndMean, resp.BestFit)
}

func TestGenerateBundles_NoCandidatePlans(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	resp, err := bc.GenerateBundles(&profile, nil, nil)
	assert.ErrorIs(t, err, ErrNoCandidatePlans)
	assert.Equal(t, 0, resp.Bundles.Len())
	assert.Empty(t, resp.BestFit)

	// Plans of no recognized type are the same as no plans.
	resp, err = bc.GenerateBundles(&profile, []domain.Plan{{ID: "odd", Type: "indemnity"}}, nil)
	assert.ErrorIs(t, err, ErrNoCandidatePlans)
	assert.Equal(t, 0, resp.Bundles.Len())
}

func TestGenerateBundles_CheapestPlanWinsEachGroup(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	cheaper := hdhpPlan()
	cheaper.ID = "plan-hdhp-cheap"
	cheaper.Premiums[domain.CoverageEmployee] = d(80)

	resp, err := bc.GenerateBundles(&profile, []domain.Plan{hdhpPlan(), cheaper, ppoPlan()}, nil)
	require.NoError(t, err)
	assert.Equal(t, "plan-hdhp-cheap", resp.Bundles.FutureBuilder.Plan.ID)
	assert.Equal(t, "plan-hdhp-cheap", resp.Bundles.LeanAndMean.Plan.ID)
}

func TestGenerateBundles_TieBreakKeepsCatalogOrder(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	twin := hdhpPlan()
	twin.ID = "plan-hdhp-twin"

	resp, err := bc.GenerateBundles(&profile, []domain.Plan{hdhpPlan(), twin, ppoPlan()}, nil)
	require.NoError(t, err)
	assert.Equal(t, "plan-hdhp", resp.Bundles.FutureBuilder.Plan.ID,
		"identical net costs resolve to the plan listed first")
}

func TestAnalyzePlans_PreservesInputOrder(t *testing.T) {
	bc := NewBundleComposer()
	profile := baseProfile()

	analyses := bc.AnalyzePlans(&profile, catalog(), nil)
	require.Len(t, analyses, 2)
	assert.Equal(t, "plan-hdhp", analyses[0].Plan.ID)
	assert.Equal(t, "plan-ppo", analyses[1].Plan.ID)

	for _, a := range analyses {
		assert.True(t, a.WorstCase.Total.GreaterThanOrEqual(a.Typical.Total),
			"%s: worst case can never cost less than typical", a.Plan.ID)
	}
}
