package calculation

import (
	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// CostEstimator turns a profile, a plan, and a scenario into an annual cost
// breakdown. It is pure: no I/O, no shared state, deterministic for a given
// input.
type CostEstimator struct {
	Rates   domain.Rates
	TaxCalc *HSATaxCalculator
}

// NewCostEstimator creates an estimator on the default rates table.
func NewCostEstimator() *CostEstimator {
	return NewCostEstimatorWithRates(domain.DefaultRates())
}

// NewCostEstimatorWithRates creates an estimator on a supplied rates table.
// The table is merged over defaults so partial overrides stay safe.
func NewCostEstimatorWithRates(rates domain.Rates) *CostEstimator {
	merged := rates.MergeDefaults()
	return &CostEstimator{
		Rates:   merged,
		TaxCalc: NewHSATaxCalculatorWithRates(merged),
	}
}

// medicalCosts is the intermediate result of the utilization model.
type medicalCosts struct {
	PreCoverage  decimal.Decimal // list price of all projected care
	PostCoverage decimal.Decimal // member-paid medical after the OOP cap, excluding copays
	Copays       decimal.Decimal
	Coinsurance  decimal.Decimal // pre-cap coinsurance, informational
}

// visitCount projects annual visits for a frequency answer, scaled by health
// status and household size.
func (ce *CostEstimator) visitCount(answer, fallbackKey string, scenario domain.Scenario, healthMultiplier, members decimal.Decimal) decimal.Decimal {
	vr := lookupOr(ce.Rates.VisitCounts, keyOr(answer, fallbackKey), ce.Rates.VisitCounts[fallbackKey])
	base := vr.Typical
	if scenario == domain.ScenarioWorst {
		base = vr.Max
	}
	return base.Mul(healthMultiplier).Mul(members)
}

// estimateMedicalCosts runs the utilization model for one plan and scenario.
func (ce *CostEstimator) estimateMedicalCosts(profile *domain.UserProfile, plan *domain.Plan, scenario domain.Scenario) medicalCosts {
	isFamily := profile.IsFamilyCoverage()
	deductible := plan.Deductibles.ForCoverage(isFamily)
	oopMax := plan.OOPMax.ForCoverage(isFamily)

	healthMultiplier := lookupOr(ce.Rates.HealthMultipliers,
		keyOr(profile.HealthStatus, domain.FallbackHealthStatus), decimal.NewFromInt(1))
	members := decimal.NewFromInt(int64(profile.MemberCount()))

	pcpVisits := ce.visitCount(profile.PCPVisits, domain.FallbackPCPVisits, scenario, healthMultiplier, members)
	specialistVisits := ce.visitCount(profile.SpecialistVisits, domain.FallbackSpecialistVisits, scenario, healthMultiplier, members)

	er := lookupOr(ce.Rates.ERCounts, keyOr(profile.ERUrgentCare, domain.FallbackERUrgentCare),
		ce.Rates.ERCounts[domain.FallbackERUrgentCare])
	erBase := er.Typical
	if scenario == domain.ScenarioWorst {
		erBase = er.Worst
	}
	erVisits := erBase.Mul(members)

	// Copays accumulate only on copay plans; a zero PCP copay means the plan
	// is full-cost-then-deductible.
	copays := decimalZero
	if plan.Copays.PCP.GreaterThan(decimalZero) {
		copays = copays.Add(pcpVisits.Mul(plan.Copays.PCP))
		copays = copays.Add(specialistVisits.Mul(plan.Copays.Specialist))
		copays = copays.Add(erVisits.Mul(firstPositive(plan.Copays.ER, plan.Copays.UrgentCare)))
	}

	// List price of projected care before any insurance applies.
	preCoverage := pcpVisits.Mul(ce.Rates.Services.PCPVisit).
		Add(specialistVisits.Mul(ce.Rates.Services.SpecialistVisit)).
		Add(erVisits.Mul(ce.Rates.Services.ERVisit))

	for _, tag := range profile.PlannedProcedures {
		cr, ok := ce.Rates.Services.ProcedureRange(tag)
		if !ok {
			continue
		}
		if scenario == domain.ScenarioWorst {
			preCoverage = preCoverage.Add(cr.Max)
		} else {
			preCoverage = preCoverage.Add(cr.Min)
		}
	}

	costsAfterDeductible := decimal.Max(decimalZero, preCoverage.Sub(deductible))
	coinsurance := costsAfterDeductible.Mul(plan.Coinsurance.Div(decimalHundred))

	// The OOP max caps deductible, coinsurance, and copays combined. The
	// full contractual deductible counts toward exposure regardless of how
	// much of it projected utilization would actually consume.
	totalOutOfPocket := decimal.Min(deductible.Add(coinsurance).Add(copays), oopMax)

	return medicalCosts{
		PreCoverage:  preCoverage,
		PostCoverage: totalOutOfPocket.Sub(copays),
		Copays:       copays,
		Coinsurance:  coinsurance,
	}
}

// estimatePrescriptionCosts prices the profile's drug selections on a plan.
// Tier resolution: plan override, then the drug's default tier; pricing:
// that tier's rate, then the plan's generic rate, then the flat default.
func (ce *CostEstimator) estimatePrescriptionCosts(profile *domain.UserProfile, plan *domain.Plan, prescriptions []domain.Prescription) decimal.Decimal {
	byID := make(map[string]domain.Prescription, len(prescriptions))
	for _, rx := range prescriptions {
		byID[rx.ID] = rx
	}

	total := decimalZero
	for _, selection := range profile.Prescriptions {
		rx, ok := byID[selection.ID]
		if !ok {
			continue
		}

		tier := plan.EffectiveTier(rx)
		monthly := firstPositive(
			lookupOr(plan.RxTiers, tier, decimalZero),
			lookupOr(plan.RxTiers, domain.RxTierGeneric, decimalZero),
			ce.Rates.DefaultRxMonthly,
		)

		total = total.Add(monthly.Mul(decimalTwelve).Mul(decimal.NewFromInt(int64(selection.Quantity))))
	}

	return total
}

// Estimate computes the full annual cost breakdown of a plan for a profile
// under one scenario.
func (ce *CostEstimator) Estimate(profile *domain.UserProfile, plan *domain.Plan, prescriptions []domain.Prescription, scenario domain.Scenario) domain.CostBreakdown {
	isFamily := profile.IsFamilyCoverage()

	monthlyPremium := firstPositive(
		lookupOr(plan.Premiums, profile.CoverageType, decimalZero),
		lookupOr(plan.Premiums, domain.CoverageEmployee, decimalZero),
	)
	premium := monthlyPremium.Mul(decimalTwelve)

	medical := ce.estimateMedicalCosts(profile, plan, scenario)
	rxCosts := ce.estimatePrescriptionCosts(profile, plan, prescriptions)

	hsaEmployer := decimalZero
	hsaSavings := decimalZero
	if plan.HSAEligible {
		hsaEmployer = plan.HSAEmployerContribution.ForCoverage(isFamily)

		// Savings are projected at the statutory maximum contribution for
		// the coverage tier. This sizes the opportunity, not a promise of
		// what the employee will contribute.
		maxContribution := ce.Rates.HSALimits.ForCoverage(isFamily)
		hsaSavings = ce.TaxCalc.ProjectSavings(maxContribution, profile.HouseholdIncome)
	}

	fsaEmployer := decimalZero
	if plan.FSAEligible {
		fsaEmployer = plan.FSAEmployerContribution.ForCoverage(isFamily)
	}

	total := premium.Add(medical.PostCoverage).Add(medical.Copays).Add(rxCosts)
	netCost := total.Sub(hsaEmployer).Sub(hsaSavings).Sub(fsaEmployer)

	return domain.CostBreakdown{
		Premium:                 premium,
		Deductible:              medical.PostCoverage,
		Copays:                  medical.Copays,
		Coinsurance:             medical.Coinsurance,
		Prescriptions:           rxCosts,
		Total:                   total,
		HSASavings:              hsaSavings,
		HSAEmployerContribution: hsaEmployer,
		FSAEmployerContribution: fsaEmployer,
		NetCost:                 netCost,
	}
}
