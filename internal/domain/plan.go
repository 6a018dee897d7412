package domain

import (
	"github.com/shopspring/decimal"
)

// Plan network types. HDHP plans pair with HSAs; the other three are grouped
// as "alternative" plans for bundle purposes.
const (
	PlanTypeHDHP = "HDHP"
	PlanTypePPO  = "PPO"
	PlanTypeHMO  = "HMO"
	PlanTypeEPO  = "EPO"
)

// Prescription drug tier keys used in plan rate tables.
const (
	RxTierGeneric      = "generic"
	RxTierPreferred    = "preferred"
	RxTierNonPreferred = "non_preferred"
	RxTierSpecialty    = "specialty"
)

// TierAmounts holds a dollar amount rated separately for individual and
// family coverage.
type TierAmounts struct {
	Individual decimal.Decimal `yaml:"individual" json:"individual"`
	Family     decimal.Decimal `yaml:"family" json:"family"`
}

// ForCoverage returns the family amount when isFamily is true, otherwise the
// individual amount.
func (t TierAmounts) ForCoverage(isFamily bool) decimal.Decimal {
	if isFamily {
		return t.Family
	}
	return t.Individual
}

// Copays holds per-service flat copay amounts. A zero PCP copay marks the
// plan as full-cost-then-deductible (typical of HDHPs) and disables copay
// accumulation entirely.
type Copays struct {
	PCP        decimal.Decimal `yaml:"pcp" json:"pcp"`
	Specialist decimal.Decimal `yaml:"specialist" json:"specialist"`
	ER         decimal.Decimal `yaml:"er" json:"er"`
	UrgentCare decimal.Decimal `yaml:"urgent_care" json:"urgentCare"`
}

// Plan is a candidate health plan as supplied by the benefits catalog. It is
// read-only during a computation.
type Plan struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`

	// Premiums maps coverage type to the monthly premium. Missing coverage
	// keys fall back to the employee tier.
	Premiums map[string]decimal.Decimal `yaml:"premiums" json:"premiums"`

	Deductibles TierAmounts `yaml:"deductibles" json:"deductibles"`
	OOPMax      TierAmounts `yaml:"oop_max" json:"oopMax"`
	Copays      Copays      `yaml:"copays" json:"copays"`

	// Coinsurance is the member's share after the deductible, as a percentage
	// in [0, 100].
	Coinsurance decimal.Decimal `yaml:"coinsurance" json:"coinsurance"`

	HSAEligible             bool        `yaml:"hsa_eligible" json:"hsaEligible"`
	HSAEmployerContribution TierAmounts `yaml:"hsa_employer_contribution" json:"hsaEmployerContribution"`
	FSAEligible             bool        `yaml:"fsa_eligible" json:"fsaEligible"`
	FSAEmployerContribution TierAmounts `yaml:"fsa_employer_contribution" json:"fsaEmployerContribution"`

	// RxTiers maps tier name to the monthly member cost for a drug in that
	// tier on this plan.
	RxTiers map[string]decimal.Decimal `yaml:"rx_tiers" json:"rxTiers"`

	// DrugTiers optionally overrides the tier for specific drugs on this
	// plan, keyed by drug id.
	DrugTiers map[string]string `yaml:"drug_tiers" json:"drugTiers,omitempty"`

	RequiresReferral bool     `yaml:"requires_referral" json:"requiresReferral,omitempty"`
	Highlights       []string `yaml:"highlights" json:"highlights"`
	Warnings         []string `yaml:"warnings" json:"warnings"`
}

// IsHDHP reports whether the plan is a high-deductible health plan.
func (p *Plan) IsHDHP() bool {
	return p.Type == PlanTypeHDHP
}

// IsAlternative reports whether the plan belongs to the non-HDHP group
// (PPO, HMO, or EPO).
func (p *Plan) IsAlternative() bool {
	switch p.Type {
	case PlanTypePPO, PlanTypeHMO, PlanTypeEPO:
		return true
	}
	return false
}

// EffectiveTier resolves the drug tier this plan charges for a prescription:
// the plan-specific override when present, otherwise the drug's own default
// tier.
func (p *Plan) EffectiveTier(rx Prescription) string {
	if tier, ok := p.DrugTiers[rx.ID]; ok && tier != "" {
		return tier
	}
	return rx.DefaultTier
}

// Prescription is a catalog drug record.
type Prescription struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	DefaultTier    string          `yaml:"default_tier" json:"defaultTier"`
	AvgMonthlyCost decimal.Decimal `yaml:"avg_monthly_cost" json:"avgMonthlyCost"`
}

// PlanTypes lists the valid plan type keys.
func PlanTypes() []string {
	return []string{PlanTypeHDHP, PlanTypePPO, PlanTypeHMO, PlanTypeEPO}
}
