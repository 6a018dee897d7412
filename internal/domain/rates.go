package domain

import (
	"github.com/shopspring/decimal"
)

// VisitRange maps a usage-frequency answer to annual visit counts. Typical
// drives the typical scenario and may be fractional; Max drives the worst
// case.
type VisitRange struct {
	Min     decimal.Decimal `yaml:"min" json:"min"`
	Max     decimal.Decimal `yaml:"max" json:"max"`
	Typical decimal.Decimal `yaml:"typical" json:"typical"`
}

// ERRange maps an ER/urgent-care answer to visit counts per scenario.
type ERRange struct {
	Probability decimal.Decimal `yaml:"probability" json:"probability"`
	Typical     decimal.Decimal `yaml:"typical" json:"typical"`
	Worst       decimal.Decimal `yaml:"worst" json:"worst"`
}

// CostRange is a low/high dollar range for a procedure. The typical scenario
// uses Min, the worst case uses Max.
type CostRange struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// ServiceCosts holds list-price estimates for medical services before any
// insurance applies.
type ServiceCosts struct {
	PCPVisit        decimal.Decimal `yaml:"pcp_visit" json:"pcpVisit"`
	SpecialistVisit decimal.Decimal `yaml:"specialist_visit" json:"specialistVisit"`
	ERVisit         decimal.Decimal `yaml:"er_visit" json:"erVisit"`
	UrgentCare      decimal.Decimal `yaml:"urgent_care" json:"urgentCare"`
	Pregnancy       CostRange       `yaml:"pregnancy" json:"pregnancy"`
	SurgeryMinor    CostRange       `yaml:"surgery_minor" json:"surgeryMinor"`
	SurgeryMajor    CostRange       `yaml:"surgery_major" json:"surgeryMajor"`
}

// ProcedureRange returns the cost range for a planned-procedure tag.
// Unrecognized tags return false and are ignored by the estimator.
func (s ServiceCosts) ProcedureRange(tag string) (CostRange, bool) {
	switch tag {
	case ProcedurePregnancy:
		return s.Pregnancy, true
	case ProcedureSurgeryMinor:
		return s.SurgeryMinor, true
	case ProcedureSurgeryMajor:
		return s.SurgeryMajor, true
	}
	return CostRange{}, false
}

// TaxBracket is one progressive federal bracket. Brackets are ordered,
// non-overlapping, and the last one is effectively unbounded.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// HSALimits holds the annual IRS contribution limits by coverage tier.
type HSALimits struct {
	Individual decimal.Decimal `yaml:"individual" json:"individual"`
	Family     decimal.Decimal `yaml:"family" json:"family"`
	CatchUp    decimal.Decimal `yaml:"catch_up" json:"catchUp"` // additional for 55+
}

// ForCoverage returns the family limit when isFamily is true, otherwise the
// individual limit.
func (l HSALimits) ForCoverage(isFamily bool) decimal.Decimal {
	if isFamily {
		return l.Family
	}
	return l.Individual
}

// Fallback keys used when a profile answer is missing or unrecognized.
const (
	FallbackPCPVisits        = "occasionally"
	FallbackSpecialistVisits = "none"
	FallbackERUrgentCare     = "none"
	FallbackHealthStatus     = HealthGood
)

// Rates is the financial constants table the whole engine reads from. All
// policy numbers live here so the calculators stay free of magic literals.
// Empty tables are filled from DefaultRates via MergeDefaults.
type Rates struct {
	VisitCounts       map[string]VisitRange      `yaml:"visit_counts" json:"visitCounts"`
	HealthMultipliers map[string]decimal.Decimal `yaml:"health_multipliers" json:"healthMultipliers"`
	ERCounts          map[string]ERRange         `yaml:"er_counts" json:"erCounts"`
	Services          ServiceCosts               `yaml:"services" json:"services"`
	TaxBrackets       []TaxBracket               `yaml:"tax_brackets" json:"taxBrackets"`
	StateRate         decimal.Decimal            `yaml:"state_rate" json:"stateRate"`
	PayrollRate       decimal.Decimal            `yaml:"payroll_rate" json:"payrollRate"`
	IncomeMidpoints   map[string]decimal.Decimal `yaml:"income_midpoints" json:"incomeMidpoints"`
	HSALimits         HSALimits                  `yaml:"hsa_limits" json:"hsaLimits"`

	// DefaultIncome is the midpoint assumed when the income bracket is
	// missing or unrecognized.
	DefaultIncome decimal.Decimal `yaml:"default_income" json:"defaultIncome"`

	// DefaultRxMonthly is the last-resort monthly drug cost when a plan's
	// rate table has neither the resolved tier nor a generic rate.
	DefaultRxMonthly decimal.Decimal `yaml:"default_rx_monthly" json:"defaultRxMonthly"`
}

// DefaultRates returns the 2025 reference data.
func DefaultRates() Rates {
	return Rates{
		VisitCounts: map[string]VisitRange{
			"none":         {Min: decimal.Zero, Max: decimal.Zero, Typical: decimal.Zero},
			"1-2":          {Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(2), Typical: decimal.NewFromFloat(1.5)},
			"3-5":          {Min: decimal.NewFromInt(3), Max: decimal.NewFromInt(5), Typical: decimal.NewFromInt(4)},
			"6+":           {Min: decimal.NewFromInt(6), Max: decimal.NewFromInt(10), Typical: decimal.NewFromInt(8)},
			"rarely":       {Min: decimal.Zero, Max: decimal.NewFromInt(1), Typical: decimal.NewFromFloat(0.5)},
			"occasionally": {Min: decimal.NewFromInt(2), Max: decimal.NewFromInt(4), Typical: decimal.NewFromInt(3)},
			"regularly":    {Min: decimal.NewFromInt(5), Max: decimal.NewFromInt(8), Typical: decimal.NewFromInt(6)},
			"frequently":   {Min: decimal.NewFromInt(9), Max: decimal.NewFromInt(15), Typical: decimal.NewFromInt(12)},
		},
		HealthMultipliers: map[string]decimal.Decimal{
			HealthExcellent:          decimal.NewFromFloat(0.6),
			HealthGood:               decimal.NewFromFloat(0.85),
			HealthFair:               decimal.NewFromFloat(1.2),
			HealthManagingConditions: decimal.NewFromFloat(1.5),
		},
		ERCounts: map[string]ERRange{
			"none": {Probability: decimal.NewFromFloat(0.1), Typical: decimal.Zero, Worst: decimal.NewFromInt(1)},
			"1":    {Probability: decimal.NewFromFloat(0.6), Typical: decimal.NewFromInt(1), Worst: decimal.NewFromInt(2)},
			"2+":   {Probability: decimal.NewFromFloat(0.9), Typical: decimal.NewFromInt(2), Worst: decimal.NewFromInt(3)},
		},
		Services: ServiceCosts{
			PCPVisit:        decimal.NewFromInt(150),
			SpecialistVisit: decimal.NewFromInt(300),
			ERVisit:         decimal.NewFromInt(2500),
			UrgentCare:      decimal.NewFromInt(250),
			Pregnancy:       CostRange{Min: decimal.NewFromInt(8000), Max: decimal.NewFromInt(15000)},
			SurgeryMinor:    CostRange{Min: decimal.NewFromInt(3000), Max: decimal.NewFromInt(8000)},
			SurgeryMajor:    CostRange{Min: decimal.NewFromInt(15000), Max: decimal.NewFromInt(50000)},
		},
		TaxBrackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(11600), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11600), decimal.NewFromInt(47150), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(47150), decimal.NewFromInt(100525), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(100525), decimal.NewFromInt(191950), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(191950), decimal.NewFromInt(243725), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(243725), decimal.NewFromInt(609350), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(609350), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
		},
		StateRate:   decimal.NewFromFloat(0.05),   // average state income tax estimate
		PayrollRate: decimal.NewFromFloat(0.0765), // FICA, pre-tax payroll contributions
		IncomeMidpoints: map[string]decimal.Decimal{
			"under_50k": decimal.NewFromInt(35000),
			"50k_75k":   decimal.NewFromInt(62500),
			"75k_100k":  decimal.NewFromInt(87500),
			"100k_150k": decimal.NewFromInt(125000),
			"150k_200k": decimal.NewFromInt(175000),
			"over_200k": decimal.NewFromInt(250000),
		},
		HSALimits: HSALimits{
			Individual: decimal.NewFromInt(4300),
			Family:     decimal.NewFromInt(8550),
			CatchUp:    decimal.NewFromInt(1000),
		},
		DefaultIncome:    decimal.NewFromInt(75000),
		DefaultRxMonthly: decimal.NewFromInt(10),
	}
}

// MergeDefaults fills any empty table or zero rate from DefaultRates,
// leaving supplied overrides in place. Partial override files only need to
// state the tables they change.
func (r Rates) MergeDefaults() Rates {
	def := DefaultRates()
	if len(r.VisitCounts) == 0 {
		r.VisitCounts = def.VisitCounts
	}
	if len(r.HealthMultipliers) == 0 {
		r.HealthMultipliers = def.HealthMultipliers
	}
	if len(r.ERCounts) == 0 {
		r.ERCounts = def.ERCounts
	}
	if r.Services.PCPVisit.IsZero() && r.Services.ERVisit.IsZero() {
		r.Services = def.Services
	}
	if len(r.TaxBrackets) == 0 {
		r.TaxBrackets = def.TaxBrackets
	}
	if r.StateRate.IsZero() {
		r.StateRate = def.StateRate
	}
	if r.PayrollRate.IsZero() {
		r.PayrollRate = def.PayrollRate
	}
	if len(r.IncomeMidpoints) == 0 {
		r.IncomeMidpoints = def.IncomeMidpoints
	}
	if r.HSALimits.Individual.IsZero() {
		r.HSALimits = def.HSALimits
	}
	if r.DefaultIncome.IsZero() {
		r.DefaultIncome = def.DefaultIncome
	}
	if r.DefaultRxMonthly.IsZero() {
		r.DefaultRxMonthly = def.DefaultRxMonthly
	}
	return r
}
