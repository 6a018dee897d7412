package domain

import (
	"github.com/shopspring/decimal"
)

// Coverage tiers an employee can elect.
const (
	CoverageEmployee         = "employee"
	CoverageEmployeeSpouse   = "employee_spouse"
	CoverageEmployeeChildren = "employee_children"
	CoverageFamily           = "family"
)

// Self-reported health status values.
const (
	HealthExcellent          = "excellent"
	HealthGood               = "good"
	HealthFair               = "fair"
	HealthManagingConditions = "managing_conditions"
)

// Risk tolerance answers from the enrollment questionnaire.
const (
	RiskAvoidSurprises  = "avoid_surprises"
	RiskBalanced        = "balanced"
	RiskMinimizePremium = "minimize_premium"
	RiskPredictable     = "predictable"
	RiskSaver           = "saver"
)

// Planned procedure tags recognized by the cost model. Unrecognized tags
// are ignored.
const (
	ProcedurePregnancy    = "pregnancy"
	ProcedureSurgeryMinor = "surgery_minor"
	ProcedureSurgeryMajor = "surgery_major"
)

// Dependent is a covered household member other than the employee. Only the
// count of dependents affects cost estimation; relationship and age are
// carried for display.
type Dependent struct {
	Relationship string `yaml:"relationship" json:"relationship"`
	Age          int    `yaml:"age" json:"age"`
}

// RxSelection references a prescription from the catalog along with how many
// distinct fills of it the household uses.
type RxSelection struct {
	ID       string `yaml:"id" json:"id"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

// UserProfile captures the employee's enrollment questionnaire answers. It is
// a fully-resolved value object: callers complete it before handing it to the
// engine, and the engine never mutates it.
type UserProfile struct {
	CoverageType      string        `yaml:"coverage_type" json:"coverageType"`
	Dependents        []Dependent   `yaml:"dependents" json:"dependents"`
	HealthStatus      string        `yaml:"health_status" json:"healthStatus"`
	PCPVisits         string        `yaml:"pcp_visits" json:"pcpVisits"`
	SpecialistVisits  string        `yaml:"specialist_visits" json:"specialistVisits"`
	ERUrgentCare      string        `yaml:"er_urgent_care" json:"erUrgentCare"`
	PlannedProcedures []string      `yaml:"planned_procedures" json:"plannedProcedures"`
	Prescriptions     []RxSelection `yaml:"prescriptions" json:"prescriptions"`
	RiskTolerance     string        `yaml:"risk_tolerance" json:"riskTolerance"`

	// MaxSurpriseBill is the largest unexpected bill the employee says they
	// could absorb. Zero means unanswered; the selector substitutes its
	// default.
	MaxSurpriseBill decimal.Decimal `yaml:"max_surprise_bill" json:"maxSurpriseBill"`

	// HouseholdIncome is an income bracket key (e.g. "75k_100k"), not a
	// dollar amount.
	HouseholdIncome string `yaml:"household_income" json:"householdIncome"`

	// LiquidityCheck is false when the employee reports being cash-strapped.
	// Nil means the question was not asked.
	LiquidityCheck *bool `yaml:"liquidity_check" json:"liquidityCheck,omitempty"`

	// ComplexityTolerance is false when the employee wants to avoid managing
	// extra accounts. Nil means the question was not asked.
	ComplexityTolerance *bool `yaml:"complexity_tolerance" json:"complexityTolerance,omitempty"`
}

// IsFamilyCoverage reports whether the family-level deductible and
// out-of-pocket tiers apply. Employee+children elections use the individual
// tiers, matching how the candidate plans are rated.
func (p *UserProfile) IsFamilyCoverage() bool {
	return p.CoverageType == CoverageFamily || p.CoverageType == CoverageEmployeeSpouse
}

// MemberCount is the number of covered lives: the employee plus dependents.
func (p *UserProfile) MemberCount() int {
	return len(p.Dependents) + 1
}

// IsLowLiquidity reports whether the employee answered the liquidity question
// with "no".
func (p *UserProfile) IsLowLiquidity() bool {
	return p.LiquidityCheck != nil && !*p.LiquidityCheck
}

// WantsSimplicity reports whether the employee answered the complexity
// question with "no".
func (p *UserProfile) WantsSimplicity() bool {
	return p.ComplexityTolerance != nil && !*p.ComplexityTolerance
}

// CoverageTypes lists the valid coverage tier keys.
func CoverageTypes() []string {
	return []string{CoverageEmployee, CoverageEmployeeSpouse, CoverageEmployeeChildren, CoverageFamily}
}

// HealthStatuses lists the valid health status keys.
func HealthStatuses() []string {
	return []string{HealthExcellent, HealthGood, HealthFair, HealthManagingConditions}
}

// RiskTolerances lists the valid risk tolerance keys.
func RiskTolerances() []string {
	return []string{RiskAvoidSurprises, RiskBalanced, RiskMinimizePremium, RiskPredictable, RiskSaver}
}
