package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input is a fully-parsed recommendation request: the employee's profile,
// the candidate plan catalog, the prescription catalog, and an optional
// partial rates override.
type Input struct {
	Profile       domain.UserProfile    `yaml:"profile"`
	Plans         []domain.Plan         `yaml:"plans"`
	Prescriptions []domain.Prescription `yaml:"prescriptions"`
	Rates         *domain.Rates         `yaml:"rates"`
}

// EffectiveRates returns the input's rates override merged over the
// defaults, or the plain defaults when no override was supplied.
func (in *Input) EffectiveRates() domain.Rates {
	if in.Rates == nil {
		return domain.DefaultRates()
	}
	return in.Rates.MergeDefaults()
}

// InputParser handles parsing of recommendation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an input file. YAML and JSON both parse, JSON being a
// YAML subset.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// Validate checks the shapes the engine assumes: enum membership, numeric
// ranges, and reference integrity. The engine's own fallbacks cover missing
// optional answers; validation only rejects data that is actually malformed.
func (ip *InputParser) Validate(input *Input) error {
	if err := ip.validateProfile(&input.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	seenPlans := make(map[string]bool, len(input.Plans))
	for i, plan := range input.Plans {
		if err := ip.validatePlan(&plan); err != nil {
			return fmt.Errorf("plan %d (%s) validation failed: %w", i, plan.ID, err)
		}
		if seenPlans[plan.ID] {
			return fmt.Errorf("duplicate plan id %q", plan.ID)
		}
		seenPlans[plan.ID] = true
	}

	seenRx := make(map[string]bool, len(input.Prescriptions))
	for i, rx := range input.Prescriptions {
		if rx.ID == "" {
			return fmt.Errorf("prescription %d: id is required", i)
		}
		if seenRx[rx.ID] {
			return fmt.Errorf("duplicate prescription id %q", rx.ID)
		}
		seenRx[rx.ID] = true
	}

	return nil
}

// validateProfile validates the employee profile.
func (ip *InputParser) validateProfile(profile *domain.UserProfile) error {
	if profile.CoverageType == "" {
		return fmt.Errorf("coverage type is required")
	}
	if !slices.Contains(domain.CoverageTypes(), profile.CoverageType) {
		return fmt.Errorf("unknown coverage type %q", profile.CoverageType)
	}
	if profile.HealthStatus != "" && !slices.Contains(domain.HealthStatuses(), profile.HealthStatus) {
		return fmt.Errorf("unknown health status %q", profile.HealthStatus)
	}
	if profile.RiskTolerance != "" && !slices.Contains(domain.RiskTolerances(), profile.RiskTolerance) {
		return fmt.Errorf("unknown risk tolerance %q", profile.RiskTolerance)
	}
	if profile.MaxSurpriseBill.LessThan(decimal.Zero) {
		return fmt.Errorf("max surprise bill cannot be negative")
	}
	for i, sel := range profile.Prescriptions {
		if sel.ID == "" {
			return fmt.Errorf("prescription selection %d: id is required", i)
		}
		if sel.Quantity <= 0 {
			return fmt.Errorf("prescription selection %d (%s): quantity must be positive", i, sel.ID)
		}
	}
	return nil
}

// validatePlan validates a candidate plan record.
func (ip *InputParser) validatePlan(plan *domain.Plan) error {
	if plan.ID == "" {
		return fmt.Errorf("id is required")
	}
	if plan.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !slices.Contains(domain.PlanTypes(), plan.Type) {
		return fmt.Errorf("unknown plan type %q", plan.Type)
	}
	if len(plan.Premiums) == 0 {
		return fmt.Errorf("premiums are required")
	}
	for tier, premium := range plan.Premiums {
		if premium.LessThan(decimal.Zero) {
			return fmt.Errorf("premium for %q cannot be negative", tier)
		}
	}
	if plan.Deductibles.Individual.LessThan(decimal.Zero) || plan.Deductibles.Family.LessThan(decimal.Zero) {
		return fmt.Errorf("deductibles cannot be negative")
	}
	if plan.OOPMax.Individual.LessThan(decimal.Zero) || plan.OOPMax.Family.LessThan(decimal.Zero) {
		return fmt.Errorf("out-of-pocket maximums cannot be negative")
	}
	if plan.Coinsurance.LessThan(decimal.Zero) || plan.Coinsurance.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("coinsurance must be between 0 and 100")
	}
	return nil
}
