package calculation

import (
	"github.com/benplan/benplan/internal/domain"
)

// Logger is the minimal logging surface the engine emits progress through.
// The engine itself performs no I/O; callers install an implementation
// (the CLI wires zerolog) or leave the default no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// RecommendationEngine is the single entry point callers use: a pure
// function of (profile, plans, prescriptions). It is safe for concurrent use
// since every call operates only on its arguments.
type RecommendationEngine struct {
	Composer *BundleComposer
	Logger   Logger
}

// NewRecommendationEngine creates an engine on the default rates table.
func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{
		Composer: NewBundleComposer(),
		Logger:   NopLogger{},
	}
}

// NewRecommendationEngineWithRates creates an engine on a supplied rates
// table.
func NewRecommendationEngineWithRates(rates domain.Rates) *RecommendationEngine {
	return &RecommendationEngine{
		Composer: NewBundleComposerWithRates(rates),
		Logger:   NopLogger{},
	}
}

// SetLogger installs a logger on the engine and its composer. A nil logger
// restores the no-op default.
func (re *RecommendationEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	re.Logger = logger
	re.Composer.Logger = logger
}

// Recommend generates the bundle response for a profile against the
// candidate plan list and prescription catalog.
func (re *RecommendationEngine) Recommend(profile *domain.UserProfile, plans []domain.Plan, prescriptions []domain.Prescription) (domain.BundleResponse, error) {
	return re.Composer.GenerateBundles(profile, plans, prescriptions)
}

// AnalyzePlans exposes the per-plan typical/worst breakdowns the composer
// builds internally, for comparison surfaces.
func (re *RecommendationEngine) AnalyzePlans(profile *domain.UserProfile, plans []domain.Plan, prescriptions []domain.Prescription) []domain.PlanAnalysis {
	return re.Composer.AnalyzePlans(profile, plans, prescriptions)
}
