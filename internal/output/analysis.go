package output

import (
	"fmt"
	"strings"

	"github.com/benplan/benplan/internal/domain"
)

// AnalysisTableFormatter renders per-plan typical and worst-case breakdowns
// side by side, for the compare command.
type AnalysisTableFormatter struct{}

// Format generates the plan comparison table.
func (af *AnalysisTableFormatter) Format(analyses []domain.PlanAnalysis) string {
	var sb strings.Builder

	sb.WriteString("PLAN COST COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(analyses) == 0 {
		sb.WriteString("No candidate plans.\n")
		return sb.String()
	}

	nameWidth := 24
	numWidth := 11

	sb.WriteString(fmt.Sprintf("%-*s %-6s %*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Plan",
		"Type",
		numWidth, "Premium",
		numWidth, "Typ Total",
		numWidth, "Typ Net",
		numWidth, "Worst Total",
		numWidth, "Worst Net",
		numWidth, "HSA Benefit"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, a := range analyses {
		hsaBenefit := a.Typical.HSASavings.Add(a.Typical.HSAEmployerContribution)
		sb.WriteString(fmt.Sprintf("%-*s %-6s %*s %*s %*s %*s %*s %*s\n",
			nameWidth, truncate(a.Plan.Name, nameWidth),
			a.Plan.Type,
			numWidth, "$"+formatAmount(a.Typical.Premium),
			numWidth, "$"+formatAmount(a.Typical.Total),
			numWidth, "$"+formatAmount(a.Typical.NetCost),
			numWidth, "$"+formatAmount(a.WorstCase.Total),
			numWidth, "$"+formatAmount(a.WorstCase.NetCost),
			numWidth, "$"+formatAmount(hsaBenefit)))
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	for _, a := range analyses {
		if len(a.Plan.Highlights) == 0 && len(a.Plan.Warnings) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", a.Plan.Name))
		for _, h := range a.Plan.Highlights {
			sb.WriteString(fmt.Sprintf("  • %s\n", h))
		}
		for _, w := range a.Plan.Warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	return sb.String()
}
