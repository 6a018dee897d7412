package output

import (
	"fmt"
	"strings"

	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a bundle response as a console table.
type TableFormatter struct{}

// Format generates the bundle summary table plus per-bundle detail sections.
func (tf *TableFormatter) Format(resp *domain.BundleResponse) (string, error) {
	var sb strings.Builder

	sb.WriteString("LIFESTYLE BUNDLE RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	keys := resp.Bundles.Keys()
	if len(keys) == 0 {
		sb.WriteString("No bundles could be assembled from the candidate plans.\n")
		return sb.String(), nil
	}

	nameWidth := 22
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %-*s %-8s %*s %*s %*s\n",
		nameWidth, "Bundle",
		nameWidth, "Plan",
		"Account",
		numWidth, "Premium",
		numWidth, "Total",
		numWidth, "Net Cost"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, key := range keys {
		b := resp.Bundles.Get(key)
		title := b.Title
		if key == resp.BestFit {
			title += " *"
		}
		sb.WriteString(fmt.Sprintf("%-*s %-*s %-8s %*s %*s %*s\n",
			nameWidth, truncate(title, nameWidth),
			nameWidth, truncate(b.Plan.Name, nameWidth),
			b.AccountType,
			numWidth, "$"+formatAmount(b.CostBreakdown.Premium),
			numWidth, "$"+formatAmount(b.CostBreakdown.Total),
			numWidth, "$"+formatAmount(b.CostBreakdown.NetCost)))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if best := resp.Bundles.Get(resp.BestFit); best != nil {
		sb.WriteString(fmt.Sprintf("\nBEST FIT: %s\n", best.Title))
		sb.WriteString(fmt.Sprintf("%s\n", best.Description))
	}

	for _, key := range keys {
		b := resp.Bundles.Get(key)
		sb.WriteString(fmt.Sprintf("\n%s (%s + %s)\n", b.Title, b.Plan.Name, accountLabel(b.AccountType)))
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		tf.writeBreakdown(&sb, &b.CostBreakdown)
		if b.Contribution.GreaterThan(decimal.Zero) {
			sb.WriteString(fmt.Sprintf("  Suggested contribution: $%s/year\n", formatAmount(b.Contribution)))
		}
		for _, reason := range b.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
		for _, warning := range b.Plan.Warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", warning))
		}
	}

	return sb.String(), nil
}

// writeBreakdown writes the annual cost lines for one bundle.
func (tf *TableFormatter) writeBreakdown(sb *strings.Builder, cb *domain.CostBreakdown) {
	line := func(label string, amount decimal.Decimal) {
		fmt.Fprintf(sb, "  %-26s $%s\n", label, formatAmount(amount))
	}
	line("Annual premium", cb.Premium)
	line("Deductible spend", cb.Deductible)
	line("Copays", cb.Copays)
	line("Prescriptions", cb.Prescriptions)
	line("Total before benefits", cb.Total)
	if cb.HSAEmployerContribution.GreaterThan(decimal.Zero) {
		line("Employer HSA contribution", cb.HSAEmployerContribution.Neg())
	}
	if cb.HSASavings.GreaterThan(decimal.Zero) {
		line("Projected HSA tax savings", cb.HSASavings.Neg())
	}
	if cb.FSAEmployerContribution.GreaterThan(decimal.Zero) {
		line("Employer FSA contribution", cb.FSAEmployerContribution.Neg())
	}
	line("Estimated net cost", cb.NetCost)
}

// accountLabel names the account pairing for display.
func accountLabel(accountType string) string {
	if accountType == domain.AccountNone {
		return "no account"
	}
	return accountType
}

// formatAmount renders a dollar amount with two decimal places, except for
// whole amounts which drop the cents.
func formatAmount(d decimal.Decimal) string {
	if d.Equal(d.Round(0)) {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}

// truncate truncates a string to maxLen.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
