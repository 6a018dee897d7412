package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/benplan/benplan/internal/domain"
)

// View renders the bundle browser.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit.\n"
	}
	if m.resp == nil {
		return subtitleStyle.Render("Crunching the numbers...") + "\n"
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Lifestyle Bundles"))
	sb.WriteString("\n")

	if len(m.keys) == 0 {
		sb.WriteString(warningStyle.Render("No bundles could be assembled from the candidate plans."))
		sb.WriteString("\n")
		return sb.String()
	}

	// Bundle cards in a row, selected card highlighted.
	cards := make([]string, 0, len(m.keys))
	for i, k := range m.keys {
		b := m.resp.Bundles.Get(k)
		cards = append(cards, m.renderCard(b, k == m.resp.BestFit, i == m.selected))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n\n")

	if b := m.selectedBundle(); b != nil {
		sb.WriteString(m.renderDetail(b))
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keymap))
	sb.WriteString("\n")

	return sb.String()
}

// renderCard renders a compact bundle card.
func (m Model) renderCard(b *domain.BundleRecommendation, isBestFit, isSelected bool) string {
	var content strings.Builder

	content.WriteString(cardTitleStyle.Render(b.Title))
	content.WriteString("\n")
	if isBestFit {
		content.WriteString(bestFitBadgeStyle.Render("★ best fit"))
		content.WriteString("\n")
	}
	content.WriteString(subtitleStyle.Render(fmt.Sprintf("%s + %s", b.Plan.Type, b.AccountType)))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("net/yr "))
	content.WriteString(netCostStyle.Render("$" + money(b.CostBreakdown.NetCost)))

	style := cardStyle
	if isSelected {
		style = selectedCardStyle
	}
	return style.Width(24).Render(content.String())
}

// renderDetail renders the breakdown pane for the selected bundle.
func (m Model) renderDetail(b *domain.BundleRecommendation) string {
	var sb strings.Builder

	scenario := "typical year"
	cb := b.CostBreakdown
	if m.showWorstCase {
		if a := m.analysisFor(b.Plan.ID); a != nil {
			scenario = "worst case"
			cb = a.WorstCase
		}
	}

	sb.WriteString(cardTitleStyle.Render(fmt.Sprintf("%s — %s (%s)", b.Title, b.Plan.Name, scenario)))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render(b.Description))
	sb.WriteString("\n\n")

	row := func(label string, amount decimal.Decimal) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-26s", label)))
		sb.WriteString(valueStyle.Render("$" + money(amount)))
		sb.WriteString("\n")
	}

	row("Annual premium", cb.Premium)
	row("Deductible spend", cb.Deductible)
	row("Copays", cb.Copays)
	row("Prescriptions", cb.Prescriptions)
	row("Total before benefits", cb.Total)
	if cb.HSAEmployerContribution.GreaterThan(decimal.Zero) {
		row("Employer HSA", cb.HSAEmployerContribution.Neg())
	}
	if cb.HSASavings.GreaterThan(decimal.Zero) {
		row("HSA tax savings", cb.HSASavings.Neg())
	}
	if cb.FSAEmployerContribution.GreaterThan(decimal.Zero) {
		row("Employer FSA", cb.FSAEmployerContribution.Neg())
	}

	sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-26s", "Estimated net cost")))
	sb.WriteString(netCostStyle.Render("$" + money(cb.NetCost)))
	sb.WriteString("\n\n")

	for _, reason := range b.Reasons {
		sb.WriteString(valueStyle.Render("  • " + reason))
		sb.WriteString("\n")
	}
	for _, warning := range b.Plan.Warnings {
		sb.WriteString(warningStyle.Render("  ! " + warning))
		sb.WriteString("\n")
	}

	return sb.String()
}

// money renders an amount with cents only when present.
func money(d decimal.Decimal) string {
	if d.Equal(d.Round(0)) {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}
