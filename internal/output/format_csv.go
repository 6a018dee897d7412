package output

import (
	"encoding/csv"
	"strings"

	"github.com/benplan/benplan/internal/domain"
)

// CSVFormatter formats a bundle response as CSV, one row per bundle.
type CSVFormatter struct{}

// Format generates CSV output for a bundle response.
func (cf *CSVFormatter) Format(resp *domain.BundleResponse) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Bundle",
		"Title",
		"Plan",
		"Plan Type",
		"Account",
		"Contribution",
		"Premium",
		"Deductible",
		"Copays",
		"Coinsurance",
		"Prescriptions",
		"Total",
		"HSA Savings",
		"HSA Employer",
		"FSA Employer",
		"Net Cost",
		"Best Fit",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, key := range resp.Bundles.Keys() {
		if err := writer.Write(cf.formatRow(key, resp.Bundles.Get(key), key == resp.BestFit)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one bundle as a CSV row.
func (cf *CSVFormatter) formatRow(key string, b *domain.BundleRecommendation, isBestFit bool) []string {
	bestFit := ""
	if isBestFit {
		bestFit = "yes"
	}
	cb := b.CostBreakdown
	return []string{
		key,
		b.Title,
		b.Plan.Name,
		b.Plan.Type,
		b.AccountType,
		b.Contribution.StringFixed(2),
		cb.Premium.StringFixed(2),
		cb.Deductible.StringFixed(2),
		cb.Copays.StringFixed(2),
		cb.Coinsurance.StringFixed(2),
		cb.Prescriptions.StringFixed(2),
		cb.Total.StringFixed(2),
		cb.HSASavings.StringFixed(2),
		cb.HSAEmployerContribution.StringFixed(2),
		cb.FSAEmployerContribution.StringFixed(2),
		cb.NetCost.StringFixed(2),
		bestFit,
	}
}
