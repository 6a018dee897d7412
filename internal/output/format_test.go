package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/benplan/benplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse() *domain.BundleResponse {
	hdhp := domain.Plan{
		ID:   "plan-hdhp",
		Name: "Bronze HDHP",
		Type: domain.PlanTypeHDHP,
	}
	ppo := domain.Plan{
		ID:       "plan-ppo",
		Name:     "Gold PPO",
		Type:     domain.PlanTypePPO,
		Warnings: []string{"Referral required for specialists"},
	}

	return &domain.BundleResponse{
		Bundles: domain.BundleSet{
			FutureBuilder: &domain.BundleRecommendation{
				ID:           "future_builder",
				Title:        "The Future Builder",
				Description:  "Maximize tax savings and build long-term wealth.",
				Plan:         hdhp,
				AccountType:  domain.AccountHSA,
				Contribution: decimal.NewFromInt(3000),
				CostBreakdown: domain.CostBreakdown{
					Premium:                 decimal.NewFromInt(1200),
					Deductible:              decimal.NewFromInt(500),
					Total:                   decimal.NewFromInt(1700),
					HSASavings:              decimal.NewFromFloat(1575.95),
					HSAEmployerContribution: decimal.NewFromInt(500),
					NetCost:                 decimal.NewFromFloat(-375.95),
				},
				Reasons: []string{"Lowest monthly premiums"},
			},
			PeaceOfMind: &domain.BundleRecommendation{
				ID:          "peace_mind",
				Title:       "The Peace of Mind",
				Description: "Maximum coverage without the complexity of accounts.",
				Plan:        ppo,
				AccountType: domain.AccountNone,
				CostBreakdown: domain.CostBreakdown{
					Premium: decimal.NewFromInt(2400),
					Copays:  decimal.NewFromFloat(127.5),
					Total:   decimal.NewFromFloat(2527.5),
					NetCost: decimal.NewFromFloat(2527.5),
				},
				Reasons: []string{"See any doctor"},
			},
		},
		BestFit: domain.BundlePeaceOfMind,
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"", "table", "json", "csv"} {
		f, err := NewFormatter(format)
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestJSONFormatter_WireFieldNames(t *testing.T) {
	jf := &JSONFormatter{}
	out, err := jf.Format(sampleResponse())
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Contains(t, decoded, "bundles")
	assert.Contains(t, decoded, "bestFitBundle")

	var bundles map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["bundles"], &bundles))
	assert.Contains(t, bundles, "futureBuilder")
	assert.Contains(t, bundles, "peaceOfMind")
	assert.NotContains(t, bundles, "safetyNet", "absent bundles are omitted")

	var fb struct {
		AccountType   string `json:"accountType"`
		CostBreakdown struct {
			HSASavings decimal.Decimal `json:"hsaSavings"`
			NetCost    decimal.Decimal `json:"netCost"`
		} `json:"costBreakdown"`
	}
	require.NoError(t, json.Unmarshal(bundles["futureBuilder"], &fb))
	assert.Equal(t, domain.AccountHSA, fb.AccountType)
	assert.True(t, fb.CostBreakdown.HSASavings.Equal(decimal.NewFromFloat(1575.95)))
	assert.True(t, fb.CostBreakdown.NetCost.IsNegative(), "benefits can outweigh the total")
}

func TestJSONFormatter_OmitsEmptyBestFit(t *testing.T) {
	jf := &JSONFormatter{}
	out, err := jf.Format(&domain.BundleResponse{})
	require.NoError(t, err)
	assert.NotContains(t, out, "bestFitBundle")
}

func TestTableFormatter(t *testing.T) {
	tf := &TableFormatter{}
	out, err := tf.Format(sampleResponse())
	require.NoError(t, err)

	assert.Contains(t, out, "LIFESTYLE BUNDLE RECOMMENDATIONS")
	assert.Contains(t, out, "BEST FIT: The Peace of Mind")
	assert.Contains(t, out, "The Peace of Mind *", "best fit row is starred")
	assert.Contains(t, out, "The Future Builder")
	assert.Contains(t, out, "Suggested contribution: $3000/year")
	assert.Contains(t, out, "• See any doctor")
	assert.Contains(t, out, "! Referral required for specialists")

	// Whole amounts drop cents, fractional amounts keep them.
	assert.Contains(t, out, "$1200")
	assert.Contains(t, out, "$127.50")
}

func TestTableFormatter_EmptyResponse(t *testing.T) {
	tf := &TableFormatter{}
	out, err := tf.Format(&domain.BundleResponse{})
	require.NoError(t, err)
	assert.Contains(t, out, "No bundles could be assembled")
}

func TestCSVFormatter(t *testing.T) {
	cf := &CSVFormatter{}
	out, err := cf.Format(sampleResponse())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per bundle")

	header := records[0]
	assert.Equal(t, "Bundle", header[0])
	assert.Equal(t, "Best Fit", header[len(header)-1])

	for _, row := range records[1:] {
		assert.Len(t, row, len(header))
	}

	// Display order puts futureBuilder first; peaceOfMind carries the flag.
	assert.Equal(t, domain.BundleFutureBuilder, records[1][0])
	assert.Equal(t, "", records[1][len(header)-1])
	assert.Equal(t, domain.BundlePeaceOfMind, records[2][0])
	assert.Equal(t, "yes", records[2][len(header)-1])
}
