package report

import (
	"strings"
	"testing"
	"time"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func sampleInput() Input {
	return Input{
		RequestID:      "req-1",
		DrugName:       "Apixaban",
		DeliveryMethod: "transdermal",
		Phase1: []CategorySection{
			{
				Key:     "market_analysis",
				Name:    "Market Analysis",
				Summary: strings.Repeat("market text ", 20),
				StructuredData: map[string]any{
					"market_size": "2.1B", "cagr": "8%", "competitors": []any{"a", "b"},
				},
				Status: "completed",
			},
			{
				Key:            "patent_landscape",
				Name:           "Patent Landscape",
				Summary:        "short",
				StructuredData: map[string]any{},
				Status:         "completed",
			},
		},
		TD: scoring.RouteScore{
			Route: config.DeliveryTransdermal,
			Parameters: []scoring.ParameterScore{
				{Parameter: config.ParameterDose, Value: f(5), Score: i(9), WeightedScore: 3.6, RangeText: "0-10 mg", Method: "phase1_summary"},
			},
			Total: 7.2, Verdict: "Go", DecisionCategory: "Suitable",
			Priority: "High", RiskLevel: "Low", SuccessProbability: "Medium-High",
		},
		TM: scoring.RouteScore{
			Route: config.DeliveryTransmucosal,
			Parameters: []scoring.ParameterScore{
				{Parameter: config.ParameterDose, Value: f(5), Score: i(6), WeightedScore: 2.4, RangeText: "0-10 mg", Method: "phase1_summary"},
			},
			Total: 4.5, Verdict: "No-Go", DecisionCategory: "Moderate",
			Priority: "Low", RiskLevel: "High", SuccessProbability: "Medium",
		},
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
}

func TestCompose_TopLevelShape(t *testing.T) {
	doc := Compose(sampleInput())

	assert.Equal(t, "req-1", doc.Body["request_id"])
	assert.Equal(t, "drug", doc.Body["webhookType"])

	structured, ok := doc.Body["structured_data"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"executive_summary_and_decision", "market_analysis", "patent_landscape",
		"suitability_matrix", "data_coverage_scorecard", "recommendations",
	} {
		assert.Contains(t, structured, key)
	}
}

func TestCompose_HeadlineFieldsFromBestRoute(t *testing.T) {
	doc := Compose(sampleInput())

	assert.Equal(t, 7.2, doc.TDScore)
	assert.Equal(t, 4.5, doc.TMScore)
	assert.Equal(t, "Go", doc.TDVerdict)
	assert.Equal(t, "No-Go", doc.TMVerdict)
	// TD has the higher total, so it drives the overall decision
	assert.Equal(t, "Go", doc.GoDecision)
	assert.Equal(t, "High", doc.InvestmentPriority)
	assert.Equal(t, "Low", doc.RiskLevel)
	assert.Equal(t, Version, doc.Version)
}

func TestCompose_TMWinsWhenHigher(t *testing.T) {
	in := sampleInput()
	in.TM.Total = 8.0
	in.TM.Verdict = "Go"
	in.TM.Priority = "High"
	in.TM.RiskLevel = "Low"

	doc := Compose(in)
	assert.Equal(t, "Go", doc.GoDecision)
	assert.Equal(t, "High", doc.InvestmentPriority)
}

func TestCompose_Phase1SectionCarriesStructuredDataAndSummary(t *testing.T) {
	doc := Compose(sampleInput())
	structured := doc.Body["structured_data"].(map[string]any)
	market := structured["market_analysis"].(map[string]any)

	assert.Equal(t, "2.1B", market["market_size"])
	assert.Contains(t, market["summary"], "market text")
}

func TestCompose_SuitabilityMatrixScoreLines(t *testing.T) {
	doc := Compose(sampleInput())
	structured := doc.Body["structured_data"].(map[string]any)
	matrix := structured["suitability_matrix"].(map[string]any)

	final := matrix["final_weighted_scores"].(map[string]any)
	assert.Equal(t, "7.2/9 (80%)", final["transdermal_td"])
	assert.Equal(t, "4.5/9 (50%)", final["transmucosal_tm"])

	rows := matrix["corrected_parameter_based_scoring"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.Equal(t, "transdermal", first["route"])
	assert.Equal(t, "dose", first["parameter"])
	assert.Equal(t, 5.0, first["value"])
	assert.Equal(t, 9, first["score"])
}

func TestCompose_ExecutiveFallbackWhenNoPhase2(t *testing.T) {
	doc := Compose(sampleInput())
	structured := doc.Body["structured_data"].(map[string]any)
	exec := structured["executive_summary_and_decision"].(map[string]any)

	assert.Contains(t, exec["summary"], "Apixaban")
	assert.Contains(t, exec["summary"], "7.2/9")
	assert.Equal(t, "Suitable", exec["decision"])
	assert.Equal(t, "High", exec["investment_priority"])
}

func TestCompose_ExecutiveUsesPhase2WhenPresent(t *testing.T) {
	in := sampleInput()
	in.Phase2 = map[string]CategorySection{
		"executive_summary": {
			Key:     "executive_summary",
			Summary: "Board-ready narrative.",
			StructuredData: map[string]any{
				"key_points": []any{"point one", "point two"},
			},
		},
	}

	doc := Compose(in)
	structured := doc.Body["structured_data"].(map[string]any)
	exec := structured["executive_summary_and_decision"].(map[string]any)

	assert.Equal(t, "Board-ready narrative.", exec["summary"])
	assert.Equal(t, []string{"point one", "point two"}, exec["key_summary_points"])
}

func TestCompose_RecommendationsFallbackByVerdict(t *testing.T) {
	in := sampleInput()
	doc := Compose(in)
	structured := doc.Body["structured_data"].(map[string]any)
	recs := structured["recommendations"].(map[string]any)
	data := recs["data"].([]any)
	require.Len(t, data, 1)
	assert.Contains(t, data[0], "formulation feasibility")

	in.TD.Verdict = "No-Go"
	in.TD.Total = 2
	in.TM.Verdict = "No-Go"
	in.TM.Total = 1
	doc = Compose(in)
	recs = doc.Body["structured_data"].(map[string]any)["recommendations"].(map[string]any)
	data = recs["data"].([]any)
	assert.Contains(t, data[0], "Deprioritize")
}

func TestCompose_Deterministic(t *testing.T) {
	a := Compose(sampleInput())
	b := Compose(sampleInput())
	assert.Equal(t, a, b)
}

func TestCategoryCompletion(t *testing.T) {
	// rich summary plus rich structured data is full credit
	assert.Equal(t, 100, CategoryCompletion(101, 3))
	assert.Equal(t, 100, CategoryCompletion(5000, 12))
	// nothing at all is zero
	assert.Equal(t, 0, CategoryCompletion(0, 0))

	assert.Equal(t, 40, CategoryCompletion(101, 0))
	assert.Equal(t, 20, CategoryCompletion(100, 0))
	assert.Equal(t, 20, CategoryCompletion(1, 0))
	assert.Equal(t, 60, CategoryCompletion(0, 3))
	assert.Equal(t, 30, CategoryCompletion(0, 1))
	assert.Equal(t, 70, CategoryCompletion(50, 5))
}

func TestCoverageClass(t *testing.T) {
	assert.Equal(t, "comprehensive", CoverageClass(85))
	assert.Equal(t, "good", CoverageClass(70))
	assert.Equal(t, "partial", CoverageClass(50))
	assert.Equal(t, "limited", CoverageClass(49.9))
}

func TestCoverageScorecard(t *testing.T) {
	in := sampleInput()
	card := coverageScorecard(in.Phase1)

	data := card["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(CoverageEntry)
	assert.Equal(t, "market_analysis", first.Category)
	assert.Equal(t, 100, first.Completion)
	second := data[1].(CoverageEntry)
	assert.Equal(t, 20, second.Completion)

	// avg 60 → partial
	assert.Contains(t, card["summary"], "partial")
}
