package queue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/scoring"
)

func boolPtr(b bool) *bool { return &b }

func testRegistry() *config.CategoryRegistry {
	return config.NewCategoryRegistry(map[string]*config.CategoryConfig{
		"market_analysis": {
			Key: "market_analysis", Name: "Market Analysis", Phase: 1, DisplayOrder: 1,
		},
		"patent_landscape": {
			Key: "patent_landscape", Name: "Patent Landscape", Phase: 1, DisplayOrder: 2,
		},
		"suitability_scoring": {
			Key: "suitability_scoring", Name: "Suitability Scoring", Phase: 2, DisplayOrder: 1,
		},
		"executive_summary": {
			Key: "executive_summary", Name: "Executive Summary", Phase: 2, DisplayOrder: 2,
			DependsOn: []string{"market_analysis"},
		},
		"formulation_strategy": {
			Key: "formulation_strategy", Name: "Formulation Strategy", Phase: 2, DisplayOrder: 3,
			DependsOn: []string{"toxicology"},
		},
		"toxicology": {
			Key: "toxicology", Name: "Toxicology", Phase: 1, DisplayOrder: 3,
			Active: boolPtr(false),
		},
	})
}

func TestPhase1Narratives_CompletedInDisplayOrder(t *testing.T) {
	registry := testRegistry()
	phase1 := map[string]*ent.CategoryResult{
		"patent_landscape": {
			Status:  categoryresult.StatusCompleted,
			Summary: "Patents expire in 2031.",
		},
		"market_analysis": {
			Status:  categoryresult.StatusCompleted,
			Summary: "Market is growing.",
		},
	}

	text := phase1Narratives(registry, phase1)
	assert.Contains(t, text, "## Market Analysis\n\nMarket is growing.")
	assert.Contains(t, text, "## Patent Landscape\n\nPatents expire in 2031.")
	assert.Less(t,
		strings.Index(text, "Market Analysis"),
		strings.Index(text, "Patent Landscape"),
		"sections must follow display order")
}

func TestPhase1Narratives_SkipsIncomplete(t *testing.T) {
	registry := testRegistry()
	phase1 := map[string]*ent.CategoryResult{
		"market_analysis": {
			Status:  categoryresult.StatusCompleted,
			Summary: "Market is growing.",
		},
		"patent_landscape": {Status: categoryresult.StatusFailed, Summary: "partial"},
	}

	text := phase1Narratives(registry, phase1)
	assert.Contains(t, text, "Market is growing.")
	assert.NotContains(t, text, "partial")
}

func TestScoringDigest_RendersBothRoutes(t *testing.T) {
	v := 150.0
	sc := 7
	td := scoring.RouteScore{
		Route: config.DeliveryTransdermal, Total: 7.2, Verdict: "Go",
		Priority: "High Priority", RiskLevel: "Low Risk",
		Parameters: []scoring.ParameterScore{
			{Parameter: config.ParameterDose, Value: &v, Unit: "mg", Score: &sc, RangeText: "100-200 mg"},
			{Parameter: config.ParameterLogP, Rationale: "no value"},
		},
	}
	tm := scoring.RouteScore{
		Route: config.DeliveryTransmucosal, Total: 4.5, Verdict: "No-Go",
		Priority: "Deprioritize", RiskLevel: "High Risk",
	}

	digest := scoringDigest(td, tm)
	assert.Contains(t, digest, "transdermal: 7.2/9, verdict Go")
	assert.Contains(t, digest, "transmucosal: 4.5/9, verdict No-Go")
	assert.Contains(t, digest, "dose: 150 mg scored 7/9 (100-200 mg)")
	assert.Contains(t, digest, "log_p: no value extracted")
}

func TestPhase1Exhausted(t *testing.T) {
	s := &Scheduler{registry: testRegistry()}

	// Inactive toxicology is never dispatched, so two failures cover Phase 1.
	assert.True(t, s.Phase1Exhausted(map[string]*ent.CategoryResult{
		"market_analysis":  {Status: categoryresult.StatusFailed},
		"patent_landscape": {Status: categoryresult.StatusFailed},
	}))

	assert.False(t, s.Phase1Exhausted(map[string]*ent.CategoryResult{
		"market_analysis":  {Status: categoryresult.StatusCompleted},
		"patent_landscape": {Status: categoryresult.StatusFailed},
	}), "one surviving category keeps the request going")

	assert.False(t, s.Phase1Exhausted(map[string]*ent.CategoryResult{
		"market_analysis": {Status: categoryresult.StatusFailed},
	}), "a category with no recorded outcome does not count as failed")
}

func TestMissingDependency(t *testing.T) {
	s := &Scheduler{registry: testRegistry()}

	enabled, _ := s.registry.Get("executive_summary")
	assert.Empty(t, s.missingDependency(enabled))

	disabled, _ := s.registry.Get("formulation_strategy")
	assert.Equal(t, "dependency toxicology is not enabled", s.missingDependency(disabled))
}

func TestPriorityRank_UrgentClaimsFirst(t *testing.T) {
	assert.Less(t, priorityRank[analysisrequest.PriorityUrgent], priorityRank[analysisrequest.PriorityHigh])
	assert.Less(t, priorityRank[analysisrequest.PriorityHigh], priorityRank[analysisrequest.PriorityNormal])
	assert.Less(t, priorityRank[analysisrequest.PriorityNormal], priorityRank[analysisrequest.PriorityLow])
}
