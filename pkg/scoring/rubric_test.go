package scoring

import (
	"testing"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func testRubric() *config.ScoringConfig {
	return &config.ScoringConfig{
		Parameters: []config.ParameterSpec{
			{Name: config.ParameterDose, Weight: 0.40, Unit: "mg"},
			{Name: config.ParameterMolecularWeight, Weight: 0.30, Unit: "g/mol"},
			{Name: config.ParameterMeltingPoint, Weight: 0.20, Unit: "°C"},
			{Name: config.ParameterLogP, Weight: 0.10, Unit: ""},
		},
		Ranges: []config.RubricRange{
			{Parameter: config.ParameterDose, DeliveryMethod: config.DeliveryTransdermal, Min: f(0), Max: f(10), Score: 9, RangeText: "0-10 mg"},
			{Parameter: config.ParameterDose, DeliveryMethod: config.DeliveryTransdermal, Min: f(10), Max: f(25), Score: 6, RangeText: "10-25 mg"},
			{Parameter: config.ParameterDose, DeliveryMethod: config.DeliveryTransdermal, Min: f(25), Max: f(50), Score: 3, RangeText: "25-50 mg"},
			{Parameter: config.ParameterDose, DeliveryMethod: config.DeliveryTransdermal, Min: f(50), Score: 0, IsExclusion: true, RangeText: ">50 mg"},
		},
	}
}

func TestClassify_SimpleLookup(t *testing.T) {
	s := testRubric()
	m := Classify(s, config.ParameterDose, config.DeliveryTransdermal, 5)
	assert.Equal(t, 9, m.Score)
	assert.False(t, m.IsExclusion)
	assert.Equal(t, "0-10 mg", m.RangeText)
}

func TestClassify_BoundaryPrefersHigherScore(t *testing.T) {
	// 10 is in both [0,10] (score 9) and [10,25] (score 6)
	s := testRubric()
	m := Classify(s, config.ParameterDose, config.DeliveryTransdermal, 10)
	assert.Equal(t, 9, m.Score)
}

func TestClassify_BoundaryPrefersNonExclusion(t *testing.T) {
	// 50 is in [25,50] (score 3) and [50,∞) (exclusion)
	s := testRubric()
	m := Classify(s, config.ParameterDose, config.DeliveryTransdermal, 50)
	assert.Equal(t, 3, m.Score)
	assert.False(t, m.IsExclusion)
}

func TestClassify_NarrowerRangeWinsLastTie(t *testing.T) {
	s := &config.ScoringConfig{
		Ranges: []config.RubricRange{
			{Parameter: config.ParameterLogP, DeliveryMethod: config.DeliveryTransdermal, Min: f(0), Max: f(10), Score: 5, RangeText: "wide"},
			{Parameter: config.ParameterLogP, DeliveryMethod: config.DeliveryTransdermal, Min: f(1), Max: f(3), Score: 5, RangeText: "narrow"},
		},
	}
	m := Classify(s, config.ParameterLogP, config.DeliveryTransdermal, 2)
	assert.Equal(t, "narrow", m.RangeText)
}

func TestClassify_OutOfRange(t *testing.T) {
	s := testRubric()
	m := Classify(s, config.ParameterDose, config.DeliveryTransdermal, -5)
	assert.Equal(t, 0, m.Score)
	assert.True(t, m.IsExclusion)
	assert.Equal(t, "Out of Range", m.RangeText)
}

func TestClassify_NoRowsForRoute(t *testing.T) {
	s := testRubric()
	m := Classify(s, config.ParameterDose, config.DeliveryTransmucosal, 5)
	assert.Equal(t, "Out of Range", m.RangeText)
}

func TestVerdictThresholds(t *testing.T) {
	assert.Equal(t, "Go", Verdict(7.0))
	assert.Equal(t, "Go", Verdict(9))
	assert.Equal(t, "Conditional-Go", Verdict(6.99))
	assert.Equal(t, "Conditional-Go", Verdict(5.0))
	assert.Equal(t, "No-Go", Verdict(4.99))
	assert.Equal(t, "No-Go", Verdict(0))
}

func TestDecisionCategoryThresholds(t *testing.T) {
	assert.Equal(t, "Highly Suitable", DecisionCategory(7.5))
	assert.Equal(t, "Suitable", DecisionCategory(6.0))
	assert.Equal(t, "Moderate", DecisionCategory(4.5))
	assert.Equal(t, "Limited Suitability", DecisionCategory(4.49))
}

func TestPriorityRiskSuccess(t *testing.T) {
	assert.Equal(t, "High", Priority(7.5))
	assert.Equal(t, "Medium", Priority(5.5))
	assert.Equal(t, "Low", Priority(5.49))

	assert.Equal(t, "Low", Risk(7.0))
	assert.Equal(t, "Medium", Risk(5.0))
	assert.Equal(t, "High", Risk(4.99))

	assert.Equal(t, "High", SuccessProbability(7.5))
	assert.Equal(t, "Medium-High", SuccessProbability(6.0))
	assert.Equal(t, "Medium", SuccessProbability(4.5))
	assert.Equal(t, "Low", SuccessProbability(4.49))
}
