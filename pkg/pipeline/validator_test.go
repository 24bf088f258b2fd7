package pipeline

import (
	"strings"
	"testing"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestValidate_AllRulesPass(t *testing.T) {
	text := `# Market Overview

The global market reached $4.2 billion in 2025.

# Competitors

| Product | Share |
|---------|-------|
| A       | 40%   |
`
	vc := config.VerificationCriteria{
		MinSections:       2,
		MinLength:         50,
		RequireNumeric:    true,
		RequireTable:      true,
		RequiredTerms:     []string{"market"},
		ConfidencePenalty: 0.1,
	}

	r := Validate(text, vc)
	assert.True(t, r.Passed)
	assert.Equal(t, 1.0, r.Score)
	assert.Empty(t, r.FailedRules)
	assert.Equal(t, 0.0, r.ConfidencePenalty)
}

func TestValidate_PartialFailure(t *testing.T) {
	text := "Short note about pharmacokinetics with value 12.5 mg."
	vc := config.VerificationCriteria{
		MinSections:       3,
		MinLength:         10,
		RequireNumeric:    true,
		RequireTable:      true,
		ConfidencePenalty: 0.15,
	}

	r := Validate(text, vc)
	assert.False(t, r.Passed)
	assert.ElementsMatch(t, []string{"min_sections", "table"}, r.FailedRules)
	assert.InDelta(t, 0.5, r.Score, 1e-9)
	assert.InDelta(t, 0.3, r.ConfidencePenalty, 1e-9)
}

func TestValidate_PenaltyClamped(t *testing.T) {
	vc := config.VerificationCriteria{
		MinSections:       5,
		MinLength:         1000,
		RequireNumeric:    true,
		RequireTable:      true,
		RequiredTerms:     []string{"a", "b", "c"},
		ConfidencePenalty: 0.5,
	}
	r := Validate("", vc)
	assert.False(t, r.Passed)
	assert.Equal(t, 1.0, r.ConfidencePenalty, "penalty never exceeds 1")
}

func TestValidate_NoRulesConfigured(t *testing.T) {
	r := Validate("anything", config.VerificationCriteria{})
	assert.True(t, r.Passed)
	assert.Equal(t, 1.0, r.Score)
}

func TestValidate_RequiredTermsCaseInsensitive(t *testing.T) {
	vc := config.VerificationCriteria{RequiredTerms: []string{"BIOAVAILABILITY"}, ConfidencePenalty: 0.2}
	r := Validate("the bioavailability was high", vc)
	assert.True(t, r.Passed)
}

func TestCountSections(t *testing.T) {
	assert.Equal(t, 2, countSections("# One\ntext\n## Two\ntext"))
	// no headings: blank-line separated paragraphs
	assert.Equal(t, 3, countSections("para one\n\npara two\n\npara three"))
	assert.Equal(t, 0, countSections(""))
}

func TestHasTable(t *testing.T) {
	assert.True(t, hasTable("| a | b |\n|---|---|\n| 1 | 2 |"))
	assert.False(t, hasTable("| single row only |"))
	assert.False(t, hasTable("plain text"))
}

func TestPassRate(t *testing.T) {
	vc := config.VerificationCriteria{
		MinLength:      10,
		RequireNumeric: true,
	}
	assert.Equal(t, 1.0, PassRate("long enough with 42 in it", vc))
	assert.Equal(t, 0.5, PassRate(strings.Repeat("x", 20), vc))
}
