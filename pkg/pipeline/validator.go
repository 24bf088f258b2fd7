// Package pipeline implements the four-stage category pipeline: collect,
// verify, merge, summarize.
package pipeline

import (
	"regexp"
	"strings"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// ValidationResult is the outcome of the verify stage for one category.
type ValidationResult struct {
	Passed            bool     `json:"passed"`
	Score             float64  `json:"score"`
	FailedRules       []string `json:"failed_rules,omitempty"`
	ConfidencePenalty float64  `json:"confidence_penalty"`
}

var (
	numericRe = regexp.MustCompile(`\d+(\.\d+)?`)
	headingRe = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	tableRe   = regexp.MustCompile(`(?m)^\s*\|.*\|\s*$`)
)

// Validate runs the category's structural checks against combined text.
// The penalty accumulates per failed rule and is clamped to [0,1]; downstream
// confidence subtracts it but never drops below zero.
func Validate(text string, vc config.VerificationCriteria) ValidationResult {
	var failed []string
	total := 0

	check := func(name string, ok bool) {
		total++
		if !ok {
			failed = append(failed, name)
		}
	}

	if vc.MinLength > 0 {
		check("min_length", len(strings.TrimSpace(text)) >= vc.MinLength)
	}
	if vc.MinSections > 0 {
		check("min_sections", countSections(text) >= vc.MinSections)
	}
	if vc.RequireNumeric {
		check("numeric_value", numericRe.MatchString(text))
	}
	if vc.RequireTable {
		check("table", hasTable(text))
	}
	lower := strings.ToLower(text)
	for _, term := range vc.RequiredTerms {
		check("term:"+term, strings.Contains(lower, strings.ToLower(term)))
	}

	if total == 0 {
		return ValidationResult{Passed: true, Score: 1}
	}

	penalty := float64(len(failed)) * vc.ConfidencePenalty
	if penalty > 1 {
		penalty = 1
	}
	return ValidationResult{
		Passed:            len(failed) == 0,
		Score:             float64(total-len(failed)) / float64(total),
		FailedRules:       failed,
		ConfidencePenalty: penalty,
	}
}

// PassRate scores one provider response independently; the merger uses it to
// down-weight sources whose text mostly fails validation.
func PassRate(text string, vc config.VerificationCriteria) float64 {
	return Validate(text, vc).Score
}

// countSections counts markdown headings; when no headings exist, paragraphs
// separated by blank lines count instead.
func countSections(text string) int {
	if n := len(headingRe.FindAllString(text, -1)); n > 0 {
		return n
	}
	n := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}

// hasTable requires at least two pipe-delimited rows (header + separator).
func hasTable(text string) bool {
	return len(tableRe.FindAllString(text, -1)) >= 2
}
