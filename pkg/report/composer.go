// Package report assembles the final analysis document: Phase-1 category
// sections, the suitability matrix, the data-coverage scorecard, and the
// executive summary and recommendations.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/owais-symtera/cognito-sub001/pkg/scoring"
)

// Version is the document format version stamped on every composed report.
const Version = 1

// CategorySection is one category's contribution to the document.
type CategorySection struct {
	Key            string
	Name           string
	Summary        string
	StructuredData map[string]any
	Status         string
}

// Input gathers everything the composer reads. The composer itself performs
// no I/O and no LLM calls: composition is deterministic given its inputs.
type Input struct {
	RequestID      string
	DrugName       string
	DeliveryMethod string
	Phase1         []CategorySection
	Phase2         map[string]CategorySection
	TD             scoring.RouteScore
	TM             scoring.RouteScore
	GeneratedAt    time.Time
}

// Document is the composed report plus the denormalized headline fields
// persisted alongside it.
type Document struct {
	Body               map[string]any
	TDScore            float64
	TMScore            float64
	TDVerdict          string
	TMVerdict          string
	GoDecision         string
	InvestmentPriority string
	RiskLevel          string
	Version            int
	GeneratedAt        time.Time
}

// Compose builds the canonical JSON document. Re-composing from identical
// inputs yields an identical document (GeneratedAt included in the input).
func Compose(in Input) *Document {
	best := in.TD
	if in.TM.Total > in.TD.Total {
		best = in.TM
	}

	structured := map[string]any{
		"executive_summary_and_decision": executiveSection(in, best),
	}
	for _, s := range in.Phase1 {
		structured[s.Key] = phase1Section(s)
	}
	structured["suitability_matrix"] = suitabilityMatrix(in)
	structured["data_coverage_scorecard"] = coverageScorecard(in.Phase1)
	structured["recommendations"] = recommendationsSection(in, best)

	body := map[string]any{
		"request_id":      in.RequestID,
		"webhookType":     "drug",
		"structured_data": structured,
	}

	return &Document{
		Body:               body,
		TDScore:            in.TD.Total,
		TMScore:            in.TM.Total,
		TDVerdict:          in.TD.Verdict,
		TMVerdict:          in.TM.Verdict,
		GoDecision:         best.Verdict,
		InvestmentPriority: best.Priority,
		RiskLevel:          best.RiskLevel,
		Version:            Version,
		GeneratedAt:        in.GeneratedAt,
	}
}

// phase1Section embeds the category's structured data with its summary.
func phase1Section(s CategorySection) map[string]any {
	section := make(map[string]any, len(s.StructuredData)+1)
	for k, v := range s.StructuredData {
		section[k] = v
	}
	section["summary"] = s.Summary
	return section
}

// executiveSection uses the Phase-2 executive summary when present; the
// deterministic fallback is built from the headline scoring numbers.
func executiveSection(in Input, best scoring.RouteScore) map[string]any {
	summary := ""
	var points []string
	if sec, ok := in.Phase2["executive_summary"]; ok && sec.Summary != "" {
		summary = sec.Summary
		points = keyPoints(sec.StructuredData)
	}
	if summary == "" {
		summary = fmt.Sprintf(
			"%s scored %.1f/9 transdermal and %.1f/9 transmucosal. Overall decision: %s with %s investment priority and %s risk.",
			in.DrugName, in.TD.Total, in.TM.Total, best.Verdict, strings.ToLower(best.Priority), strings.ToLower(best.RiskLevel))
	}
	if len(points) == 0 {
		points = []string{
			fmt.Sprintf("Transdermal: %s (%.1f/9)", in.TD.Verdict, in.TD.Total),
			fmt.Sprintf("Transmucosal: %s (%.1f/9)", in.TM.Verdict, in.TM.Total),
		}
	}

	return map[string]any{
		"summary":             summary,
		"data":                []any{},
		"key_summary_points":  points,
		"decision":            best.DecisionCategory,
		"investment_priority": best.Priority,
		"risk_level":          best.RiskLevel,
	}
}

// suitabilityMatrix renders both routes' parameter scoring into the fixed
// matrix shape consumed by downstream dashboards.
func suitabilityMatrix(in Input) map[string]any {
	var rows []any
	for _, route := range []scoring.RouteScore{in.TD, in.TM} {
		for _, p := range route.Parameters {
			row := map[string]any{
				"route":             string(route.Route),
				"parameter":         string(p.Parameter),
				"unit":              p.Unit,
				"range":             p.RangeText,
				"weighted_score":    p.WeightedScore,
				"extraction_method": p.Method,
				"rationale":         p.Rationale,
			}
			if p.Value != nil {
				row["value"] = *p.Value
			}
			if p.Score != nil {
				row["score"] = *p.Score
			}
			rows = append(rows, row)
		}
	}

	feasibility := []any{
		routeFeasibility(in.TD),
		routeFeasibility(in.TM),
	}

	return map[string]any{
		"summary": fmt.Sprintf("Weighted suitability: transdermal %.1f/9 (%s), transmucosal %.1f/9 (%s)",
			in.TD.Total, in.TD.Verdict, in.TM.Total, in.TM.Verdict),
		"corrected_parameter_based_scoring":     rows,
		"weighted_scoring_assessment":           weightedAssessment(in),
		"delivery_route_feasibility_assessment": feasibility,
		"final_weighted_scores": map[string]any{
			"transdermal_td":  scoreLine(in.TD),
			"transmucosal_tm": scoreLine(in.TM),
		},
		"strategic_decision_matrix": map[string]any{
			"transdermal":  routeDecision(in.TD),
			"transmucosal": routeDecision(in.TM),
		},
	}
}

// scoreLine renders "X.X/9 (YY%)" for a route total.
func scoreLine(r scoring.RouteScore) string {
	return fmt.Sprintf("%.1f/9 (%.0f%%)", r.Total, r.Total/9*100)
}

func weightedAssessment(in Input) string {
	return fmt.Sprintf(
		"Transdermal total %.2f of 9 attainable; transmucosal total %.2f. Dose contributes 40%%, molecular weight 30%%, melting point 20%%, log P 10%%.",
		in.TD.Total, in.TM.Total)
}

func routeFeasibility(r scoring.RouteScore) map[string]any {
	exclusions := []string{}
	for _, p := range r.Parameters {
		if p.IsExclusion {
			exclusions = append(exclusions, string(p.Parameter))
		}
	}
	return map[string]any{
		"route":               string(r.Route),
		"verdict":             r.Verdict,
		"decision_category":   r.DecisionCategory,
		"success_probability": r.SuccessProbability,
		"exclusion_flags":     exclusions,
	}
}

func routeDecision(r scoring.RouteScore) map[string]any {
	return map[string]any{
		"verdict":  r.Verdict,
		"priority": r.Priority,
		"risk":     r.RiskLevel,
		"score":    scoreLine(r),
	}
}

// recommendationsSection uses the Phase-2 recommendations category when
// present; the fallback derives actions from the verdicts.
func recommendationsSection(in Input, best scoring.RouteScore) map[string]any {
	if sec, ok := in.Phase2["recommendations"]; ok && sec.Summary != "" {
		return map[string]any{
			"summary": sec.Summary,
			"data":    keyPointsAny(sec.StructuredData),
		}
	}

	var actions []any
	switch best.Verdict {
	case "Go":
		actions = append(actions, "Proceed to formulation feasibility studies for the "+string(best.Route)+" route")
	case "Conditional-Go":
		actions = append(actions, "Address the lowest-scoring parameters before committing development budget")
	default:
		actions = append(actions, "Deprioritize; parameter profile does not support either delivery route")
	}
	return map[string]any{
		"summary": fmt.Sprintf("Recommendation derived from weighted scoring: %s.", best.Verdict),
		"data":    actions,
	}
}

// keyPoints pulls a string list out of loosely-typed structured data.
func keyPoints(data map[string]any) []string {
	raw, ok := data["key_points"]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func keyPointsAny(data map[string]any) []any {
	out := []any{}
	for _, s := range keyPoints(data) {
		out = append(out, s)
	}
	return out
}
