package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
)

// ParameterScore is one parameter's classified score for one route.
type ParameterScore struct {
	Parameter     config.Parameter `json:"parameter"`
	Value         *float64         `json:"value"`
	Unit          string           `json:"unit"`
	Score         *int             `json:"score"`
	WeightedScore float64          `json:"weighted_score"`
	Rationale     string           `json:"rationale"`
	RangeText     string           `json:"range_text"`
	IsExclusion   bool             `json:"is_exclusion"`
	Method        string           `json:"extraction_method"`
}

// RouteScore is the full scoring outcome for one delivery route.
type RouteScore struct {
	Route              config.DeliveryMethod `json:"route"`
	Parameters         []ParameterScore      `json:"parameters"`
	Total              float64               `json:"total"`
	Verdict            string                `json:"verdict"`
	DecisionCategory   string                `json:"decision_category"`
	Priority           string                `json:"priority"`
	RiskLevel          string                `json:"risk_level"`
	SuccessProbability string                `json:"success_probability"`
}

// Scorer runs extraction once, then the same deterministic math per delivery
// route against that route's rubric rows.
type Scorer struct {
	extractor *Extractor
	llm       Completer
	scoring   *config.ScoringConfig
	logger    *slog.Logger
}

// NewScorer creates a parameter scorer. llm may be nil; rationales then use
// the deterministic fallback sentence.
func NewScorer(extractor *Extractor, llm Completer, scoring *config.ScoringConfig) *Scorer {
	return &Scorer{
		extractor: extractor,
		llm:       llm,
		scoring:   scoring,
		logger:    slog.With("component", "scorer"),
	}
}

// Score extracts the four parameters and scores both delivery routes.
func (s *Scorer) Score(ctx context.Context, drugName, phase1Text string) (td, tm RouteScore) {
	extractions := s.extractor.ExtractAll(ctx, drugName, phase1Text)
	td = s.scoreRoute(ctx, drugName, config.DeliveryTransdermal, extractions)
	tm = s.scoreRoute(ctx, drugName, config.DeliveryTransmucosal, extractions)
	return td, tm
}

// ScoreRoute scores one route from already-extracted values. Exposed for
// re-scoring with a changed rubric; extraction is not repeated.
func (s *Scorer) ScoreRoute(ctx context.Context, drugName string, route config.DeliveryMethod, extractions map[config.Parameter]Extraction) RouteScore {
	return s.scoreRoute(ctx, drugName, route, extractions)
}

func (s *Scorer) scoreRoute(ctx context.Context, drugName string, route config.DeliveryMethod, extractions map[config.Parameter]Extraction) RouteScore {
	result := RouteScore{Route: route}
	total := 0.0

	for _, p := range config.Parameters {
		ext := extractions[p]
		ps := ParameterScore{
			Parameter: p,
			Value:     ext.Value,
			Unit:      ext.Unit,
			Method:    ext.Method,
		}

		if ext.Value != nil {
			match := Classify(s.scoring, p, route, *ext.Value)
			score := match.Score
			ps.Score = &score
			ps.RangeText = match.RangeText
			ps.IsExclusion = match.IsExclusion
			ps.WeightedScore = float64(score) * s.scoring.Weight(p)
			ps.Rationale = s.rationale(ctx, drugName, ps)
			total += ps.WeightedScore
		}
		result.Parameters = append(result.Parameters, ps)
	}

	if total > 9 {
		total = 9
	}
	result.Total = total
	result.Verdict = Verdict(total)
	result.DecisionCategory = DecisionCategory(total)
	result.Priority = Priority(total)
	result.RiskLevel = Risk(total)
	result.SuccessProbability = SuccessProbability(total)
	return result
}

// rationale asks the LLM for a one-sentence explanation; failures fall back
// to the deterministic sentence.
func (s *Scorer) rationale(ctx context.Context, drugName string, ps ParameterScore) string {
	fallback := fmt.Sprintf("Score %d assigned based on %s value of %v in range %s",
		*ps.Score, ps.Parameter, *ps.Value, ps.RangeText)

	if s.llm == nil {
		return fallback
	}

	system := "You explain pharmaceutical suitability scores. Respond with exactly one sentence."
	user := fmt.Sprintf("Drug %s: %s = %v %s scored %d/9 (range %s). Explain why in one sentence.",
		drugName, strings.ReplaceAll(string(ps.Parameter), "_", " "), *ps.Value, ps.Unit, *ps.Score, ps.RangeText)

	text, _, err := s.llm.Complete(ctx, system, user, 0.3)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	return strings.TrimSpace(provider.StripThinkBlocks(text))
}
