// Package scoring implements the four-parameter suitability scorer: value
// extraction with LLM and live-search fallbacks, rubric classification, and
// weighted route totals with verdicts.
package scoring

import (
	"math"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// RangeMatch is the rubric classification of one parameter value.
type RangeMatch struct {
	Score       int
	IsExclusion bool
	RangeText   string
}

// outOfRange is the bucket for values no rubric row covers.
var outOfRange = RangeMatch{Score: 0, IsExclusion: true, RangeText: "Out of Range"}

// Classify looks up (parameter, route, value) in the rubric. When boundary
// overlap makes several rows match, the non-exclusion row wins, then the
// higher score, then the narrower range.
func Classify(s *config.ScoringConfig, p config.Parameter, m config.DeliveryMethod, value float64) RangeMatch {
	var matches []config.RubricRange
	for _, r := range s.RangesFor(p, m) {
		if r.Contains(value) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return outOfRange
	}

	best := matches[0]
	for _, r := range matches[1:] {
		if better(r, best) {
			best = r
		}
	}
	return RangeMatch{Score: best.Score, IsExclusion: best.IsExclusion, RangeText: best.RangeText}
}

func better(a, b config.RubricRange) bool {
	if a.IsExclusion != b.IsExclusion {
		return !a.IsExclusion
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return width(a) < width(b)
}

func width(r config.RubricRange) float64 {
	w, bounded := r.Width()
	if !bounded {
		return math.Inf(1)
	}
	return w
}
