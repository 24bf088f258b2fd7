package report

import "fmt"

// CoverageEntry is one category's data-coverage line in the scorecard.
type CoverageEntry struct {
	Category   string `json:"category"`
	Completion int    `json:"completion"`
	Detail     string `json:"detail"`
}

// CategoryCompletion scores one category's data coverage: 40 points for a
// substantive summary (20 for any non-empty one), plus 60 points for rich
// structured data (30 for any at all).
func CategoryCompletion(summaryLen, structuredKeys int) int {
	pts := 0
	switch {
	case summaryLen > 100:
		pts += 40
	case summaryLen > 0:
		pts += 20
	}
	switch {
	case structuredKeys >= 3:
		pts += 60
	case structuredKeys >= 1:
		pts += 30
	}
	return pts
}

// CoverageClass labels the average completion across categories.
func CoverageClass(avg float64) string {
	switch {
	case avg >= 85:
		return "comprehensive"
	case avg >= 70:
		return "good"
	case avg >= 50:
		return "partial"
	default:
		return "limited"
	}
}

// coverageScorecard builds the data_coverage_scorecard section.
func coverageScorecard(sections []CategorySection) map[string]any {
	data := make([]any, 0, len(sections))
	var total int
	for _, s := range sections {
		completion := CategoryCompletion(len(s.Summary), len(s.StructuredData))
		total += completion
		data = append(data, CoverageEntry{
			Category:   s.Key,
			Completion: completion,
			Detail:     fmt.Sprintf("summary %d chars, %d structured fields", len(s.Summary), len(s.StructuredData)),
		})
	}

	avg := 0.0
	if len(sections) > 0 {
		avg = float64(total) / float64(len(sections))
	}
	return map[string]any{
		"summary": fmt.Sprintf("Data coverage is %s (average completion %.0f%%)", CoverageClass(avg), avg),
		"data":    data,
	}
}
