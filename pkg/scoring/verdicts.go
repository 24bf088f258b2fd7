package scoring

// Verdicts and classifications derived from a route's weighted total. All
// thresholds are inclusive lower bounds.

// Verdict maps a weighted total to the go/no-go line.
func Verdict(total float64) string {
	switch {
	case total >= 7:
		return "Go"
	case total >= 5:
		return "Conditional-Go"
	default:
		return "No-Go"
	}
}

// DecisionCategory classifies overall suitability.
func DecisionCategory(total float64) string {
	switch {
	case total >= 7.5:
		return "Highly Suitable"
	case total >= 6:
		return "Suitable"
	case total >= 4.5:
		return "Moderate"
	default:
		return "Limited Suitability"
	}
}

// Priority maps the total to an investment priority.
func Priority(total float64) string {
	switch {
	case total >= 7.5:
		return "High"
	case total >= 5.5:
		return "Medium"
	default:
		return "Low"
	}
}

// Risk maps the total to a development risk level; higher totals mean lower
// risk.
func Risk(total float64) string {
	switch {
	case total >= 7:
		return "Low"
	case total >= 5:
		return "Medium"
	default:
		return "High"
	}
}

// SuccessProbability classifies the likelihood of development success.
func SuccessProbability(total float64) string {
	switch {
	case total >= 7.5:
		return "High"
	case total >= 6:
		return "Medium-High"
	case total >= 4.5:
		return "Medium"
	default:
		return "Low"
	}
}
