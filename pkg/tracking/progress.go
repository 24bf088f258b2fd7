package tracking

import "github.com/owais-symtera/cognito-sub001/ent/processtracking"

// Progress computes the percentage for a status plus category completion
// ratio. Terminal failure states return -1 meaning "leave as is"; progress
// never advances after failure or cancellation.
func Progress(status processtracking.Status, total, completed int) int {
	var ratio float64
	if total > 0 {
		ratio = float64(completed) / float64(total)
		if ratio > 1 {
			ratio = 1
		}
	}

	switch status {
	case processtracking.StatusSubmitted:
		return 0
	case processtracking.StatusCollecting:
		return 20 + int(60*ratio)
	case processtracking.StatusVerifying:
		return 80 + int(10*ratio)
	case processtracking.StatusMerging:
		return 90 + int(5*ratio)
	case processtracking.StatusSummarizing:
		return 95 + int(4*ratio)
	case processtracking.StatusCompleted:
		return 100
	}
	return -1
}
