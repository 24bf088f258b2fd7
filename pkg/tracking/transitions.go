package tracking

import (
	"errors"
	"fmt"

	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
)

// ErrInvalidTransition is returned when a status change is not in the
// transition table. The rejection itself is audited.
var ErrInvalidTransition = errors.New("invalid_transition")

// transitions lists the legal outgoing edges per non-terminal state.
// Terminal states (completed, failed, cancelled) are sinks.
var transitions = map[processtracking.Status][]processtracking.Status{
	processtracking.StatusSubmitted: {
		processtracking.StatusCollecting,
		processtracking.StatusFailed,
		processtracking.StatusCancelled,
	},
	processtracking.StatusCollecting: {
		processtracking.StatusVerifying,
		processtracking.StatusFailed,
		processtracking.StatusCancelled,
	},
	processtracking.StatusVerifying: {
		processtracking.StatusMerging,
		processtracking.StatusFailed,
		processtracking.StatusCancelled,
	},
	processtracking.StatusMerging: {
		processtracking.StatusSummarizing,
		processtracking.StatusFailed,
		processtracking.StatusCancelled,
	},
	processtracking.StatusSummarizing: {
		processtracking.StatusCompleted,
		processtracking.StatusFailed,
		processtracking.StatusCancelled,
	},
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to processtracking.Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status is a sink state.
func IsTerminal(s processtracking.Status) bool {
	switch s {
	case processtracking.StatusCompleted, processtracking.StatusFailed, processtracking.StatusCancelled:
		return true
	}
	return false
}

// validateTransition returns ErrInvalidTransition for illegal edges.
func validateTransition(from, to processtracking.Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
