package orchestrator

import (
	"fmt"
	"strings"
)

// AttemptError captures one strategy attempt failure. A nil Err means the
// strategy completed with a soft no-result.
type AttemptError struct {
	Strategy string
	Err      error
}

// AllStrategiesFailedError is returned when every strategy was exhausted.
type AllStrategiesFailedError struct {
	Attempts []AttemptError
}

func (e *AllStrategiesFailedError) Error() string {
	if len(e.Attempts) == 0 {
		return "all extraction methods failed"
	}
	return "all extraction methods failed: " + e.Summary()
}

// Summary renders the per-strategy outcomes for diagnostics.
func (e *AllStrategiesFailedError) Summary() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		if a.Err == nil {
			parts = append(parts, a.Strategy+": no result")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
	}
	return strings.Join(parts, "; ")
}
