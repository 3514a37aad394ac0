package orchestrator

import (
	"context"

	"github.com/vidfetch/ytex/internal/innertube"
)

// Strategy is one way of obtaining a player response. A (nil, nil) return
// is a soft no-result: the strategy ran to completion and found nothing.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, videoID string) (*innertube.PlayerResponse, error)
}

// AttemptFunc observes the outcome of one strategy attempt. err is nil
// for a soft no-result.
type AttemptFunc func(strategy string, err error)

// Engine tries strategies strictly in order, each exactly once. Soft
// no-results and hard errors both advance to the next strategy; the two
// are never run concurrently.
type Engine struct {
	strategies []Strategy

	// OnAttempt, when set, is called after each failed attempt.
	OnAttempt AttemptFunc
}

func NewEngine(strategies ...Strategy) *Engine {
	return &Engine{strategies: strategies}
}

// Extract returns the first strategy's successful response, or an
// AllStrategiesFailedError carrying every attempt.
func (e *Engine) Extract(ctx context.Context, videoID string) (*innertube.PlayerResponse, error) {
	var attempts []AttemptError
	for _, s := range e.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := s.Extract(ctx, videoID)
		if err == nil && resp != nil {
			return resp, nil
		}
		if e.OnAttempt != nil {
			e.OnAttempt(s.Name(), err)
		}
		attempts = append(attempts, AttemptError{Strategy: s.Name(), Err: err})
	}
	return nil, &AllStrategiesFailedError{Attempts: attempts}
}
