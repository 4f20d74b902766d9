package engine

import (
	"context"
	"time"

	"techu/experiments/metrics"
	"techu/game"
	"techu/meta"
)

// Runner plays a game until it is over or the turn limit is reached
type Runner interface {
	Run(ctx context.Context) (Result, error)
}

type Result struct {
	Winner    game.PlayerID // NoPlayer on a draw or when cut off
	Scores    game.Scores
	Turns     int  // Agent moves, flips excluded
	Completed bool // false if cut off by the turn limit
	Game      metrics.GameMetric
	Moves     []metrics.MoveMetric
}

type Option func(*Engine)

// WithDelay pauses before every agent move, like a human watching the opponent think.
func WithDelay(delay time.Duration) Option {
	return func(e *Engine) {
		e.delay = delay
	}
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		e.maxTurns = maxTurns
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithState starts the game from an existing state instead of a freshly dealt one.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		e.State = state
	}
}

func defaultOptions(rules game.Rules) []Option {
	return []Option{
		WithMaxTurns(meta.MAX_TURNS),
		func(e *Engine) {
			e.State = game.InitializeGame(rules)
			e.metrics = metrics.NewDummyCollector()
		},
	}
}

// wait blocks for the pacing delay or until ctx is done.
func (e *Engine) wait(ctx context.Context) error {
	if e.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(e.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
