package engine

import (
	"context"
	"time"

	"techu/experiments/metrics"
	"techu/game"
	"techu/player"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State   *game.GameState
	Agents  [2]player.Agent
	History []Update

	delay    time.Duration
	maxTurns int
	metrics  metrics.Collector
}

type Update struct {
	Move *game.Move // nil for a flip
	Hash game.StateHash
}

func LocalEngine(agents [2]player.Agent, rules game.Rules, opts ...Option) *Engine {
	for _, agent := range agents {
		if agent == nil {
			panic("need two agents")
		}
	}

	eng := &Engine{Agents: agents}
	for _, opt := range append(defaultOptions(rules), opts...) {
		opt(eng)
	}
	return eng
}

// Run executes the game loop until the game is over, the turn limit is reached or ctx is done.
// The flip step is applied as soon as both players have seeded.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	e.metrics.Start()
	log.Info().Msgf("game started with %s capture, %s to seed first", e.State.Rules.Name(), e.State.CurrentPlayer)

	turns := 0
	for !e.State.IsGameOver() && turns < e.maxTurns {
		if e.State.FlipReady() {
			e.State = e.State.ApplyFlip()
			e.metrics.AddFlip(e.State)
			e.History = append(e.History, Update{Hash: e.State.Hash()})

			if e.State.Status.TieBreaker {
				log.Debug().Msgf("flip tied, tie-break round %d", e.State.Status.TieBreakRounds)
			} else {
				log.Debug().Msgf("flip resolved, %s moves first", e.State.CurrentPlayer)
			}
			continue
		}

		if err := e.wait(ctx); err != nil {
			return e.result(turns), err
		}

		current := e.State.CurrentPlayer
		move := e.findMove(current)
		e.metrics.AddMove(e.State, move)
		e.State = e.State.ApplyMove(move)
		e.History = append(e.History, Update{Move: &move, Hash: e.State.Hash()})
		turns++

		log.Debug().Msgf("turn %d: %s", turns, move)
	}

	res := e.result(turns)
	if res.Completed {
		log.Info().Msgf("game over after %d turns, winner: %s (%d-%d)", turns, metrics.WinnerName(res.Winner), res.Scores.Player1, res.Scores.Player2)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", turns)
	}
	return res, nil
}

// findMove asks the current player's agent for a move, falling back to the first legal one
// if the agent proposes a move that is not legal for that player.
func (e *Engine) findMove(current game.PlayerID) game.Move {
	move := e.Agents[current-1].FindMove(e.State, current)
	if move.PlayerID == current && e.State.IsLegal(move) {
		return move
	}

	log.Warn().Msgf("agent of %s proposed an illegal move %s", current, move)
	fallback := e.State.LegalMoves(current)
	if len(fallback) == 0 {
		return game.Pass(current)
	}
	return fallback[0]
}

func (e *Engine) result(turns int) Result {
	gameMetric, moveMetrics := e.metrics.Complete(e.State)
	winner, completed := e.State.Winner()
	return Result{
		Winner:    winner,
		Scores:    e.State.Scores(),
		Turns:     turns,
		Completed: completed,
		Game:      gameMetric,
		Moves:     moveMetrics,
	}
}
