package experiments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"techu/config"
	"techu/engine"
	"techu/experiments/metrics"
	"techu/game"
	"techu/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Summary struct {
	Games      int
	Completed  int // Games that ended before the turn limit
	Wins       [2]int
	Draws      int
	TieBreaks  int
	Captures   int
	Discards   int
	OutputDir  string // empty if records were not written
	Records    []metrics.GameRecord
	Moves      []metrics.MoveRecord
}

type task struct {
	id   int
	seed uint64
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// RunSimulation plays random agents against each other and writes the game and move records
// to the configured output directory.
func RunSimulation(ctx context.Context, cfg *config.Config) (Summary, error) {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rules := cfg.GameRules()
	rng := rand.New(rand.NewSource(seed))

	log.Info().Msgf("starting simulation of %d games with %s capture, seed %d...", cfg.Simulation.Games, rules.Name(), seed)

	tasks := make(chan task)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Simulation.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				o, err := runGame(ctx, t, rules, cfg.Simulation.MaxTurns)
				if err != nil {
					log.Warn().Err(err).Msgf("game %d aborted", t.id)
					continue
				}
				outcomes <- o
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i := 1; i <= cfg.Simulation.Games; i++ {
			select {
			case tasks <- task{id: i, seed: rng.Uint64()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	summary := Summary{}
	for o := range outcomes {
		summary.add(o)
	}
	// Workers finish in any order
	slices.SortFunc(summary.Records, func(a, b metrics.GameRecord) int { return a.ID - b.ID })
	slices.SortStableFunc(summary.Moves, func(a, b metrics.MoveRecord) int { return a.Game - b.Game })

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("simulation interrupted after %d games: %w", summary.Games, err)
	}

	log.Info().Msgf("completed simulation: %d games, %d completed, Player1 %d, Player2 %d, draws %d",
		summary.Games, summary.Completed, summary.Wins[0], summary.Wins[1], summary.Draws)

	if cfg.Simulation.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg.Simulation.OutputDir, summary)
	if err != nil {
		return summary, err
	}
	summary.OutputDir = dir
	return summary, nil
}

func (s *Summary) add(o outcome) {
	s.Games++
	s.Records = append(s.Records, o.game)
	s.Moves = append(s.Moves, o.moves...)
	s.TieBreaks += o.game.TieBreaks
	s.Captures += o.game.Captures
	s.Discards += o.game.Discards

	if !o.game.Complete {
		return
	}
	s.Completed++
	switch o.game.Winner {
	case game.Player1.String():
		s.Wins[0]++
	case game.Player2.String():
		s.Wins[1]++
	default:
		s.Draws++
	}
}

// runGame executes a single game between two random agents
func runGame(ctx context.Context, t task, rules game.Rules, maxTurns int) (outcome, error) {
	agents := [2]player.Agent{
		player.NewRandomAgent(t.seed),
		player.NewRandomAgent(t.seed + 1),
	}
	e := engine.LocalEngine(agents, rules, engine.WithMaxTurns(maxTurns), engine.WithMetrics())

	res, err := e.Run(ctx)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{
		game: metrics.GameRecord{
			ID:         t.id,
			Seed:       t.seed,
			Capture:    rules.Name(),
			Complete:   res.Completed,
			GameMetric: res.Game,
		},
	}
	for _, mm := range res.Moves {
		o.moves = append(o.moves, metrics.MoveRecord{Game: t.id, MoveMetric: mm})
	}
	return o, nil
}

func store(root string, summary Summary) (string, error) {
	writer, err := metrics.NewWriter(root, "simulation")
	if err != nil {
		return "", fmt.Errorf("failed to create simulation writer: %w", err)
	}

	if err := writer.WriteGameRecords(summary.Records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
