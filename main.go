package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"techu/config"
	"techu/engine"
	"techu/experiments"
	"techu/experiments/metrics"
	"techu/game"
	"techu/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:          "techu",
		Short:        "Techu card-placement game engine",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	root.AddCommand(simulateCmd(), playCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and sets up the global logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", cfg.Logging.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return cfg, nil
}

func simulateCmd() *cobra.Command {
	var (
		games   int
		seed    uint64
		capture string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a batch of random games and write CSV records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("games") {
				cfg.Simulation.Games = games
			}
			if cmd.Flags().Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if cmd.Flags().Changed("capture") {
				cfg.Rules.Capture = capture
			}
			if cmd.Flags().Changed("output") {
				cfg.Simulation.OutputDir = output
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			summary, err := experiments.RunSimulation(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "games: %d completed: %d player1: %d player2: %d draws: %d\n",
				summary.Games, summary.Completed, summary.Wins[0], summary.Wins[1], summary.Draws)
			if summary.OutputDir != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "records: %s\n", summary.OutputDir)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&games, "games", "n", 0, "number of games")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "agent seed, 0 for a time based one")
	cmd.Flags().StringVar(&capture, "capture", "", "capture rule: any-color or strict-color")
	cmd.Flags().StringVarP(&output, "output", "o", "", "directory for CSV records, empty to skip")
	return cmd
}

func playCmd() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one logged game between two random agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delay") {
				cfg.Pacing.OpponentDelay = delay
			}

			seed := cfg.Simulation.Seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			agents := [2]player.Agent{player.NewRandomAgent(seed), player.NewRandomAgent(seed + 1)}
			e := engine.LocalEngine(agents, cfg.GameRules(),
				engine.WithDelay(cfg.Pacing.OpponentDelay),
				engine.WithMaxTurns(cfg.Simulation.MaxTurns),
				engine.WithMetrics(),
			)

			res, err := e.Run(cmd.Context())
			if err != nil {
				return err
			}
			printBoard(cmd, e.State.Board)
			if !res.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "no result after %d turns\n", res.Turns)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "winner: %s (%d-%d) in %d turns, %d captures\n",
				metrics.WinnerName(res.Winner), res.Scores.Player1, res.Scores.Player2, res.Turns, res.Game.Captures)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause before every agent move")
	return cmd
}

func printBoard(cmd *cobra.Command, board game.Board) {
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			top, ok := board.TopCard(game.Index(row, col))
			if !ok {
				fmt.Fprint(cmd.OutOrStdout(), " .. ")
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), " %-3s", top)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
}
