package engine

import (
	"context"
	"testing"
	"time"

	"techu/game"
	"techu/player"

	"github.com/stretchr/testify/require"
)

func TestRunCompletesGame(t *testing.T) {
	for _, rules := range []game.Rules{game.NewStandardRules(), game.NewStrictColorRules()} {
		t.Run(rules.Name(), func(t *testing.T) {
			agents := [2]player.Agent{player.NewRandomAgent(1), player.NewRandomAgent(2)}
			e := LocalEngine(agents, rules, WithMaxTurns(1000), WithMetrics())

			res, err := e.Run(context.Background())
			require.NoError(t, err)

			if !res.Completed {
				// A tie-break without a playable home-row card cannot progress
				require.True(t, e.State.Status.TieBreaker)
				require.Equal(t, 1000, res.Turns)
				return
			}
			require.True(t, e.State.IsGameOver())
			require.Equal(t, game.DetermineWinner(res.Scores), res.Winner)
			require.Equal(t, res.Turns, res.Game.TotalMoves)
			require.Len(t, res.Moves, res.Turns)
			require.NotZero(t, res.Game.StartingPlayer)
			require.GreaterOrEqual(t, res.Turns, 2*game.DeckSize, "every card is played or discarded")
		})
	}
}

func TestRunTurnLimit(t *testing.T) {
	agents := [2]player.Agent{player.NewFirstMoveAgent(), player.NewFirstMoveAgent()}
	e := LocalEngine(agents, nil, WithMaxTurns(5))

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.False(t, res.Completed)
	require.Equal(t, 5, res.Turns)
	require.Equal(t, game.NoPlayer, res.Winner)
	require.Empty(t, res.Moves, "metrics are off by default")
}

func TestRunAppliesFlip(t *testing.T) {
	agents := [2]player.Agent{player.NewFirstMoveAgent(), player.NewFirstMoveAgent()}
	e := LocalEngine(agents, nil, WithMaxTurns(2))

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	// Both seeds are in, the flip is applied on the next iteration only
	require.True(t, e.State.FlipReady())
	require.Len(t, e.History, 2)
	require.Equal(t, game.SeedCell(game.Player1), e.History[0].Move.CellIndex)
	require.NotEqual(t, e.History[0].Hash, e.History[1].Hash)

	// Resuming flips first
	_, err = e.Run(context.Background())
	require.NoError(t, err)
	require.Greater(t, len(e.History), 2)
	require.Nil(t, e.History[2].Move, "flip update")
}

func TestRunFallsBackOnIllegalMove(t *testing.T) {
	agents := [2]player.Agent{cheatingAgent{}, player.NewFirstMoveAgent()}
	e := LocalEngine(agents, nil, WithMaxTurns(1))

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, game.SeedCell(game.Player1), e.History[0].Move.CellIndex)
	require.Equal(t, game.Player1, e.History[0].Move.PlayerID)
}

func TestRunCancelled(t *testing.T) {
	agents := [2]player.Agent{player.NewRandomAgent(1), player.NewRandomAgent(2)}
	e := LocalEngine(agents, nil, WithDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res, err := e.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, res.Turns)
	require.False(t, res.Completed)
}

func TestWithState(t *testing.T) {
	agents := [2]player.Agent{player.NewFirstMoveAgent(), player.NewFirstMoveAgent()}
	state := game.InitializeGame(nil)
	state.Status.GameOver = true

	e := LocalEngine(agents, nil, WithState(state))
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, res.Turns)
	require.True(t, res.Completed)
}

// cheatingAgent plays for the wrong player on a cell that is never legal
type cheatingAgent struct{}

func (cheatingAgent) FindMove(state *game.GameState, _ game.PlayerID) game.Move {
	return game.Move{PlayerID: game.Player2, CardIndex: 0, CellIndex: 12}
}
