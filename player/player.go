package player

import (
	"techu/game"

	"golang.org/x/exp/rand"
)

// Agent chooses the move of an automated player.
type Agent interface {
	FindMove(state *game.GameState, player game.PlayerID) game.Move
}

// randomAgent picks uniformly among the legal moves. It is not safe for concurrent use.
type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent whose choices are reproducible for a given seed.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState, player game.PlayerID) game.Move {
	moves := state.LegalMoves(player)
	if len(moves) == 0 { // Game over
		return game.Pass(player)
	}
	return moves[a.rng.Intn(len(moves))]
}

// firstMoveAgent always plays the first legal move, useful for deterministic games.
type firstMoveAgent struct{}

func NewFirstMoveAgent() Agent {
	return firstMoveAgent{}
}

func (firstMoveAgent) FindMove(state *game.GameState, player game.PlayerID) game.Move {
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.Pass(player)
	}
	return moves[0]
}
