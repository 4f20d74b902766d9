package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func red(r Rank) Card   { return Card{Suit: Hearts, Rank: r, Owner: Player1} }
func black(r Rank) Card { return Card{Suit: Spades, Rank: r, Owner: Player2} }

// newTestPlayer deals hand into the first slots; deck is drawn from its end.
func newTestPlayer(id PlayerID, hand []Card, deck []Card) Player {
	p := Player{ID: id, Deck: append([]Card(nil), deck...)}
	for i := range hand {
		c := hand[i]
		p.Hand[i] = &c
	}
	return p
}

// regularState returns a state past the seeding protocol.
func regularState(p1, p2 Player) *GameState {
	gs := NewGameState(NewStandardRules(), p1, p2)
	gs.Status.FirstMove = [2]bool{false, false}
	return gs
}

// withBoard places cards on cells, bottom first, without going through moves.
func withBoard(gs *GameState, cells map[int][]Card) *GameState {
	for i, cards := range cells {
		for _, c := range cards {
			gs.Board = gs.Board.PushCard(i, c)
		}
	}
	return gs
}

// requireConservation checks that each player's 26 cards are all accounted for.
func requireConservation(t *testing.T, gs *GameState) {
	t.Helper()
	for _, id := range []PlayerID{Player1, Player2} {
		p := gs.Player(id)
		total := p.HandCount() + len(p.Deck) + gs.Board.CardCount(id) + len(p.Discard)
		require.Equal(t, DeckSize, total, "cards of %s", id)
	}
	require.Len(t, gs.Board, NumCells)
}
