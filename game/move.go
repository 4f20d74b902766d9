package game

import "fmt"

// Destination is where a played card goes.
type Destination int

const (
	ToBoard Destination = iota
	ToDiscard
)

func (d Destination) String() string {
	if d == ToDiscard {
		return "discard"
	}
	return "board"
}

// NoCard is a hand index that never holds a card; playing it passes the turn.
const NoCard = -1

// Move is a player action: a hand slot played to a board cell or to the discard pile.
// CellIndex is ignored for discards and for seed moves outside a tie-break.
type Move struct {
	PlayerID    PlayerID
	CardIndex   int
	Destination Destination
	CellIndex   int
}

// Pass returns the turn-passing no-op move of a player.
func Pass(player PlayerID) Move {
	return Move{PlayerID: player, CardIndex: NoCard}
}

func (m Move) IsPass() bool {
	return m.CardIndex < 0 || m.CardIndex >= HandSize
}

func (m Move) String() string {
	switch {
	case m.IsPass():
		return fmt.Sprintf("%s pass", m.PlayerID)
	case m.Destination == ToDiscard:
		return fmt.Sprintf("%s slot %d -> discard", m.PlayerID, m.CardIndex)
	}
	return fmt.Sprintf("%s slot %d -> cell %d", m.PlayerID, m.CardIndex, m.CellIndex)
}
