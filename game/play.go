package game

// ApplyMove returns the state after move. It does not re-validate the target against
// GetLegalMoves and it advances the turn relative to the acting player, not the recorded
// current player. Callers needing those checks use gamemaster.Session.
//
// No-ops:
//   - the game is over or the player id is unknown: gs is returned unchanged.
//   - the hand slot is empty or out of range: only the turn passes.
//   - a board move with a cell outside the board: gs is returned unchanged.
func (gs *GameState) ApplyMove(move Move) *GameState {
	if gs.Status.GameOver || !move.PlayerID.Valid() {
		return gs
	}

	newGs := gs.Copy()
	idx := move.PlayerID.index()
	p := &newGs.Players[idx]

	if move.IsPass() || p.Hand[move.CardIndex] == nil {
		newGs.endTurn(move)
		return newGs
	}
	placed := *p.Hand[move.CardIndex]

	switch {
	case newGs.Status.FirstMove[idx]:
		// Seeding: the fixed seed cell face down, or a home-row cell face up during a tie-break
		cell := SeedCell(move.PlayerID)
		if newGs.Status.TieBreaker {
			cell = move.CellIndex
		}
		if !onBoard(cell) {
			return gs
		}
		placed.FaceDown = !newGs.Status.TieBreaker
		newGs.Board = newGs.Board.PushCard(cell, placed)
		newGs.Status.Pending[idx] = &PendingCard{Card: placed, CellIndex: cell}

	case move.Destination == ToDiscard:
		placed.FaceDown = true
		p.Discard = append(p.Discard, placed)

	default:
		if !onBoard(move.CellIndex) {
			return gs
		}
		placed.FaceDown = false
		newGs.Board = newGs.Board.PushCard(move.CellIndex, placed)
	}

	p.draw(move.CardIndex)
	newGs.endTurn(move)
	return newGs
}

func (gs *GameState) endTurn(move Move) {
	gs.LastMove = &move
	gs.CurrentPlayer = move.PlayerID.Opponent()
	gs.checkGameOver()
}

func onBoard(index int) bool {
	return index >= 0 && index < NumCells
}

// ApplyFlip reveals both pending seed cards and resolves the first-move protocol:
//   - different ranks: seeding ends and the owner of the lower card moves first.
//   - equal ranks: a tie-break round starts, both players seed again on their home row,
//     Player1 first.
//
// It is a no-op unless both players have a pending card.
func (gs *GameState) ApplyFlip() *GameState {
	if gs.Status.GameOver || !gs.FlipReady() {
		return gs
	}

	newGs := gs.Copy()
	first, second := newGs.Status.Pending[0], newGs.Status.Pending[1]
	newGs.Board = newGs.Board.reveal(first.CellIndex).reveal(second.CellIndex)

	if first.Card.Rank == second.Card.Rank {
		newGs.Status.TieBreaker = true
		newGs.Status.FirstMove = [2]bool{true, true}
		newGs.Status.TieBreakRounds++
		newGs.CurrentPlayer = Player1
	} else {
		newGs.Status.TieBreaker = false
		newGs.Status.FirstMove = [2]bool{false, false}
		newGs.CurrentPlayer = Player1
		if second.Card.Rank < first.Card.Rank {
			newGs.CurrentPlayer = Player2
		}
	}

	newGs.Status.Pending = [2]*PendingCard{}
	newGs.checkGameOver()
	return newGs
}
