package game

// Scores is the number of cells topped by each player's color.
type Scores struct {
	Player1 int
	Player2 int
}

// Of returns the score of one player.
func (s Scores) Of(player PlayerID) int {
	if player == Player1 {
		return s.Player1
	}
	return s.Player2
}

// CalculateScores tallies the top card color of every occupied cell. Who placed the card does not matter.
func CalculateScores(board Board) Scores {
	var s Scores
	for _, cell := range board {
		top, ok := cell.TopCard()
		if !ok {
			continue
		}
		if top.Color() == Player1.Color() {
			s.Player1++
		} else {
			s.Player2++
		}
	}
	return s
}

// DetermineWinner returns the player with the strictly greater score, NoPlayer on a tie.
func DetermineWinner(s Scores) PlayerID {
	switch {
	case s.Player1 > s.Player2:
		return Player1
	case s.Player2 > s.Player1:
		return Player2
	}
	return NoPlayer
}
