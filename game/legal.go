package game

import "golang.org/x/exp/slices"

// LegalTargets is what a hand card may legally do: the target cells in ascending order,
// and whether it may be discarded instead.
type LegalTargets struct {
	Cells      []int
	CanDiscard bool
}

// GetLegalMoves computes the legal targets of the card in the player's hand slot.
// An empty slot, a finished game or an already seeded player yields no targets.
func (gs *GameState) GetLegalMoves(player PlayerID, cardIndex int) LegalTargets {
	if gs.Status.GameOver || !player.Valid() || cardIndex < 0 || cardIndex >= HandSize {
		return LegalTargets{}
	}
	card := gs.Player(player).Hand[cardIndex]
	if card == nil {
		return LegalTargets{}
	}

	isFirstMove := gs.IsFirstMove(player)
	if isFirstMove && gs.Status.Pending[player.index()] != nil {
		return LegalTargets{}
	}

	cells := LegalCells(gs.Rules, *card, player, gs.Board, isFirstMove, gs.Status.TieBreaker)
	return LegalTargets{
		Cells:      cells,
		CanDiscard: !isFirstMove && !gs.Status.TieBreaker && len(cells) == 0,
	}
}

// LegalCells returns the cells the selected card may be placed on, deduplicated and sorted.
//   - first move: only the player's seed cell.
//   - tie-break: home-row cells that are empty or topped by a strictly lower rank.
//   - regular: home-row cells, cells connected to the home row by the player's color, and their
//     neighbours, each of them either empty or capturable under rules.
func LegalCells(rules Rules, selected Card, player PlayerID, board Board, isFirstMove, isTieBreaker bool) []int {
	if rules == nil {
		rules = NewStandardRules()
	}

	if isTieBreaker {
		cells := []int{}
		for _, i := range HomeRow(player) {
			top, ok := board.TopCard(i)
			if !ok || selected.Rank.Beats(top.Rank) {
				cells = append(cells, i)
			}
		}
		return cells
	}

	if isFirstMove {
		return []int{SeedCell(player)}
	}

	cells := []int{}
	consider := func(i int) {
		top, ok := board.TopCard(i)
		if !ok || rules.CanCapture(selected, top) {
			cells = append(cells, i)
		}
	}

	for _, i := range HomeRow(player) {
		consider(i)
	}
	for _, i := range ConnectedCells(board, player) {
		consider(i)
		for _, n := range Neighbors(i) {
			consider(n)
		}
	}

	slices.Sort(cells)
	return slices.Compact(cells)
}

// ConnectedCells runs a breadth-first flood fill from every home-row cell topped by the player's
// color, through orthogonally adjacent cells topped by the same color. The result is sorted.
func ConnectedCells(board Board, player PlayerID) []int {
	color := player.Color()
	ownTop := func(i int) bool {
		top, ok := board.TopCard(i)
		return ok && top.Color() == color
	}

	visited := make([]bool, len(board))
	queue := []int{}
	for _, i := range HomeRow(player) {
		if ownTop(i) {
			visited[i] = true
			queue = append(queue, i)
		}
	}

	connected := []int{}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		connected = append(connected, current)

		for _, n := range Neighbors(current) {
			if visited[n] || !ownTop(n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	slices.Sort(connected)
	return connected
}

// IsConnected reports whether the cell at index belongs to the player's connected set.
func IsConnected(board Board, player PlayerID, index int) bool {
	_, found := slices.BinarySearch(ConnectedCells(board, player), index)
	return found
}

// LegalMoves enumerates every move the player may make. A player without any playable card
// gets a single pass move.
func (gs *GameState) LegalMoves(player PlayerID) []Move {
	if gs.Status.GameOver || !player.Valid() {
		return nil
	}

	moves := []Move{}
	for slot := 0; slot < HandSize; slot++ {
		targets := gs.GetLegalMoves(player, slot)
		for _, cell := range targets.Cells {
			moves = append(moves, Move{
				PlayerID:    player,
				CardIndex:   slot,
				Destination: ToBoard,
				CellIndex:   cell,
			})
		}
		if targets.CanDiscard {
			moves = append(moves, Move{
				PlayerID:    player,
				CardIndex:   slot,
				Destination: ToDiscard,
			})
		}
	}

	if len(moves) == 0 {
		moves = append(moves, Pass(player))
	}
	return moves
}

// IsLegal reports whether move is one of the player's legal moves.
func (gs *GameState) IsLegal(move Move) bool {
	switch {
	case move.IsPass():
		move = Pass(move.PlayerID)
	case move.Destination == ToDiscard:
		move.CellIndex = 0
	}
	return slices.Contains(gs.LegalMoves(move.PlayerID), move)
}
