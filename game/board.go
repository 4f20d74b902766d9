package game

const (
	BoardSize = 5
	NumCells  = BoardSize * BoardSize
)

// Cell is a stack of cards, bottom first. Only the last card is visible.
type Cell []Card

// Board holds the cells in row-major order, indexed 0..NumCells-1.
type Board []Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	return make(Board, NumCells)
}

// TopCard returns the visible card of a cell, ok is false if the cell is empty.
func (c Cell) TopCard() (card Card, ok bool) {
	if len(c) == 0 {
		return Card{}, false
	}
	return c[len(c)-1], true
}

// TopCard returns the visible card of the cell at index.
func (b Board) TopCard(index int) (Card, bool) {
	return b[index].TopCard()
}

// PushCard returns a new board with card appended to the cell at index. The receiver is not modified;
// untouched cells share storage with it.
func (b Board) PushCard(index int, card Card) Board {
	newBoard := make(Board, len(b))
	copy(newBoard, b)

	cell := make(Cell, len(b[index]), len(b[index])+1)
	copy(cell, b[index])
	newBoard[index] = append(cell, card)
	return newBoard
}

// reveal returns a new board where the top card of the cell at index is turned face up.
func (b Board) reveal(index int) Board {
	top, ok := b.TopCard(index)
	if !ok || !top.FaceDown {
		return b
	}
	newBoard := make(Board, len(b))
	copy(newBoard, b)

	cell := make(Cell, len(b[index]))
	copy(cell, b[index])
	cell[len(cell)-1].FaceDown = false
	newBoard[index] = cell
	return newBoard
}

func (b Board) Copy() Board {
	newBoard := make(Board, len(b))
	for i, cell := range b {
		newBoard[i] = append(Cell(nil), cell...)
	}
	return newBoard
}

// CardCount returns the number of cards on the board owned by the player, buried ones included.
func (b Board) CardCount(owner PlayerID) int {
	n := 0
	for _, cell := range b {
		for _, card := range cell {
			if card.Owner == owner {
				n++
			}
		}
	}
	return n
}

// Row and column of a cell index.
func Row(index int) int { return index / BoardSize }
func Col(index int) int { return index % BoardSize }

// Index of the cell at row and column.
func Index(row, col int) int { return row*BoardSize + col }

// directions are the four orthogonal neighbour offsets (dr, dc).
var directions = [4][2]int{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

// Neighbors returns the orthogonally adjacent cell indices. Adjacency does not wrap around edges.
func Neighbors(index int) []int {
	r, c := Row(index), Col(index)
	neighbors := make([]int, 0, 4)
	for _, d := range directions {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= BoardSize || nc < 0 || nc >= BoardSize {
			continue
		}
		neighbors = append(neighbors, Index(nr, nc))
	}
	return neighbors
}

// HomeRow returns the cell indices of a player's home row: the last row for Player1, the first for Player2.
func HomeRow(player PlayerID) []int {
	row := 0
	if player == Player1 {
		row = BoardSize - 1
	}
	cells := make([]int, BoardSize)
	for c := range cells {
		cells[c] = Index(row, c)
	}
	return cells
}

// IsHomeRow reports whether index lies on the player's home row.
func IsHomeRow(player PlayerID, index int) bool {
	if player == Player1 {
		return Row(index) == BoardSize-1
	}
	return Row(index) == 0
}

// SeedCell is the middle cell of the player's home row: 22 for Player1 and 2 for Player2 on a 5x5 board.
func SeedCell(player PlayerID) int {
	return HomeRow(player)[BoardSize/2]
}
