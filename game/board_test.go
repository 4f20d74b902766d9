package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushCard(t *testing.T) {
	board := NewBoard().PushCard(7, red(Four))

	newBoard := board.PushCard(7, black(Six))

	top, ok := newBoard.TopCard(7)
	require.True(t, ok)
	require.Equal(t, black(Six), top)
	require.Len(t, newBoard[7], 2)
	require.Equal(t, red(Four), newBoard[7][0], "captured cards stay buried")

	// Original board is untouched
	top, ok = board.TopCard(7)
	require.True(t, ok)
	require.Equal(t, red(Four), top)
	require.Len(t, board[7], 1)

	_, ok = newBoard.TopCard(8)
	require.False(t, ok)
	require.Len(t, newBoard, NumCells)
}

func TestReveal(t *testing.T) {
	hidden := red(King)
	hidden.FaceDown = true
	board := NewBoard().PushCard(22, hidden)

	revealed := board.reveal(22)

	top, _ := revealed.TopCard(22)
	require.False(t, top.FaceDown)
	top, _ = board.TopCard(22)
	require.True(t, top.FaceDown, "reveal must not modify the receiver")
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected []int
	}{
		{name: "top left corner", index: 0, expected: []int{1, 5}},
		{name: "top right corner does not wrap", index: 4, expected: []int{3, 9}},
		{name: "left edge does not wrap", index: 5, expected: []int{0, 10, 6}},
		{name: "centre", index: 12, expected: []int{7, 17, 11, 13}},
		{name: "bottom right corner", index: 24, expected: []int{19, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ElementsMatch(t, tt.expected, Neighbors(tt.index))
		})
	}
}

func TestHomeRows(t *testing.T) {
	require.Equal(t, []int{20, 21, 22, 23, 24}, HomeRow(Player1))
	require.Equal(t, []int{0, 1, 2, 3, 4}, HomeRow(Player2))
	require.Equal(t, 22, SeedCell(Player1))
	require.Equal(t, 2, SeedCell(Player2))
	require.True(t, IsHomeRow(Player1, 24))
	require.False(t, IsHomeRow(Player1, 4))
	require.True(t, IsHomeRow(Player2, 0))
}
