package metrics

import (
	"sync/atomic"
	"time"

	"techu/game"

	"github.com/google/uuid"
)

type MoveMetric struct {
	Step        int
	Player      int // Player ID
	Phase       string
	Destination string // board, discard or pass
	Cell        int    // -1 unless played to the board
	Capture     bool   // covered an occupied cell
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer int    // Player ID of the first regular turn
	Winner         string // Player ID name, "Draw" or "" if cut off
	Player1Score   int
	Player2Score   int
	TieBreaks      int
	TotalMoves     int
	Captures       int
	Discards       int
	Passes         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start()
	AddMove(before *game.GameState, move game.Move)
	AddFlip(after *game.GameState)
	Complete(final *game.GameState) (GameMetric, []MoveMetric)
}

type collector struct {
	id             uuid.UUID
	startTime      time.Time
	startingPlayer game.PlayerID
	moves          []MoveMetric
	captures       atomic.Int32
	discards       atomic.Int32
	passes         atomic.Int32
}

func NewCollector() Collector {
	return &collector{id: uuid.New()}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddMove(before *game.GameState, move game.Move) {
	if !move.PlayerID.Valid() {
		return
	}
	metric := MoveMetric{
		Step:        len(m.moves) + 1,
		Player:      int(move.PlayerID),
		Phase:       before.Phase().String(),
		Destination: move.Destination.String(),
		Cell:        -1,
	}

	slotEmpty := move.IsPass() || before.Player(move.PlayerID).Hand[move.CardIndex] == nil
	switch {
	case slotEmpty:
		metric.Destination = "pass"
		m.passes.Add(1)
	case move.Destination == game.ToDiscard && !before.IsFirstMove(move.PlayerID):
		m.discards.Add(1)
	default:
		metric.Destination = game.ToBoard.String()
		metric.Cell = move.CellIndex
		if before.IsFirstMove(move.PlayerID) && !before.Status.TieBreaker {
			metric.Cell = game.SeedCell(move.PlayerID)
		}
		if _, occupied := before.Board.TopCard(metric.Cell); occupied {
			metric.Capture = true
			m.captures.Add(1)
		}
	}

	m.moves = append(m.moves, metric)
}

func (m *collector) AddFlip(after *game.GameState) {
	if after.Phase() == game.RegularPhase && m.startingPlayer == game.NoPlayer {
		m.startingPlayer = after.CurrentPlayer
	}
}

func (m *collector) Complete(final *game.GameState) (GameMetric, []MoveMetric) {
	scores := final.Scores()
	winner := ""
	if w, ok := final.Winner(); ok {
		winner = WinnerName(w)
	}
	end := time.Now()
	return GameMetric{
		ID:             m.id,
		StartingPlayer: int(m.startingPlayer),
		Winner:         winner,
		Player1Score:   scores.Player1,
		Player2Score:   scores.Player2,
		TieBreaks:      final.Status.TieBreakRounds,
		TotalMoves:     len(m.moves),
		Captures:       int(m.captures.Load()),
		Discards:       int(m.discards.Load()),
		Passes:         int(m.passes.Load()),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
	}, m.moves
}

// WinnerName names a game result, NoPlayer being a draw.
func WinnerName(winner game.PlayerID) string {
	if winner == game.NoPlayer {
		return "Draw"
	}
	return winner.String()
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                         {}
func (m *dummyCollector) AddMove(before *game.GameState, move game.Move) {}
func (m *dummyCollector) AddFlip(after *game.GameState)                  {}
func (m *dummyCollector) Complete(final *game.GameState) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
