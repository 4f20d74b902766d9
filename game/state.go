package game

import (
	"encoding/binary"
	"hash/fnv"
)

type PlayerID int

const (
	NoPlayer PlayerID = iota // also reported as the winner of a drawn game
	Player1
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "NoPlayer"
}

// Color is fixed per player for the whole game: Player1 red, Player2 black.
func (p PlayerID) Color() Color {
	if p == Player1 {
		return Red
	}
	return Black
}

func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) index() int {
	return int(p) - 1
}

type Phase int

const (
	FirstMovePhase Phase = iota
	FlipPhase
	TieBreakerPhase
	RegularPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case FirstMovePhase:
		return "first-move"
	case FlipPhase:
		return "flip"
	case TieBreakerPhase:
		return "tie-breaker"
	case RegularPhase:
		return "regular"
	}
	return "game-over"
}

// PendingCard is a seed card waiting for the simultaneous reveal.
type PendingCard struct {
	Card      Card
	CellIndex int
}

// Status holds the phase flags, indexed by player (Player1 first).
type Status struct {
	FirstMove      [2]bool
	TieBreaker     bool
	Pending        [2]*PendingCard
	GameOver       bool
	TieBreakRounds int // number of flips that ended in a tie
}

// GameState is the whole game. It is never modified in place: every transition copies it first.
type GameState struct {
	Board         Board     // Cells indexed row-major
	Players       [2]Player // Player1, Player2
	Status        Status
	CurrentPlayer PlayerID
	Rules         Rules // Capture rule in regular play
	LastMove      *Move // The last move applied, nil before the first one
}

// NewGameState builds the opening state from two dealt players.
func NewGameState(rules Rules, p1, p2 Player) *GameState {
	if rules == nil {
		rules = NewStandardRules()
	}
	return &GameState{
		Board:   NewBoard(),
		Players: [2]Player{p1, p2},
		Status: Status{
			FirstMove: [2]bool{true, true},
		},
		CurrentPlayer: Player1,
		Rules:         rules,
	}
}

// InitializeGame starts a fresh game with freshly shuffled decks.
func InitializeGame(rules Rules) *GameState {
	return NewGameState(rules, InitializePlayer(Player1), InitializePlayer(Player2))
}

// Copy returns a state that can be modified without affecting gs. The board is shared
// since board operations always allocate.
func (gs *GameState) Copy() *GameState {
	var lastMove *Move
	if gs.LastMove != nil {
		m := *gs.LastMove
		lastMove = &m
	}
	return &GameState{
		Board:         gs.Board,
		Players:       [2]Player{gs.Players[0].copy(), gs.Players[1].copy()},
		Status:        gs.Status, // pending cards are replaced, never mutated
		CurrentPlayer: gs.CurrentPlayer,
		Rules:         gs.Rules,
		LastMove:      lastMove,
	}
}

// Player returns the state of one player.
func (gs *GameState) Player(id PlayerID) Player {
	return gs.Players[id.index()]
}

func (gs *GameState) Phase() Phase {
	s := gs.Status
	switch {
	case s.GameOver:
		return GameOverPhase
	case s.Pending[0] != nil && s.Pending[1] != nil:
		return FlipPhase
	case s.TieBreaker:
		return TieBreakerPhase
	case s.FirstMove[0] || s.FirstMove[1]:
		return FirstMovePhase
	}
	return RegularPhase
}

// IsFirstMove reports whether the player still has to seed (or re-seed during a tie-break).
func (gs *GameState) IsFirstMove(player PlayerID) bool {
	return gs.Status.FirstMove[player.index()]
}

// FlipReady reports whether both players have a pending card to reveal.
func (gs *GameState) FlipReady() bool {
	return gs.Status.Pending[0] != nil && gs.Status.Pending[1] != nil
}

func (gs *GameState) IsGameOver() bool {
	return gs.Status.GameOver
}

// Scores counts the cells topped by each color.
func (gs *GameState) Scores() Scores {
	return CalculateScores(gs.Board)
}

// Winner returns the winner once the game is over; NoPlayer with ok set means a draw.
func (gs *GameState) Winner() (winner PlayerID, ok bool) {
	if !gs.Status.GameOver {
		return NoPlayer, false
	}
	return DetermineWinner(gs.Scores()), true
}

func (gs *GameState) checkGameOver() {
	if gs.Players[0].Exhausted() && gs.Players[1].Exhausted() {
		gs.Status.GameOver = true
	}
}

type StateHash uint64

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeCard := func(c Card) {
		write(int(c.Suit))
		write(int(c.Rank))
		write(int(c.Owner))
		write(boolToInt(c.FaceDown))
	}

	// Hash turn and status
	write(int(gs.CurrentPlayer))
	for i := range gs.Status.FirstMove {
		write(boolToInt(gs.Status.FirstMove[i]))
		if p := gs.Status.Pending[i]; p != nil {
			write(p.CellIndex)
		} else {
			write(-1)
		}
	}
	write(boolToInt(gs.Status.TieBreaker))
	write(boolToInt(gs.Status.GameOver))

	// Hash board stacks, separated by their heights
	for _, cell := range gs.Board {
		write(len(cell))
		for _, c := range cell {
			writeCard(c)
		}
	}

	// Hash hands, decks and discards
	for _, p := range gs.Players {
		for _, c := range p.Hand {
			if c == nil {
				write(-1)
				continue
			}
			writeCard(*c)
		}
		write(len(p.Deck))
		for _, c := range p.Deck {
			writeCard(c)
		}
		write(len(p.Discard))
	}

	return StateHash(hasher.Sum64())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
