package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"techu/game"
	"techu/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrFlipPending = errors.New("flip pending")
	ErrNotReady    = errors.New("flip not ready")
)

// Update is published after every accepted action. Move is nil for a flip.
type Update struct {
	Move  *game.Move
	State *game.GameState
	Hash  game.StateHash
}

// UpdateGetter returns the oldest unread update without blocking, ok is false if there is none
// or the game is over and every update has been read.
type UpdateGetter func() (u Update, ok bool)

type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Move) error
	Flip() error
}

// Session owns one game and serializes the actions applied to it. Unlike the game package
// it rejects moves out of turn and moves outside the legal set.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	rules    game.Rules
	state    *game.GameState
	updateCh chan Update
	gameOver bool
}

func NewSession(rules game.Rules) *Session {
	return &Session{
		ID:    uuid.New(),
		rules: rules,
	}
}

// Init deals a new game, dropping any previous one.
func (s *Session) Init() (*game.GameState, UpdateGetter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = game.InitializeGame(s.rules)
	s.gameOver = false
	s.updateCh = make(chan Update, meta.UPDATE_BUFFER)
	log.Debug().Msgf("session %s: new game with %s capture", s.ID, s.state.Rules.Name())

	updateCh := s.updateCh
	return s.state, func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

// State returns the current state. States are never mutated, so it is safe to keep.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Play(move game.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if s.state.FlipReady() {
		return ErrFlipPending
	}
	if move.PlayerID != s.state.CurrentPlayer {
		return fmt.Errorf("%w: %s to move, got %s", ErrNotYourTurn, s.state.CurrentPlayer, move.PlayerID)
	}
	if !s.state.IsLegal(move) {
		log.Warn().Msgf("session %s: rejected %s", s.ID, move)
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	s.state = s.state.ApplyMove(move)
	s.publish(Update{Move: &move, State: s.state, Hash: s.state.Hash()})
	return nil
}

// Flip reveals both seed cards once both players have seeded.
func (s *Session) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if !s.state.FlipReady() {
		return ErrNotReady
	}

	s.state = s.state.ApplyFlip()
	s.publish(Update{State: s.state, Hash: s.state.Hash()})
	return nil
}

func (s *Session) ready() error {
	if s.state == nil {
		return errors.New("session not initialized")
	}
	if s.gameOver {
		return ErrGameOver
	}
	return nil
}

// publish never blocks: a full buffer drops its oldest update. The channel is closed after
// the final update.
func (s *Session) publish(u Update) {
	for sent := false; !sent; {
		select {
		case s.updateCh <- u:
			sent = true
		default:
			select {
			case <-s.updateCh:
			default:
			}
		}
	}

	if s.state.IsGameOver() {
		s.gameOver = true
		close(s.updateCh)
		winner, _ := s.state.Winner()
		log.Info().Msgf("session %s: game over, winner: %s", s.ID, winner)
	}
}
