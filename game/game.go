// Package game drives a weiqi game for a user interface: it owns the
// position history, runs every action through the rules and pushes each
// committed state to its observers.
package game

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dodgebc/weiqi-rules/weiqi"
)

// Observer receives the serialized state after every committed transition
type Observer interface {
	Notify(state weiqi.Serialized)
}

// ObserverFunc adapts a function to an Observer
type ObserverFunc func(state weiqi.Serialized)

// Notify calls f
func (f ObserverFunc) Notify(state weiqi.Serialized) {
	f(state)
}

// Game is not safe for concurrent use, a single goroutine should own it
type Game struct {
	ID uuid.UUID

	history   *weiqi.History
	moves     []weiqi.Move
	observers []Observer
	logger    *zap.Logger
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger, the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithState resumes a game from a saved state instead of an empty board.
// Positions from before the save are not known, superko only covers
// positions reached from s.
func WithState(s weiqi.GameState) Option {
	return func(g *Game) {
		g.history = weiqi.NewHistory(s)
	}
}

// WithID sets the game id, otherwise a random one is generated
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// New starts a game, black to play on an empty board unless WithState is given
func New(opts ...Option) *Game {
	g := &Game{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	if g.history == nil {
		g.history = weiqi.NewHistory(weiqi.NewGameState())
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.logger = g.logger.With(zap.String("game_id", g.ID.String()))
	return g
}

// Load resumes a game from a JSON document in the serialized state format
func Load(data []byte, opts ...Option) (*Game, error) {
	var s weiqi.GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	return New(append(opts, WithState(s))...), nil
}

// State returns the current committed state
func (g *Game) State() weiqi.GameState {
	return g.history.Current()
}

// Moves returns the committed moves in order
func (g *Game) Moves() []weiqi.Move {
	return append([]weiqi.Move(nil), g.moves...)
}

// MarshalJSON saves the current state
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.State())
}

// Subscribe registers an observer and immediately sends it the current state
func (g *Game) Subscribe(o Observer) {
	g.observers = append(g.observers, o)
	o.Notify(g.State().ToSerializable())
}

func (g *Game) notify() {
	state := g.State().ToSerializable()
	for _, o := range g.observers {
		o.Notify(state)
	}
}

// Select places a stone for the current player.
// Illegal moves are reported in the result and leave the game untouched,
// the error is only for positions off the board.
func (g *Game) Select(p weiqi.Position) (weiqi.MoveResult, error) {
	return g.Play(weiqi.Move{Color: g.State().CurrentPlayer(), Pos: p})
}

// Pass passes for the current player, the second pass in a row ends the game
func (g *Game) Pass() (weiqi.MoveResult, error) {
	return g.Play(weiqi.NewMovePass(g.State().CurrentPlayer()))
}

// Play applies a move, which must be for the player to move
func (g *Game) Play(m weiqi.Move) (weiqi.MoveResult, error) {
	r, err := g.history.Play(m)
	if err != nil {
		g.logger.Debug("move refused", zap.Stringer("move", m), zap.Error(err))
		return r, err
	}
	if !r.Legal {
		g.logger.Debug("illegal move", zap.Stringer("move", m), zap.Error(r.Reason))
		return r, nil
	}

	g.moves = append(g.moves, m)
	g.logger.Debug("move played",
		zap.Stringer("move", m),
		zap.Int("captured", len(r.Captured)),
		zap.Int("move_number", len(g.moves)),
	)
	if r.State.GameOver() {
		g.logger.Info("game over", zap.Int("moves", len(g.moves)))
	}
	g.notify()
	return r, nil
}
