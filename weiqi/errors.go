package weiqi

import (
	"errors"
	"fmt"
)

// ErrWrongPlayer means that it is the other player's turn
var ErrWrongPlayer error = errors.New("wrong player")

// ErrOutsideBoard means that the position exceeds the size of the board
var ErrOutsideBoard error = errors.New("outside board")

// ErrVertexNotEmpty means that there is already a stone at the position
var ErrVertexNotEmpty error = errors.New("vertex not empty")

// ErrSuicide means that the move leaves its own group without liberties
var ErrSuicide error = errors.New("suicide")

// ErrPositionalSuperko means that the same position has been created before
var ErrPositionalSuperko error = errors.New("violates positional superko")

// ErrGameOver means that the game already ended after two passes
var ErrGameOver error = errors.New("game over")

// ErrMalformedState means that a serialized state could not be loaded
var ErrMalformedState error = errors.New("malformed state")

// MoveError wraps a rejection reason with the attempted move
type MoveError struct {
	err       error
	attempted Move
}

// NewMoveError attaches the attempted move to a rejection reason
func NewMoveError(err error, attempted Move) *MoveError {
	return &MoveError{err: err, attempted: attempted}
}

// Attempted returns the rejected move
func (e *MoveError) Attempted() Move {
	return e.attempted
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %q invalid: %s", e.attempted, e.err)
}

func (e *MoveError) Unwrap() error {
	return e.err
}
