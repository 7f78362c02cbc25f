/*
Package weiqi implements the rules of Go on a fixed 19x19 board.

Stones are captured when their group runs out of liberties, suicide is
prohibited and positional superko forbids recreating any earlier board.
Game states are immutable values; every transition returns a new state.

Game scoring is not supported.*/
package weiqi

// GameState is an immutable snapshot of a game.
// States are comparable, == compares them by value.
type GameState struct {
	board  BoardStore
	turn   Stone // Empty once the game is over
	passes int
	over   bool
}

// NewGameState is an empty board with black to play
func NewGameState() GameState {
	return GameState{turn: Black}
}

// Board returns the board store
func (s GameState) Board() BoardStore {
	return s.board
}

// CurrentPlayer is the color to move, or Empty after the game ended
func (s GameState) CurrentPlayer() Stone {
	return s.turn
}

// ConsecutivePasses counts passes since the last stone was placed
func (s GameState) ConsecutivePasses() int {
	return s.passes
}

// GameOver reports whether two consecutive passes ended the game
func (s GameState) GameOver() bool {
	return s.over
}

// Hash hashes the board only, not the turn or pass count
func (s GameState) Hash() uint64 {
	return s.board.Hash()
}

// StoneAt returns the color at a position or Empty
func (s GameState) StoneAt(p Position) Stone {
	stone, _ := s.board.Get(p)
	return stone
}

// AddStone places a stone of the current player's color.
// Occupancy is not checked here, see Evaluate.
func (s GameState) AddStone(p Position) GameState {
	if s.over {
		return s
	}
	s.board = s.board.Set(p, s.turn)
	s.passes = 0
	return s
}

// RemoveStone empties a position, the pass count is left alone
func (s GameState) RemoveStone(p Position) GameState {
	if s.over {
		return s
	}
	s.board = s.board.Remove(p)
	return s
}

// Pass records a pass without changing the turn
func (s GameState) Pass() GameState {
	if s.over {
		return s
	}
	s.passes++
	return s
}

// NextPlayer hands the turn to the opponent
func (s GameState) NextPlayer() GameState {
	if s.over {
		return s
	}
	s.turn = s.turn.Opponent()
	return s
}

// EndGame marks the game as over
func (s GameState) EndGame() GameState {
	if s.over {
		return s
	}
	s.over = true
	s.turn = Empty
	return s
}

// PlayPass is a full pass turn: the second consecutive pass ends the game,
// otherwise the turn goes to the opponent.
func PlayPass(s GameState) GameState {
	s = s.Pass()
	if s.passes >= 2 {
		return s.EndGame()
	}
	return s.NextPlayer()
}

func (s GameState) String() string {
	status := s.turn.String() + " to play"
	if s.over {
		status = "game over"
	}
	return s.board.String() + status + "\n"
}
