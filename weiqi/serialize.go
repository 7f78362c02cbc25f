package weiqi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serialized is the save/load shape of a GameState.
// Cells holds only occupied positions, keyed by "col,row".
type Serialized struct {
	CurrentPlayer     string            `json:"currentPlayer"`
	Cells             map[string]string `json:"cells"`
	ConsecutivePasses int               `json:"consecutivePasses"`
	GameOver          bool              `json:"gameOver"`
}

// ToSerializable converts the state to its canonical serialized form
func (s GameState) ToSerializable() Serialized {
	cells := make(map[string]string, s.board.Size())
	for p, stone := range s.board.All() {
		cells[p.String()] = stone.String()
	}
	return Serialized{
		CurrentPlayer:     s.turn.String(),
		Cells:             cells,
		ConsecutivePasses: s.passes,
		GameOver:          s.over,
	}
}

func malformed(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedState, fmt.Sprintf(format, a...))
}

// FromSerializable validates and rebuilds a state, errors wrap ErrMalformedState
func FromSerializable(data Serialized) (GameState, error) {
	var s GameState

	turn, err := ParseStone(data.CurrentPlayer)
	if err != nil {
		return GameState{}, malformed("current player %q", data.CurrentPlayer)
	}
	if data.GameOver != (turn == Empty) {
		return GameState{}, malformed("current player %q with game over %t", data.CurrentPlayer, data.GameOver)
	}
	if data.ConsecutivePasses < 0 {
		return GameState{}, malformed("negative consecutive passes %d", data.ConsecutivePasses)
	}
	if data.GameOver != (data.ConsecutivePasses >= 2) {
		return GameState{}, malformed("%d consecutive passes with game over %t", data.ConsecutivePasses, data.GameOver)
	}

	for key, value := range data.Cells {
		p, err := ParsePosition(key)
		if err != nil {
			return GameState{}, malformed("cell key: %s", err)
		}
		if p.String() != key { // e.g. "01,2" would not survive a round trip
			return GameState{}, malformed("cell key %q not canonical", key)
		}
		stone, err := ParseStone(value)
		if (err != nil) || (stone == Empty) {
			return GameState{}, malformed("cell %s has color %q", key, value)
		}
		s.board = s.board.Set(p, stone)
	}

	s.turn = turn
	s.passes = data.ConsecutivePasses
	s.over = data.GameOver
	return s, nil
}

// MarshalJSON writes the serialized form
func (s GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSerializable())
}

// UnmarshalJSON loads the serialized form, rejecting unknown or missing fields
func (s *GameState) UnmarshalJSON(data []byte) error {
	var raw struct {
		CurrentPlayer     *string            `json:"currentPlayer"`
		Cells             *map[string]string `json:"cells"`
		ConsecutivePasses *int               `json:"consecutivePasses"`
		GameOver          *bool              `json:"gameOver"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedState, err)
	}
	switch {
	case raw.CurrentPlayer == nil:
		return malformed("missing currentPlayer")
	case raw.Cells == nil:
		return malformed("missing cells")
	case raw.ConsecutivePasses == nil:
		return malformed("missing consecutivePasses")
	case raw.GameOver == nil:
		return malformed("missing gameOver")
	}

	loaded, err := FromSerializable(Serialized{
		CurrentPlayer:     *raw.CurrentPlayer,
		Cells:             *raw.Cells,
		ConsecutivePasses: *raw.ConsecutivePasses,
		GameOver:          *raw.GameOver,
	})
	if err != nil {
		return err
	}
	*s = loaded
	return nil
}
