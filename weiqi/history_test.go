package weiqi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryCurrent(t *testing.T) {
	s := NewGameState()
	h := NewHistory(s)
	require.Equal(t, 1, h.Len())
	require.Equal(t, s, h.Current())

	s2 := Evaluate(Position{3, 3}, s).State
	h.Add(s2)
	require.Equal(t, 2, h.Len())
	require.Equal(t, s2, h.Current())
	require.Equal(t, []GameState{s, s2}, h.States())
}

func TestHistoryIgnoresTurnAndPasses(t *testing.T) {
	s := Evaluate(Position{3, 3}, NewGameState()).State
	h := NewHistory(s)

	// Same board, different turn and pass count
	other := PlayPass(s).NextPlayer().Pass()
	require.NotEqual(t, s, other)
	require.True(t, h.HasDuplicate(other))

	require.False(t, h.HasDuplicate(Evaluate(Position{4, 4}, s).State))
	require.True(t, h.HasDuplicate(s))
}

func TestFakeHashCollision(t *testing.T) {
	s := NewGameState()
	h := NewHistory(s)
	candidate := Evaluate(Position{0, 1}, s).State

	// Pretend the empty board hashed like the candidate
	h.entries[0].hash = candidate.Hash()
	require.False(t, h.HasDuplicate(candidate), "hash collision rejected a new position")

	h.TrustHashes = true
	require.True(t, h.HasDuplicate(candidate))
}
