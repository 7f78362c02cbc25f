package weiqi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOccupiedMoveUnchanged(t *testing.T) {
	s := NewGameState()
	s = Evaluate(Position{3, 3}, s).State
	s = Evaluate(Position{4, 4}, s).State

	for _, p := range []Position{{3, 3}, {4, 4}} {
		r := Evaluate(p, s)
		require.False(t, r.Legal)
		require.Equal(t, s, r.State)
		require.ErrorIs(t, r.Reason, ErrVertexNotEmpty)
		require.Empty(t, r.Captured)
	}
}

func TestPlacementAdvancesTurn(t *testing.T) {
	s := PlayPass(NewGameState()) // white to play, one pass
	r := Evaluate(Position{9, 9}, s)
	require.True(t, r.Legal)
	require.NoError(t, r.Reason)
	require.Equal(t, White, r.State.StoneAt(Position{9, 9}))
	require.Equal(t, Black, r.State.CurrentPlayer())
	require.Equal(t, 0, r.State.ConsecutivePasses())
}

func TestCaptureNeedsLastLiberty(t *testing.T) {

	// Lone black stone with one white neighbor and three empty neighbors
	target := Position{5, 5}
	s := place(NewGameState(), Black, target)
	s = place(s, White, Position{5, 4})
	s = s.NextPlayer() // white to play

	for i, p := range []Position{{4, 5}, {6, 5}} {
		r := Evaluate(p, s)
		require.True(t, r.Legal, "move %d", i)
		require.Empty(t, r.Captured)
		require.Equal(t, Black, r.State.StoneAt(target), "captured with liberties left")
		s = r.State.NextPlayer() // black plays elsewhere
	}

	r := Evaluate(Position{5, 6}, s)
	require.True(t, r.Legal)
	require.Equal(t, []Position{target}, r.Captured)
	require.Equal(t, Empty, r.State.StoneAt(target))
	require.Equal(t, 4, r.State.Board().Size())
}

func TestCornerCapture(t *testing.T) {
	s := place(NewGameState(), Black, Position{0, 0})
	s = place(s, White, Position{0, 1})
	s = s.NextPlayer()

	r := Evaluate(Position{1, 0}, s)
	require.True(t, r.Legal)
	require.Equal(t, []Position{{0, 0}}, r.Captured)
	require.Equal(t, Empty, r.State.StoneAt(Position{0, 0}))
}

func TestGroupCapture(t *testing.T) {

	// Two black stones on the top edge
	s := place(NewGameState(), Black, Position{8, 0}, Position{9, 0})
	s = place(s, White, Position{7, 0}, Position{8, 1}, Position{9, 1})
	s = s.NextPlayer()

	r := Evaluate(Position{10, 0}, s)
	require.True(t, r.Legal)
	require.ElementsMatch(t, []Position{{8, 0}, {9, 0}}, r.Captured)
	require.Equal(t, 4, r.State.Board().Size())
}

func TestSuicideRejected(t *testing.T) {
	s := place(NewGameState(), White, Position{1, 0}, Position{0, 1})

	r := Evaluate(Position{0, 0}, s)
	require.False(t, r.Legal)
	require.ErrorIs(t, r.Reason, ErrSuicide)
	require.Equal(t, s, r.State)

	var moveErr *MoveError
	require.ErrorAs(t, r.Reason, &moveErr)
	require.Equal(t, NewMove(Black, 0, 0), moveErr.Attempted())
}

func TestGroupSuicideRejected(t *testing.T) {

	// Filling the last shared liberty of a black group is suicide
	s := place(NewGameState(), Black, Position{0, 0}, Position{1, 0})
	s = place(s, White, Position{2, 0}, Position{1, 1}, Position{0, 2})

	r := Evaluate(Position{0, 1}, s)
	require.False(t, r.Legal)
	require.ErrorIs(t, r.Reason, ErrSuicide)
	require.Equal(t, s, r.State)
	require.Empty(t, r.Captured)
}

func TestSelfAtariCapture(t *testing.T) {

	// White stone at (1,1) whose last liberty is (2,1),
	// and (2,1) itself is surrounded by white
	s := place(NewGameState(), Black, Position{1, 0}, Position{0, 1}, Position{1, 2})
	s = place(s, White, Position{1, 1}, Position{2, 0}, Position{3, 1}, Position{2, 2})

	r := Evaluate(Position{2, 1}, s)
	require.True(t, r.Legal, "capture did not free a liberty")
	require.Equal(t, []Position{{1, 1}}, r.Captured)
	require.Equal(t, Black, r.State.StoneAt(Position{2, 1}))
	require.Equal(t, Empty, r.State.StoneAt(Position{1, 1}))
	require.True(t, AnalyzeGroups(r.State).Containing(Position{2, 1}).HasLiberties)

	// White may recapture on a plain board, ko is History's job
	r2 := Evaluate(Position{1, 1}, r.State)
	require.True(t, r2.Legal)
	require.Equal(t, []Position{{2, 1}}, r2.Captured)
	require.Equal(t, s.Board(), r2.State.Board())
}

func TestMoveAfterGameOver(t *testing.T) {
	s := PlayPass(PlayPass(NewGameState()))
	require.True(t, s.GameOver())

	r := Evaluate(Position{3, 3}, s)
	require.False(t, r.Legal)
	require.ErrorIs(t, r.Reason, ErrGameOver)
	require.Equal(t, s, r.State)
}

func TestEvaluateOffBoardPanics(t *testing.T) {
	require.Panics(t, func() { Evaluate(Position{19, 0}, NewGameState()) })
	require.Panics(t, func() { Evaluate(Position{0, -1}, NewGameState()) })
}
