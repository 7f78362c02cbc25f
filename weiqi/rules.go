package weiqi

import "fmt"

// MoveResult is the outcome of evaluating a stone placement.
// When Legal is false, State is the unchanged input state and Reason says why.
type MoveResult struct {
	Legal    bool
	State    GameState
	Captured []Position
	Reason   error
}

func rejected(s GameState, err error, m Move) MoveResult {
	return MoveResult{State: s, Reason: NewMoveError(err, m)}
}

// Evaluate plays a stone for the current player at p, resolving captures
// before checking the new stone's own liberties. Superko is not checked
// here, see History. p must be on the board.
func Evaluate(p Position, s GameState) MoveResult {
	if !p.OnBoard() {
		panic(fmt.Sprintf("evaluated position %s outside board", p))
	}
	m := Move{Color: s.turn, Pos: p}

	if s.over {
		return rejected(s, ErrGameOver, m)
	}
	if s.board.Has(p) {
		return rejected(s, ErrVertexNotEmpty, m)
	}

	player := s.turn
	opponent := player.Opponent()

	// Place tentatively, the turn does not advance yet
	next := s.AddStone(p)

	// Clear opponent groups without liberties
	var captured []Position
	for _, g := range AnalyzeGroups(next).All() {
		if (g.Color == opponent) && !g.HasLiberties {
			for _, v := range g.Stones {
				next = next.RemoveStone(v)
			}
			captured = append(captured, g.Stones...)
		}
	}

	next = next.NextPlayer()

	// A capture may have freed a liberty, so own liberties are judged last
	if !AnalyzeGroups(next).Containing(p).HasLiberties {
		return rejected(s, ErrSuicide, m)
	}

	return MoveResult{Legal: true, State: next, Captured: captured}
}
