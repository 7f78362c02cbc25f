package weiqi

type historyEntry struct {
	hash  uint64
	state GameState
}

// History is the append-only record of committed positions used for
// positional superko. It has a single owner and is not safe for
// concurrent use.
type History struct {
	entries     []historyEntry
	TrustHashes bool // rely only on hashes for ko
}

// NewHistory starts a history at the given position
func NewHistory(initial GameState) *History {
	h := &History{}
	h.Add(initial)
	return h
}

// HasDuplicate checks if the candidate's board appeared in any committed position.
// Turn and pass count are ignored.
func (h *History) HasDuplicate(candidate GameState) bool {
	hash := candidate.Hash()
	for _, e := range h.entries {
		if e.hash != hash {
			continue
		}
		if h.TrustHashes || (e.state.board == candidate.board) {
			return true
		}
	}
	return false
}

// Add commits a state, call it only after the move passed every check
func (h *History) Add(s GameState) {
	h.entries = append(h.entries, historyEntry{hash: s.Hash(), state: s})
}

// Current returns the most recently committed state
func (h *History) Current() GameState {
	return h.entries[len(h.entries)-1].state
}

// Len is the number of committed states
func (h *History) Len() int {
	return len(h.entries)
}

// States returns the committed states, oldest first
func (h *History) States() []GameState {
	states := make([]GameState, len(h.entries))
	for i, e := range h.entries {
		states[i] = e.state
	}
	return states
}

// Play runs a full turn for m against the current state: legality, then
// superko, then commit. Illegal moves come back with Legal false and the
// state left as it was. The error is reserved for caller mistakes, a move
// off the board or out of turn.
func (h *History) Play(m Move) (MoveResult, error) {
	s := h.Current()
	if s.over {
		return rejected(s, ErrGameOver, m), nil
	}
	if m.Color != s.turn {
		return MoveResult{State: s}, NewMoveError(ErrWrongPlayer, m)
	}

	// Pass is always legal
	if m.Pass {
		next := PlayPass(s)
		h.Add(next)
		return MoveResult{Legal: true, State: next}, nil
	}

	if !m.Pos.OnBoard() {
		return MoveResult{State: s}, NewMoveError(ErrOutsideBoard, m)
	}

	r := Evaluate(m.Pos, s)
	if !r.Legal {
		return r, nil
	}
	if h.HasDuplicate(r.State) {
		return rejected(s, ErrPositionalSuperko, m), nil
	}
	h.Add(r.State)
	return r, nil
}
