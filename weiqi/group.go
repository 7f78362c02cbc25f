package weiqi

// Group is a maximal set of same colored stones connected through 4-adjacency
type Group struct {
	Color        Stone
	Stones       []Position
	HasLiberties bool
}

// Groups partitions every occupied position of a board into groups
type Groups struct {
	groups []Group
	owner  [NumCells]int // index into groups plus one, zero when empty
}

// AnalyzeGroups flood fills the board from each ungrouped stone.
// Each stone is pushed on the stack once, so the cost is linear in the
// number of stones.
func AnalyzeGroups(s GameState) Groups {
	var gs Groups
	b := s.board
	stack := make([]Position, 0, 16)

	for seed, color := range b.All() {
		if gs.owner[seed.index()] != 0 {
			continue
		}

		g := Group{Color: color}
		id := len(gs.groups) + 1
		gs.owner[seed.index()] = id
		stack = append(stack[:0], seed)

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g.Stones = append(g.Stones, v)

			for _, adj := range v.Neighbors() {
				switch b.cells[adj.index()] {
				case Empty: // Liberty, group is alive
					g.HasLiberties = true
				case color:
					if gs.owner[adj.index()] == 0 {
						gs.owner[adj.index()] = id
						stack = append(stack, adj)
					}
				}
			}
		}
		gs.groups = append(gs.groups, g)
	}
	return gs
}

// All returns every group
func (gs Groups) All() []Group {
	return gs.groups
}

// Containing returns the group holding p, or an Empty colored group if p is unoccupied
func (gs Groups) Containing(p Position) Group {
	id := gs.owner[p.index()]
	if id == 0 {
		return Group{Color: Empty}
	}
	return gs.groups[id-1]
}
