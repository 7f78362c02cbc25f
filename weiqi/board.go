package weiqi

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BoardStore maps occupied positions to stone colors.
// It is a value type: Set and Remove return a modified copy and never
// touch the receiver, so any earlier store stays valid as a snapshot.
// Positions are not bounds checked, callers keep them on the board.
type BoardStore struct {
	cells [NumCells]Stone
	count int
}

// Has checks if a stone occupies the position
func (b BoardStore) Has(p Position) bool {
	return b.cells[p.index()] != Empty
}

// Get retrieves the stone at a position, ok is false if the position is empty
func (b BoardStore) Get(p Position) (Stone, bool) {
	s := b.cells[p.index()]
	return s, s != Empty
}

// Set returns a store with the stone placed at p (Empty removes it).
// s must be Black, White or Empty.
func (b BoardStore) Set(p Position, s Stone) BoardStore {
	if (s < White) || (s > Black) {
		panic(fmt.Sprintf("invalid stone %d at %s", s, p))
	}
	i := p.index()
	switch {
	case (b.cells[i] == Empty) && (s != Empty):
		b.count++
	case (b.cells[i] != Empty) && (s == Empty):
		b.count--
	}
	b.cells[i] = s
	return b
}

// Remove returns a store with the position emptied
func (b BoardStore) Remove(p Position) BoardStore {
	return b.Set(p, Empty)
}

// Size is the number of occupied positions
func (b BoardStore) Size() int {
	return b.count
}

// All iterates over occupied positions in row-major order
func (b BoardStore) All() iter.Seq2[Position, Stone] {
	return func(yield func(Position, Stone) bool) {
		for i, s := range b.cells {
			if s == Empty {
				continue
			}
			if !yield(positionAt(i), s) {
				return
			}
		}
	}
}

// Hash is a deterministic hash of the board contents.
// The board is written row-major as one ternary symbol per cell, so equal
// boards hash equally no matter how they were reached.
func (b BoardStore) Hash() uint64 {
	var buf [NumCells]byte
	for i, s := range b.cells {
		buf[i] = byte(s + 1)
	}
	return xxhash.Sum64(buf[:])
}

// star points drawn on empty intersections
var hoshi = [...]int{3, 9, 15}

func isHoshi(p Position) bool {
	onLine := func(c int) bool {
		for _, h := range hoshi {
			if c == h {
				return true
			}
		}
		return false
	}
	return onLine(p.Col) && onLine(p.Row)
}

// String draws the board with SGF letters along the edges
func (b BoardStore) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteByte(coordinateToLetter(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(coordinateToLetter(row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			p := Position{Col: col, Row: row}
			switch b.cells[p.index()] {
			case Black:
				sb.WriteString("X ")
			case White:
				sb.WriteString("O ")
			default:
				if isHoshi(p) {
					sb.WriteString("+ ")
				} else {
					sb.WriteString(". ")
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
