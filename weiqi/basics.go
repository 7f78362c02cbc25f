package weiqi

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the fixed width and height of the board
const BoardSize = 19

// NumCells is the number of intersections on the board
const NumCells = BoardSize * BoardSize

// Stone is the color occupying an intersection
type Stone int8

// Stone colors, Empty doubles as the current player marker once the game is over
const (
	Empty Stone = 0
	Black Stone = 1
	White Stone = -1
)

// Opponent returns the other color (Empty stays Empty)
func (s Stone) Opponent() Stone {
	return -s
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	case Empty:
		return "empty"
	}
	return "?"
}

// ParseStone is the inverse of Stone.String
func ParseStone(s string) (Stone, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	case "empty":
		return Empty, nil
	}
	return Empty, fmt.Errorf("invalid stone: %q", s)
}

// Position is an intersection, Col and Row are in [0, BoardSize)
type Position struct {
	Col, Row int
}

// OnBoard checks if the position is inside the board
func (p Position) OnBoard() bool {
	return (p.Col >= 0) && (p.Col < BoardSize) && (p.Row >= 0) && (p.Row < BoardSize)
}

func (p Position) index() int {
	return p.Row*BoardSize + p.Col
}

func positionAt(i int) Position {
	return Position{Col: i % BoardSize, Row: i / BoardSize}
}

// Neighbors returns the 4-adjacent positions that are on the board.
// The edge of the board is never a neighbor.
func (p Position) Neighbors() []Position {
	adj := make([]Position, 0, 4)
	if p.Row-1 >= 0 {
		adj = append(adj, Position{p.Col, p.Row - 1})
	}
	if p.Row+1 < BoardSize {
		adj = append(adj, Position{p.Col, p.Row + 1})
	}
	if p.Col-1 >= 0 {
		adj = append(adj, Position{p.Col - 1, p.Row})
	}
	if p.Col+1 < BoardSize {
		adj = append(adj, Position{p.Col + 1, p.Row})
	}
	return adj
}

// String formats the position as the "col,row" key used in serialized states
func (p Position) String() string {
	return strconv.Itoa(p.Col) + "," + strconv.Itoa(p.Row)
}

// ParsePosition parses a "col,row" key, rejecting positions off the board
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position: %q", s)
	}
	col, err1 := strconv.Atoi(parts[0])
	row, err2 := strconv.Atoi(parts[1])
	if (err1 != nil) || (err2 != nil) {
		return Position{}, fmt.Errorf("invalid position: %q", s)
	}
	p := Position{Col: col, Row: row}
	if !p.OnBoard() {
		return Position{}, fmt.Errorf("position %q: %w", s, ErrOutsideBoard)
	}
	return p, nil
}

// Move stores the color and intersection of a move
type Move struct {
	Color Stone
	Pos   Position
	Pass  bool
}

// NewMove creates a Move with coordinates
func NewMove(color Stone, col, row int) Move {
	return Move{Color: color, Pos: Position{Col: col, Row: row}}
}

// NewMovePass creates a pass Move
func NewMovePass(color Stone) Move {
	return Move{Color: color, Pass: true}
}

// ParseMove parses an SGF-style string like "Bpd" (column letter first, pass is "W")
func ParseMove(moveString string) (Move, error) {

	// Check length of string
	pass := false
	switch len(moveString) {
	case 1:
		pass = true
	case 3:
	default:
		return Move{}, fmt.Errorf("invalid move string: %q", moveString)
	}

	// Parse color
	var color Stone
	switch moveString[0] {
	case 'B':
		color = Black
	case 'W':
		color = White
	default:
		return Move{}, fmt.Errorf("invalid color in move: %q", moveString)
	}

	if pass {
		return NewMovePass(color), nil
	}
	p, err := ParseSGFPoint(moveString[1:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid coordinates in move: %q", moveString)
	}
	return Move{Color: color, Pos: p}, nil
}

func (m Move) String() string {
	s := "?"
	switch m.Color {
	case Black:
		s = "B"
	case White:
		s = "W"
	}
	if m.Pass {
		return s
	}
	return s + SGFPoint(m.Pos)
}

// ParseSGFPoint parses a two letter SGF point ("pd" is column 15, row 3)
func ParseSGFPoint(point string) (Position, error) {
	if len(point) != 2 {
		return Position{}, fmt.Errorf("invalid point: %q", point)
	}
	col, err1 := letterToCoordinate(point[0])
	row, err2 := letterToCoordinate(point[1])
	if (err1 != nil) || (err2 != nil) {
		return Position{}, fmt.Errorf("invalid point: %q", point)
	}
	return Position{Col: col, Row: row}, nil
}

// SGFPoint formats a position as two SGF letters, "??" if it is off the board
func SGFPoint(p Position) string {
	if !p.OnBoard() {
		return "??"
	}
	return string([]byte{coordinateToLetter(p.Col), coordinateToLetter(p.Row)})
}

func letterToCoordinate(letter byte) (int, error) {
	if (letter >= 'a') && (letter < 'a'+BoardSize) {
		return int(letter - 'a'), nil
	}
	return 0, fmt.Errorf("invalid letter: %q", letter)
}

func coordinateToLetter(coordinate int) byte {
	return byte(coordinate) + 'a'
}
