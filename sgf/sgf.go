/*
Package sgf reads the main line of SGF game records.

Only what is needed to replay a game is kept: the board size, the moves of
the main line and the remaining properties as plain text. Variations are
skipped.*/
package sgf

// From the SGF spec:
/*
Collection = GameTree { GameTree }
GameTree   = "(" Sequence { GameTree } ")"
Sequence   = Node { Node }
Node       = ";" { Property }
Property   = PropIdent PropValue { PropValue }
PropIdent  = UcLetter { UcLetter }
PropValue  = "[" CValueType "]"
*/

// Differences from SGF spec:

// The main line is the first variation at every branch point, everything
// after the first closed variation is ignored

// Only the first value of a repeated non-move property is kept

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dodgebc/weiqi-rules/weiqi"
)

// ErrUnsupported means the record uses features the rules engine does not
// play: other board sizes or setup stones (handicap)
var ErrUnsupported = errors.New("unsupported record")

// ErrParse means that a property was not able to be parsed
type ErrParse struct {
	identifier string
	value      string
}

func (e ErrParse) Error() string {
	return fmt.Sprintf("property parse error: %s[%s]", e.identifier, e.value)
}

// Record is the main line of one game tree
type Record struct {
	Size  int
	Moves []weiqi.Move
	Info  map[string]string // other properties, e.g. "PB", "PW", "RE"
}

func newRecord() *Record {
	return &Record{Size: weiqi.BoardSize, Info: make(map[string]string)}
}

var reSize = regexp.MustCompile("^([0-9]{1,2})(?::([0-9]{1,2}))?$")

// Parse reads every game tree of an SGF collection
func Parse(sgfText string) ([]Record, error) {

	var brackOpen, escaped, mainBranch, identDone bool
	var depth int
	var identifier, value strings.Builder
	var rec *Record
	var records []Record

	// Iterative scan (single pass)
	for _, r := range sgfText {

		// Inside a property value
		if brackOpen {
			switch {
			case escaped:
				escaped = false
				value.WriteRune(r)
			case r == '\\':
				escaped = true
			case r == ']':
				brackOpen = false
				identDone = true
				if mainBranch {
					err := rec.addProperty(identifier.String(), value.String())
					if err != nil {
						return nil, err
					}
				}
				value.Reset()
			default:
				if mainBranch {
					value.WriteRune(r)
				}
			}
			continue
		}

		switch {
		case r == '[':
			brackOpen = true
		case r == ']':
			return nil, errors.New("missing open bracket")
		case r == '(':
			if depth == 0 {
				mainBranch = true
				rec = newRecord()
			}
			depth++
		case r == ')':
			if depth == 0 {
				return nil, errors.New("missing open parenthesis")
			}
			depth--
			mainBranch = false // Don't worry about variations
			if depth == 0 {
				records = append(records, *rec)
			}
		case r == ';':
			identifier.Reset()
			identDone = false
		case unicode.IsUpper(r):
			if identDone { // Begin a new identifier
				identifier.Reset()
				identDone = false
			}
			identifier.WriteRune(r)
		}
	}
	if brackOpen {
		return nil, errors.New("missing close bracket")
	}
	if depth > 0 {
		return nil, errors.New("missing close parenthesis")
	}
	return records, nil
}

func (rec *Record) addProperty(identifier, value string) error {
	value = strings.TrimSpace(value)
	switch identifier {
	case "":
		return ErrParse{identifier, value}
	case "SZ":
		size, err := parseSize(value)
		if err != nil {
			return err
		}
		if size != weiqi.BoardSize {
			return fmt.Errorf("%w: board size %s", ErrUnsupported, value)
		}
		rec.Size = size
	case "B", "W":
		m, err := parseMove(identifier, value)
		if err != nil {
			return err
		}
		rec.Moves = append(rec.Moves, m)
	case "AB", "AW", "AE":
		return fmt.Errorf("%w: setup property %s", ErrUnsupported, identifier)
	default:
		if _, ok := rec.Info[identifier]; !ok {
			rec.Info[identifier] = value
		}
	}
	return nil
}

// parseSize accepts "19" and "19:19", non-square boards come back as 0
func parseSize(v string) (int, error) {
	match := reSize.FindStringSubmatch(v)
	if match == nil {
		return 0, ErrParse{"SZ", v}
	}
	cols, _ := strconv.Atoi(match[1])
	if match[2] == "" {
		return cols, nil
	}
	rows, _ := strconv.Atoi(match[2])
	if rows != cols {
		return 0, nil
	}
	return cols, nil
}

// parseMove reads a move value, "" and "tt" are passes
func parseMove(player, v string) (weiqi.Move, error) {
	color := weiqi.Black
	if player == "W" {
		color = weiqi.White
	}
	if (v == "") || (v == "tt") {
		return weiqi.NewMovePass(color), nil
	}
	p, err := weiqi.ParseSGFPoint(v)
	if err != nil {
		return weiqi.Move{}, ErrParse{player, v}
	}
	return weiqi.Move{Color: color, Pos: p}, nil
}
