package main

import (
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/dodgebc/weiqi-rules/weiqi"
)

var (
	errShort     = errors.New("too short")
	errDuplicate = errors.New("duplicate")
)

// checker decides which games get replayed and keeps the counts for the summary
type checker struct {

	// configuration
	minLength   int
	deduplicate bool

	// counters
	numGames     int
	numFailed    int
	numShort     int
	numDuplicate int
	numIllegal   int

	seen map[uint64]bool
	mux  sync.Mutex
}

func newChecker(minLength int, deduplicate bool) *checker {
	c := &checker{minLength: minLength, deduplicate: deduplicate}
	if deduplicate {
		c.seen = make(map[uint64]bool)
	}
	return c
}

// admit returns nil when the game should be replayed
func (c *checker) admit(moves []weiqi.Move) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	if len(moves) < c.minLength {
		c.numShort++
		return errShort
	}
	if c.deduplicate {
		sum := movesHash(moves)
		if c.seen[sum] {
			c.numDuplicate++
			return errDuplicate
		}
		c.seen[sum] = true
	}
	return nil
}

// record counts a replayed game
func (c *checker) record(r report) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.numGames++
	if r.Illegal != nil {
		c.numIllegal++
	}
}

// addFailed counts files or archive entries that could not be parsed
func (c *checker) addFailed(n int) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.numFailed += n
}

func movesHash(moves []weiqi.Move) uint64 {
	d := xxhash.New()
	for _, m := range moves {
		d.WriteString(m.String())
		d.Write([]byte{';'})
	}
	return d.Sum64()
}
