package main

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dodgebc/weiqi-rules/game"
	"github.com/dodgebc/weiqi-rules/sgf"
	"github.com/dodgebc/weiqi-rules/weiqi"
)

// report is one line of the output file
type report struct {
	ID      uuid.UUID         `json:"id"`
	Source  string            `json:"source"`
	Info    map[string]string `json:"info,omitempty"`
	Moves   int               `json:"moves"`
	Played  int               `json:"played"`
	Illegal *illegalMove      `json:"illegal,omitempty"`
	Final   weiqi.Serialized  `json:"final"`
}

// illegalMove is the first move the rules refused, replay stops there
type illegalMove struct {
	Number int    `json:"number"`
	Move   string `json:"move"`
	Reason string `json:"reason"`
}

// replay plays a record through a fresh game
func replay(name string, rec sgf.Record, logger *zap.Logger) report {
	g := game.New(game.WithLogger(logger.With(zap.String("source", name))))
	r := report{ID: g.ID, Source: name, Info: rec.Info, Moves: len(rec.Moves)}

	for i, m := range rec.Moves {
		res, err := g.Play(m)
		if err == nil && res.Legal {
			continue
		}
		if err == nil {
			err = res.Reason
		}
		r.Illegal = &illegalMove{Number: i + 1, Move: m.String(), Reason: err.Error()}
		break
	}

	r.Played = len(g.Moves())
	r.Final = g.State().ToSerializable()
	return r
}

// processor parses sources, replays the admitted games and sends their reports as JSON lines
func processor(done <-chan struct{}, in <-chan source, out chan<- []byte, c *checker, logger *zap.Logger) error {
	for s := range in {
		records, err := sgf.Parse(string(s.data))
		if err != nil {
			c.addFailed(1)
			logger.Warn("skipped file", zap.String("source", s.name), zap.Error(err))
			continue
		}

		for _, rec := range records {
			if err := c.admit(rec.Moves); err != nil {
				logger.Debug("skipped game", zap.String("source", s.name), zap.Error(err))
				continue
			}
			r := replay(s.name, rec, logger)
			c.record(r)
			if r.Illegal != nil {
				logger.Info("illegal game",
					zap.String("source", s.name),
					zap.Int("move_number", r.Illegal.Number),
					zap.String("reason", r.Illegal.Reason),
				)
			}

			b, err := json.Marshal(r)
			if err != nil {
				return err
			}
			select {
			case out <- b:
			case <-done:
				return nil
			}
		}
	}
	return nil
}
