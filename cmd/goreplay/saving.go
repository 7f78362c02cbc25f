package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// saver writes one report per line
func saver(in <-chan []byte, w io.Writer, p *progress) error {
	for b := range in {
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("output file write error: %w", err)
		}
		p.update(1)
	}
	return nil
}

// run replays every input and writes the reports to w.
// A single loader feeds the processors, a single saver drains them.
// The first failure cancels the rest.
func run(inputs []string, w io.Writer, workers int, c *checker, p *progress, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(context.Background())
	in := make(chan source)
	out := make(chan []byte)

	g.Go(func() error {
		defer close(in)
		return loader(ctx.Done(), inputs, in)
	})

	g.Go(func() error {
		defer close(out)
		var processors errgroup.Group
		for i := 0; i < workers; i++ {
			processors.Go(func() error {
				return processor(ctx.Done(), in, out, c, logger)
			})
		}
		return processors.Wait()
	})

	g.Go(func() error {
		return saver(out, w, p)
	})

	return g.Wait()
}
