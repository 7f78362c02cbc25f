// Command goreplay replays SGF game records through the rules engine and
// writes one JSON report per game to a .jsonl.gz file.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/build/pargzip"

	"github.com/dodgebc/weiqi-rules/internal/config"
)

func main() {
	var a arguments
	if err := a.parse(flag.CommandLine, os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if err := a.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(a.envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	logger, err := config.NewLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	workers := a.workers
	if workers == 0 {
		workers = cfg.Workers
	}
	if err := a.confirmOverwrite(os.Stdin, os.Stdout); err != nil {
		logger.Fatal("refusing to write output", zap.Error(err))
	}

	// Open .jsonl output file stream
	fout, err := os.Create(a.outFile)
	if err != nil {
		logger.Fatal("failed to create output file", zap.Error(err))
	}

	// Compress output file stream
	gzipWriter := pargzip.NewWriter(fout)
	gzipWriter.Parallel = workers

	c := newChecker(a.minLength, a.deduplicate)
	p := newProgress(os.Stderr, "goreplay")
	err = run(a.inputs, gzipWriter, workers, c, p, logger)
	p.close()
	if cerr := gzipWriter.Close(); err == nil {
		err = cerr
	}
	if cerr := fout.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}

	logger.Info("replay finished",
		zap.String("out", a.outFile),
		zap.Int("games", c.numGames),
		zap.Int("illegal", c.numIllegal),
		zap.Int("failed", c.numFailed),
		zap.Int("short", c.numShort),
		zap.Int("duplicate", c.numDuplicate),
	)
}
