// Command goplay is a text interface for a game on a 19x19 board. Moves are
// read from standard input and the board is printed after each one.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dodgebc/weiqi-rules/game"
	"github.com/dodgebc/weiqi-rules/internal/config"
)

func main() {
	var loadFile, saveFile, envFile string
	flag.StringVar(&loadFile, "load", "", "resume from a saved JSON state")
	flag.StringVar(&saveFile, "save", "", "save the final state as JSON")
	flag.StringVar(&envFile, "env", "", "environment file, otherwise an optional .env in the working directory")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: goplay [-load state.json] [-save state.json]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\n%s", help)
	}
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	g, err := newGame(loadFile, logger)
	if err != nil {
		logger.Fatal("failed to load game", zap.String("file", loadFile), zap.Error(err))
	}
	logger.Info("game started", zap.Stringer("game_id", g.ID))

	if err := play(g, os.Stdin, os.Stdout); err != nil {
		logger.Error("failed to read input", zap.Error(err))
	}

	if saveFile != "" {
		if err := save(g, saveFile); err != nil {
			logger.Fatal("failed to save game", zap.String("file", saveFile), zap.Error(err))
		}
		logger.Info("game saved", zap.String("file", saveFile))
	}
}

func newGame(loadFile string, logger *zap.Logger) (*game.Game, error) {
	if loadFile == "" {
		return game.New(game.WithLogger(logger)), nil
	}
	data, err := os.ReadFile(loadFile)
	if err != nil {
		return nil, err
	}
	return game.Load(data, game.WithLogger(logger))
}

func save(g *game.Game, saveFile string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(saveFile, append(data, '\n'), 0o644)
}
