package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/highscore"
)

// PlayCmd runs an interactive session
type PlayCmd struct {
	Config string `kong:"short='c',default='blackjack.hcl',help='Path to config file'"`
	Name   string `kong:"help='Display name (defaults to config, or a prompt)'"`
	Seed   int64  `kong:"help='Deck seed for reproducible rounds (0 = time-based)'"`
	Cheat  bool   `kong:"hidden,help='Debug balance boost'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.Name != "" {
		cfg.Game.PlayerName = c.Name
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}

	// Log to a file so game output on stdout stays clean
	logFile, err := os.OpenFile(cfg.Game.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})

	store := highscore.NewStore(cfg.Highscores.Path,
		highscore.WithLogger(logger.WithPrefix("highscore")))

	var opts []console.SessionOption
	if c.Cheat {
		opts = append(opts, console.WithCheat())
	}

	session := console.NewSession(cfg, store, logger, os.Stdin, os.Stdout, opts...)
	return session.Run()
}
