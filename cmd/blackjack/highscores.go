package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/highscore"
)

// HighscoresCmd prints the persisted highscore list
type HighscoresCmd struct {
	Config string `kong:"short='c',default='blackjack.hcl',help='Path to config file'"`
}

func (c *HighscoresCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	console.RenderHighscores(os.Stdout, highscore.NewStore(cfg.Highscores.Path).Load())
	return nil
}
