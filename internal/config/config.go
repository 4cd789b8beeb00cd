// Package config loads game configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is where the config file is looked for when no path is given
const DefaultPath = "blackjack.hcl"

// Config represents the complete game configuration. Blocks are pointers so
// a file may omit them entirely; Load fills the gaps with defaults.
type Config struct {
	Game       *GameSettings      `hcl:"game,block"`
	Highscores *HighscoreSettings `hcl:"highscores,block"`
}

// GameSettings contains session-level configuration
type GameSettings struct {
	StartingBalance int    `hcl:"starting_balance,optional"`
	Seed            int64  `hcl:"seed,optional"`
	PlayerName      string `hcl:"player_name,optional"`
	LogFile         string `hcl:"log_file,optional"`
}

// HighscoreSettings configures highscore persistence
type HighscoreSettings struct {
	Path string `hcl:"path,optional"`
}

// Default returns the default game configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			StartingBalance: 100,
			LogFile:         "blackjack.log",
		},
		Highscores: &HighscoreSettings{
			Path: "highscores.json",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error: defaults are returned so the game runs with zero setup.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Game == nil {
		config.Game = &GameSettings{}
	}
	if config.Game.StartingBalance == 0 {
		config.Game.StartingBalance = 100
	}
	if config.Game.LogFile == "" {
		config.Game.LogFile = "blackjack.log"
	}
	if config.Highscores == nil {
		config.Highscores = &HighscoreSettings{}
	}
	if config.Highscores.Path == "" {
		config.Highscores.Path = "highscores.json"
	}

	return &config, nil
}
