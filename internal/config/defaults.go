package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Snake: SnakeConfig{
			InitialLength:  snake.DefaultInitialLength,
			ScoreIncrement: snake.DefaultScoreIncrement,
		},
		Food: FoodConfig{
			Margin: snake.DefaultFoodMargin,
		},
		Timing: TimingConfig{
			TickMS: 100,
		},
		Display: DisplayConfig{
			Theme:            "classic",
			ShowInstructions: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/snake.db",
			Record: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
