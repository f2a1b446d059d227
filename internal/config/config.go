// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config contains all tunable settings.
type Config struct {
	Snake   SnakeConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// SnakeConfig defines snake parameters.
type SnakeConfig struct {
	InitialLength  int `yaml:"initial_length"`
	ScoreIncrement int `yaml:"score_increment"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Margin int `yaml:"margin"` // Minimum distance from the board edge
}

// TimingConfig defines the game speed.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	Theme            string `yaml:"theme"`
	ShowInstructions bool   `yaml:"show_instructions"`
}

// StorageConfig defines where replays are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Record bool   `yaml:"record"`
}

// TickInterval returns the tick period as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Runtime builds per-run settings for a screen of the given size.
func (c Config) Runtime(width, height int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: c.TickInterval(),
		Seed:         seed,
	}
}

// EngineConfig builds engine parameters for an H x W board.
func (c Config) EngineConfig(height, width int, seed int64) snake.Config {
	return snake.Config{
		Height:         height,
		Width:          width,
		InitialLength:  c.Snake.InitialLength,
		ScoreIncrement: c.Snake.ScoreIncrement,
		FoodMargin:     c.Food.Margin,
		Seed:           seed,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Snake.InitialLength <= 0 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be positive, got %d", c.Snake.InitialLength))
	}
	if c.Snake.ScoreIncrement <= 0 {
		errs = append(errs, fmt.Errorf("snake.score_increment must be positive, got %d", c.Snake.ScoreIncrement))
	}
	if c.Food.Margin <= 0 {
		errs = append(errs, fmt.Errorf("food.margin must be positive, got %d", c.Food.Margin))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Display.Theme == "" {
		errs = append(errs, errors.New("display.theme must not be empty"))
	}
	if c.Storage.Record && c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path is required when recording"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
