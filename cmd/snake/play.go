package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagTick     int
	flagTheme    string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game that fills the terminal.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

The terminal must be at least 20 columns by 10 rows.

Examples:
  snake play
  snake play --seed 42
  snake play --theme ascii --tick 150
  snake play --config ./my-snake.yaml --no-record`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds (0 = from config)")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Theme name (see 'snake themes')")
	cmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save a replay of this game")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTick > 0 {
		cfg.Timing.TickMS = flagTick
	}
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}
	if flagNoRecord {
		cfg.Storage.Record = false
	}

	if err := checkTheme(cfg.Display.Theme); err != nil {
		return err
	}
	theme, err := registry.Get(cfg.Display.Theme)
	if err != nil {
		return err
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("cannot determine terminal size: %w", err)
	}
	if err := checkTerminal(width, height); err != nil {
		logger.Debug("terminal rejected", "width", width, "height", height)
		return err
	}

	rt := cfg.Runtime(width, height, flagSeed).ResolveSeed()

	game, err := tui.NewGame(cfg, theme, rt, "local", nil)
	if err != nil {
		return err
	}
	logger.Debug("starting game", "width", width, "height", height, "seed", rt.Seed, "theme", theme.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := tui.Run(ctx, game.Model); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	// The alt screen is gone; interrupted games end the same way as lost ones.
	fmt.Println(snake.GameOverLine(game.Model.Engine().Score()))
	fmt.Println(snake.ThanksMessage)

	if cfg.Storage.Record {
		saveReplay(cfg.Storage.DBPath, game)
	}
	return nil
}

// checkTerminal rejects terminals that cannot hold the smallest board,
// before any engine is built.
func checkTerminal(width, height int) error {
	if width < snake.MinWidth || height < snake.MinHeight {
		return &exitError{msg: snake.TooSmallMessage, code: 1}
	}
	return nil
}

// checkTheme fails early on a theme name nobody registered.
func checkTheme(name string) error {
	if !registry.Exists(name) {
		return fmt.Errorf("unknown theme %q (run 'snake themes' to list them)", name)
	}
	return nil
}

// saveReplay stores a finished game. Failures are logged, not fatal.
func saveReplay(dbPath string, game *tui.Game) {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		return
	}
	defer store.Close()

	id, err := game.Save(store)
	switch {
	case errors.Is(err, replay.ErrNotFinished):
		logger.Debug("game abandoned, replay not saved")
	case err != nil:
		logger.Warn("could not save replay", "error", err)
	default:
		logger.Info("replay saved", "id", id, "inputs", game.Recorder.Len())
	}
}
