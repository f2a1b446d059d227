package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagReplayLimit int
	flagWatch       bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Display the most recent recorded games, newest first.

Examples:
  snake replays
  snake replays --limit 50`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded game",
	Long: `Re-simulate a recorded game from its seed and inputs and check that it
reaches the recorded score. With --watch, play it back in the terminal at
its original speed (P pauses, Q quits).

Examples:
  snake replay 12
  snake replay 12 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var replayRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded game",
	Long: `Remove a recorded game and its inputs from the replay database.

Examples:
  snake replay rm 12`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayRm,
}

func init() {
	replayCmd.AddCommand(replayRmCmd)
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of replays to show")
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the replay back in the terminal")
	replayCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme name (see 'snake themes')")
}

func openStore() (config.Config, *storage.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("error opening replay database: %w", err)
	}
	return cfg, store, nil
}

func runReplays(_ *cobra.Command, _ []string) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	replays, err := store.RecentReplays(flagReplayLimit)
	if err != nil {
		return fmt.Errorf("error retrieving replays: %w", err)
	}

	fmt.Println("Recorded games")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to record one!")
		return nil
	}

	// Calculate column widths
	maxSourceLen := len("Player")
	for _, r := range replays {
		maxSourceLen = max(maxSourceLen, len(r.Source))
	}

	fmt.Printf("  %-5s  %-*s  %-6s  %-7s  %-10s  %s\n", "ID", maxSourceLen, "Player", "Score", "Board", "End", "Date")
	fmt.Printf("  %-5s  %-*s  %-6s  %-7s  %-10s  %s\n", "--", maxSourceLen, "------", "-----", "-----", "---", "----")

	for _, r := range replays {
		board := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Printf("  %-5d  %-*s  %-6d  %-7s  %-10s  %s\n",
			r.ID, maxSourceLen, r.Source, r.Score, board, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'snake replay <id>' to verify a game, 'snake replay rm <id>' to delete one.")
	return nil
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := parseReplayID(args[0])
	if err != nil {
		return err
	}

	cfg, store, err := openStore()
	if err != nil {
		return err
	}
	r, err := store.Replay(id)
	store.Close()
	if err != nil {
		return fmt.Errorf("error retrieving replay: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no replay with id %d (run 'snake replays')", id)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagWatch {
		return watchReplay(ctx, cfg, *r)
	}

	final, err := replay.Run(ctx, *r)
	var mismatch *replay.MismatchError
	switch {
	case errors.As(err, &mismatch):
		fmt.Printf("Replay %d FAILED verification\n", id)
		return &exitError{msg: err.Error(), code: 2}
	case err != nil:
		return err
	}

	fmt.Printf("Replay %d verified: score %d, %s after %d ticks (%d inputs)\n",
		id, final.Score, final.Reason, final.Tick, len(r.Inputs))
	return nil
}

func parseReplayID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid replay id %q", arg)
	}
	return id, nil
}

func runReplayRm(_ *cobra.Command, args []string) error {
	id, err := parseReplayID(args[0])
	if err != nil {
		return err
	}

	_, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := removeReplay(store, id); err != nil {
		return err
	}
	fmt.Printf("Replay %d deleted\n", id)
	return nil
}

// removeReplay deletes a replay, failing when the id is unknown.
func removeReplay(store *storage.Store, id int64) error {
	r, err := store.Replay(id)
	if err != nil {
		return fmt.Errorf("error retrieving replay: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no replay with id %d (run 'snake replays')", id)
	}
	if err := store.DeleteReplay(id); err != nil {
		return fmt.Errorf("error deleting replay: %w", err)
	}
	return nil
}

// watchReplay plays a recording back in the TUI.
func watchReplay(ctx context.Context, cfg config.Config, r storage.Replay) error {
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}
	if err := checkTheme(cfg.Display.Theme); err != nil {
		return err
	}
	theme, err := registry.Get(cfg.Display.Theme)
	if err != nil {
		return err
	}

	// The board size is fixed by the recording.
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (w < r.Width || h < r.Height) {
		return &exitError{
			msg:  fmt.Sprintf("Terminal window too small for this replay. Please resize to at least %dx%d.", r.Width, r.Height),
			code: 1,
		}
	}

	script, err := replay.NewScript(r.Inputs)
	if err != nil {
		return err
	}

	interval := cfg.TickInterval()
	if r.TickMS > 0 {
		interval = time.Duration(r.TickMS) * time.Millisecond
	}

	m, err := tui.NewModel(tui.Options{
		Engine:   replay.EngineConfig(r),
		Style:    theme.Style,
		Interval: interval,
		Footer:   fmt.Sprintf("Replay #%d", r.ID),
		Input:    script,
	})
	if err != nil {
		return err
	}

	if _, err := tui.Run(ctx, m); err != nil {
		return fmt.Errorf("error running replay: %w", err)
	}

	if left := script.Remaining(); left > 0 {
		logger.Debug("playback stopped early", "unplayed_inputs", left)
	}
	fmt.Println(snake.GameOverLine(m.Engine().Score()))
	return nil
}
