package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Engine.Height == 0 {
		opts.Engine = snake.Config{Height: 10, Width: 20, Seed: 1}
	}
	if opts.Style == (snake.Style{}) {
		opts.Style = snake.DefaultStyle()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	opts.Palette = NewPalette(lipgloss.NewRenderer(io.Discard))

	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelBoardTooSmall(t *testing.T) {
	_, err := NewModel(Options{Engine: snake.Config{Height: 9, Width: 20}})
	if err == nil {
		t.Fatal("expected an error for a 20x9 board")
	}
}

func TestModelKeyAppliesOnTick(t *testing.T) {
	rec := replay.NewRecorder()
	m := newTestModel(t, Options{Recorder: rec})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Engine().TickCount() != 0 {
		t.Fatal("keys must not advance the engine")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil || isQuit(cmd) {
		t.Fatal("tick should schedule the next tick")
	}

	snap := m.Engine().Snapshot()
	if snap.Direction != core.DirUp {
		t.Errorf("direction = %v, expected up", snap.Direction)
	}
	if snap.Head() != (core.Position{Row: 4, Col: 5}) {
		t.Errorf("head = %v, expected (4,5)", snap.Head())
	}
	if rec.Len() != 1 {
		t.Errorf("recorder should hold 1 input, got %d", rec.Len())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if !m.Paused() {
		t.Fatal("p should pause on the next tick")
	}
	if m.Engine().TickCount() != 0 {
		t.Errorf("pausing tick should not advance, tick = %d", m.Engine().TickCount())
	}

	// Steering while paused is dropped.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})
	if m.Engine().TickCount() != 0 {
		t.Error("engine should not tick while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the overlay")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if m.Paused() {
		t.Fatal("second p should resume")
	}
	if m.Engine().TickCount() != 1 {
		t.Errorf("resume tick should advance, tick = %d", m.Engine().TickCount())
	}
	if m.Engine().Snapshot().Direction != core.DirRight {
		t.Error("direction pressed while paused should be ignored")
	}
}

func TestModelGameOverQuits(t *testing.T) {
	m := newTestModel(t, Options{})

	// Head starts at column 5 moving right; the wall is column 19.
	var cmd tea.Cmd
	for range 14 {
		m, cmd = update(t, m, TickMsg{})
	}
	if !m.Engine().GameOver() {
		t.Fatalf("expected game over, tick = %d", m.Engine().TickCount())
	}
	if !isQuit(cmd) {
		t.Error("game over should quit the program")
	}
	if m.Engine().Snapshot().Reason != snake.EndWall {
		t.Errorf("reason = %s, expected wall", m.Engine().Snapshot().Reason)
	}
}

func TestModelWatchIgnoresSteering(t *testing.T) {
	script, err := replay.NewScript([]storage.Input{{Tick: 2, Direction: "down"}})
	if err != nil {
		t.Fatalf("NewScript() failed: %v", err)
	}
	m := newTestModel(t, Options{Input: script})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{})
	if d := m.Engine().Snapshot().Direction; d != core.DirRight {
		t.Errorf("tick 1 direction = %v, expected right", d)
	}

	m, _ = update(t, m, TickMsg{})
	if d := m.Engine().Snapshot().Direction; d != core.DirDown {
		t.Errorf("tick 2 direction = %v, expected down from the script", d)
	}

	// Pause acts at once during playback.
	m, _ = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Error("p should pause playback immediately")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 15, Height: 8})
	if m.View() != snake.TooSmallMessage {
		t.Errorf("View() = %q, expected the resize message", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(m.View(), "SNAKE GAME") {
		t.Error("board should be drawn once the terminal is large enough")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir, Footer: snake.InstructionsText})

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "SNAKE GAME") {
		t.Errorf("first line = %q", lines[0])
	}

	// The key binding goes through Update.
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	matches, _ := filepath.Glob(filepath.Join(dir, "snake_*.txt"))
	if len(matches) == 0 {
		t.Error("ctrl+s should write a screenshot")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.Set(2, 1, 'c')

	out := RenderScreen(s, NewPalette(lipgloss.NewRenderer(io.Discard)))
	if out != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", out, s.String())
	}
}

func TestRunCancelledContext(t *testing.T) {
	m := newTestModel(t, Options{Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	final, err := Run(ctx, m, tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
	if err != nil {
		t.Fatalf("Run() with a cancelled context = %v, expected nil", err)
	}
	if final.Engine() != m.Engine() {
		t.Error("Run should return a model sharing the same engine")
	}
	if final.Engine().Score() != 0 || final.Engine().TickCount() != 0 {
		t.Errorf("engine advanced: score %d, ticks %d", final.Engine().Score(), final.Engine().TickCount())
	}
	if final.Engine().GameOver() {
		t.Error("an interrupted game should not be over")
	}
}
