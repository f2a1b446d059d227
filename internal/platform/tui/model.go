package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a game Model.
type Options struct {
	Engine   snake.Config
	Style    snake.Style
	Interval time.Duration
	Footer   string // Drawn on the bottom border; empty hides it

	// Input overrides the keyboard. When set, direction keys are ignored
	// and the model only watches, as when playing back a replay.
	Input core.InputSource

	// Recorder receives every direction applied to the engine. May be nil.
	Recorder *replay.Recorder

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string

	Palette Palette
}

// Model is the Bubble Tea model driving one snake game.
// Engine, queue and recorder are shared pointers, so copies of the
// model returned from Update all see the same game.
type Model struct {
	engine   *snake.Engine
	screen   *core.Screen
	queue    *core.ActionQueue
	input    core.InputSource
	watch    bool
	recorder *replay.Recorder

	keys     KeyMap
	help     help.Model
	style    snake.Style
	palette  Palette
	footer   string
	interval time.Duration
	shotDir  string

	termW, termH int // Last known terminal size, 0 when unknown
	paused       bool
	quitting     bool
}

// NewModel creates the engine and a model around it.
// It fails when the board is smaller than the engine allows.
func NewModel(opts Options) (Model, error) {
	engine, err := snake.New(opts.Engine)
	if err != nil {
		return Model{}, err
	}

	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.Palette == nil {
		opts.Palette = NewPalette(nil)
	}
	if opts.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ScreenshotDir = filepath.Join(home, ".snake", "screenshots")
		}
	}

	m := Model{
		engine:   engine,
		screen:   core.NewScreen(opts.Engine.Width, opts.Engine.Height),
		queue:    core.NewActionQueue(),
		recorder: opts.Recorder,
		keys:     DefaultKeyMap(),
		help:     newHelp(opts.Engine.Width - 4),
		style:    opts.Style,
		palette:  opts.Palette,
		footer:   opts.Footer,
		interval: opts.Interval,
		shotDir:  opts.ScreenshotDir,
	}
	m.input = m.queue
	if opts.Input != nil {
		m.input = opts.Input
		m.watch = true
	}
	return m, nil
}

// Engine returns the game engine, for reading the final score after the
// program exits.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Paused reports whether the game is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues input for the next tick. Quit and screenshots act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case m.watch:
		// Replays ignore steering; pause acts on the playback directly.
		if action == core.ActionPause {
			m.paused = !m.paused
		}
	case action != core.ActionNone:
		m.queue.Push(action)
	}

	return m, nil
}

// handleResize records the terminal size. The board keeps the size it
// was created with.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW = msg.Width
	m.termH = msg.Height
	return m, nil
}

// handleTick drains queued input and advances the engine one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.engine.GameOver() {
		return m, tea.Quit
	}

	if m.paused && !m.watch {
		m = m.drainPaused()
	} else if !m.paused {
		for _, a := range replay.Feed(m.engine, m.input, m.recorder) {
			switch a {
			case core.ActionQuit:
				m.quitting = true
				return m, tea.Quit
			case core.ActionPause:
				m.paused = !m.paused
			}
		}
	}
	if m.quitting {
		return m, tea.Quit
	}

	if !m.paused {
		if res := m.engine.Tick(); res.GameOver {
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.interval)
}

// drainPaused consumes keyboard input while paused.
// Only pause and quit are honoured; steering is dropped.
func (m Model) drainPaused() Model {
	for m.queue.Len() > 0 {
		a, _ := m.queue.Poll(m.engine.TickCount() + 1)
		switch a {
		case core.ActionPause:
			m.paused = false
		case core.ActionQuit:
			m.quitting = true
		}
	}
	return m
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	footer := m.footer
	if m.paused {
		footer = m.help.View(m.keys)
	}
	snake.Render(m.screen, m.engine.Snapshot(), m.style, snake.Overlay{
		Footer: footer,
		Paused: m.paused,
	})
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", errors.New("tui: no screenshot directory")
	}
	m.render()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.termW > 0 && (m.termW < m.screen.Width() || m.termH < m.screen.Height()) {
		return snake.TooSmallMessage
	}

	m.render()
	return RenderScreen(m.screen, m.palette)
}

// Run starts the Bubble Tea program and blocks until the game ends, the
// player quits or ctx is cancelled. Cancellation is not an error.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
