package tui

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Game bundles a model with what is needed to record it.
type Game struct {
	Model    Model
	Recorder *replay.Recorder // nil when recording is off
	Session  replay.Session
}

// NewGame builds a game filling the runtime screen from the loaded
// configuration. A zero seed is replaced with a time-based one.
func NewGame(cfg config.Config, theme registry.Theme, rt core.RuntimeConfig, source string, palette Palette) (*Game, error) {
	rt = rt.ResolveSeed()
	engineCfg := cfg.EngineConfig(rt.ScreenH, rt.ScreenW, rt.Seed)

	var rec *replay.Recorder
	if cfg.Storage.Record {
		rec = replay.NewRecorder()
	}

	footer := ""
	if cfg.Display.ShowInstructions {
		footer = snake.InstructionsText
	}

	m, err := NewModel(Options{
		Engine:   engineCfg,
		Style:    theme.Style,
		Interval: rt.TickInterval,
		Footer:   footer,
		Recorder: rec,
		Palette:  palette,
	})
	if err != nil {
		return nil, err
	}

	return &Game{
		Model:    m,
		Recorder: rec,
		Session: replay.Session{
			Source: source,
			Engine: engineCfg,
			TickMS: cfg.Timing.TickMS,
		},
	}, nil
}

// Save stores the finished game. It returns replay.ErrNotFinished when the
// player quit early and 0 without error when recording is off.
func (g *Game) Save(s replay.Saver) (int64, error) {
	if g.Recorder == nil || s == nil {
		return 0, nil
	}
	return g.Recorder.Save(s, g.Session, g.Model.Engine().Snapshot())
}
