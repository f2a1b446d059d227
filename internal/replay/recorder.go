// Package replay records games as seed plus direction requests and
// re-simulates them deterministically.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrNotFinished is returned when saving a game that has not ended.
var ErrNotFinished = errors.New("replay: game not finished")

// Saver persists replays. *storage.Store implements it.
type Saver interface {
	SaveReplay(r storage.Replay) (int64, error)
}

// Session describes how a recorded game was set up.
type Session struct {
	Source string
	Engine snake.Config
	TickMS int
}

// Recorder collects direction requests for a game in progress.
type Recorder struct {
	inputs []storage.Input
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record notes a direction request applied before the given tick.
func (r *Recorder) Record(tick uint64, d core.Direction) {
	r.inputs = append(r.inputs, storage.Input{Tick: tick, Direction: d.String()})
}

// Len returns the number of recorded requests.
func (r *Recorder) Len() int {
	return len(r.inputs)
}

// Build assembles the storage record for a finished game.
func (r *Recorder) Build(sess Session, final snake.Snapshot) storage.Replay {
	inputs := make([]storage.Input, len(r.inputs))
	copy(inputs, r.inputs)

	return storage.Replay{
		Source:         sess.Source,
		Seed:           sess.Engine.Seed,
		Height:         sess.Engine.Height,
		Width:          sess.Engine.Width,
		TickMS:         sess.TickMS,
		InitialLength:  sess.Engine.InitialLength,
		ScoreIncrement: sess.Engine.ScoreIncrement,
		FoodMargin:     sess.Engine.FoodMargin,
		Score:          final.Score,
		EndReason:      string(final.Reason),
		Ticks:          final.Tick,
		Inputs:         inputs,
	}
}

// Save stores a finished game. Games abandoned before the end cannot be
// re-simulated to the same outcome, so they are rejected.
func (r *Recorder) Save(s Saver, sess Session, final snake.Snapshot) (int64, error) {
	if !final.GameOver() {
		return 0, ErrNotFinished
	}
	id, err := s.SaveReplay(r.Build(sess, final))
	if err != nil {
		return 0, fmt.Errorf("replay: %w", err)
	}
	return id, nil
}
