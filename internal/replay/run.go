package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrMismatch is returned when a re-simulation does not reproduce the
// recorded outcome.
var ErrMismatch = errors.New("replay: outcome mismatch")

// MismatchError describes how a re-simulation diverged.
type MismatchError struct {
	Want storage.Replay
	Got  snake.Snapshot
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("replay: outcome mismatch: recorded score %d (%s) after %d ticks, got %d (%s) after %d",
		e.Want.Score, e.Want.EndReason, e.Want.Ticks,
		e.Got.Score, e.Got.Reason, e.Got.Tick)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// EngineConfig rebuilds engine parameters from a recording.
func EngineConfig(r storage.Replay) snake.Config {
	return snake.Config{
		Height:         r.Height,
		Width:          r.Width,
		InitialLength:  r.InitialLength,
		ScoreIncrement: r.ScoreIncrement,
		FoodMargin:     r.FoodMargin,
		Seed:           r.Seed,
	}
}

// Feed applies every request the source has for the engine's next tick.
// Directions are reported to rec when it is non-nil. Non-direction actions
// are returned in order for the caller to handle.
func Feed(e *snake.Engine, src core.InputSource, rec *Recorder) []core.Action {
	next := e.TickCount() + 1

	var other []core.Action
	for {
		a, ok := src.Poll(next)
		if !ok {
			return other
		}
		if d, isDir := a.Direction(); isDir {
			e.SetDirection(d)
			if rec != nil {
				rec.Record(next, d)
			}
			continue
		}
		other = append(other, a)
	}
}

// Run re-simulates a recording headlessly and checks that it reproduces
// the recorded score, end reason and tick count.
// The final snapshot is returned even on mismatch.
func Run(ctx context.Context, r storage.Replay) (snake.Snapshot, error) {
	e, err := snake.New(EngineConfig(r))
	if err != nil {
		return snake.Snapshot{}, fmt.Errorf("replay: %w", err)
	}
	script, err := NewScript(r.Inputs)
	if err != nil {
		return snake.Snapshot{}, err
	}

	// A diverged game may never end; stop one tick past the recording.
	limit := r.Ticks + 1
	for !e.GameOver() && e.TickCount() < limit {
		if e.TickCount()%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return e.Snapshot(), err
			}
		}
		Feed(e, script, nil)
		e.Tick()
	}

	final := e.Snapshot()
	if !final.GameOver() ||
		final.Score != r.Score ||
		string(final.Reason) != r.EndReason ||
		final.Tick != r.Ticks {
		return final, &MismatchError{Want: r, Got: final}
	}
	return final, nil
}
