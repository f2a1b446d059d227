package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type scriptStep struct {
	tick   uint64
	action core.Action
}

// Script is an InputSource that plays back recorded direction requests.
type Script struct {
	steps []scriptStep
	pos   int
}

var _ core.InputSource = (*Script)(nil)

// NewScript validates recorded inputs and builds a script.
// Ticks must be positive and non-decreasing.
func NewScript(inputs []storage.Input) (*Script, error) {
	steps := make([]scriptStep, 0, len(inputs))
	var last uint64
	for i, in := range inputs {
		d, ok := core.ParseDirection(in.Direction)
		if !ok {
			return nil, fmt.Errorf("replay: input %d: unknown direction %q", i, in.Direction)
		}
		if in.Tick == 0 || in.Tick < last {
			return nil, fmt.Errorf("replay: input %d: tick %d out of order", i, in.Tick)
		}
		last = in.Tick
		steps = append(steps, scriptStep{tick: in.Tick, action: core.ActionFor(d)})
	}
	return &Script{steps: steps}, nil
}

// Poll returns the next recorded request for the given tick.
// Requests recorded for earlier ticks are skipped.
func (s *Script) Poll(tick uint64) (core.Action, bool) {
	for s.pos < len(s.steps) && s.steps[s.pos].tick < tick {
		s.pos++
	}
	if s.pos < len(s.steps) && s.steps[s.pos].tick == tick {
		a := s.steps[s.pos].action
		s.pos++
		return a, true
	}
	return core.ActionNone, false
}

// Remaining returns the number of requests not yet played.
func (s *Script) Remaining() int {
	return len(s.steps) - s.pos
}
