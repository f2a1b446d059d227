package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the engine lifecycle state.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// EndReason records why a game ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndWall      EndReason = "wall"
	EndSelf      EndReason = "self"
	EndBoardFull EndReason = "board_full"
)

// TickResult is a complete frame description returned by Tick.
type TickResult struct {
	Tick     uint64
	GameOver bool
	Reason   EndReason
	Score    int
	Snake    []core.Position // Head at index 0
	Food     core.Position
}

// Snapshot captures the complete game state for rendering, replay
// verification and determinism tests. Slices are copies.
type Snapshot struct {
	Height    int
	Width     int
	Tick      uint64
	Score     int
	State     State
	Reason    EndReason
	Direction core.Direction
	Snake     []core.Position
	Food      core.Position
}

// Head returns the head segment.
func (s Snapshot) Head() core.Position {
	if len(s.Snake) == 0 {
		return core.Position{}
	}
	return s.Snake[0]
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot returns a read-only copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	state := StateRunning
	if e.over {
		state = StateGameOver
	}
	return Snapshot{
		Height:    e.height,
		Width:     e.width,
		Tick:      e.tick,
		Score:     e.score,
		State:     state,
		Reason:    e.reason,
		Direction: e.direction,
		Snake:     e.segments(),
		Food:      e.food,
	}
}
