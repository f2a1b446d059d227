package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, w, k
	ActionDown         // Down arrow, s, j
	ActionLeft         // Left arrow, a, h
	ActionRight        // Right arrow, d, l
	ActionPause        // P, Escape - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// ActionFor returns the directional action that requests d.
func ActionFor(d Direction) Action {
	switch d {
	case DirUp:
		return ActionUp
	case DirDown:
		return ActionDown
	case DirLeft:
		return ActionLeft
	default:
		return ActionRight
	}
}

// InputSource supplies pending actions to the driving loop.
// Poll must not block: it returns false when nothing is pending.
// tick is the 1-based number of the simulation tick about to run.
type InputSource interface {
	Poll(tick uint64) (Action, bool)
}

// ActionQueue is a FIFO InputSource fed by live keyboard events.
// It is not safe for concurrent use; the Bubble Tea update loop is its only writer.
type ActionQueue struct {
	pending []Action
}

// NewActionQueue creates an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Push appends an action. ActionNone is dropped.
func (q *ActionQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Poll pops the oldest pending action.
func (q *ActionQueue) Poll(uint64) (Action, bool) {
	if len(q.pending) == 0 {
		return ActionNone, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Len returns the number of pending actions.
func (q *ActionQueue) Len() int {
	return len(q.pending)
}
