// Package snake implements the snake game engine: a synchronous,
// single-threaded state machine that advances one cell per tick.
// It performs no I/O and never blocks; the platform drives it.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board and gameplay defaults.
const (
	MinHeight             = 10
	MinWidth              = 20
	DefaultInitialLength  = 3
	DefaultScoreIncrement = 1
	DefaultFoodMargin     = 2
)

// foodAttemptsFactor bounds rejection sampling to this many tries per cell
// of the food area before falling back to a full scan.
const foodAttemptsFactor = 4

// Config holds construction parameters for an Engine.
// Zero values for the optional fields select the defaults above.
type Config struct {
	Height         int
	Width          int
	InitialLength  int
	ScoreIncrement int
	FoodMargin     int
	Seed           int64
}

// Engine owns all game state. It is not safe for concurrent use.
type Engine struct {
	height    int
	width     int
	increment int
	margin    int
	rng       *rand.Rand

	tick  uint64
	score int

	body      []core.Position // Head at index 0
	direction core.Direction  // Direction of the last move
	nextDir   core.Direction  // Pending direction applied on the next tick
	food      core.Position

	over   bool
	reason EndReason
	frozen TickResult
}

// New creates an engine for an H x W board.
// It fails with a *BoardTooSmallError when the board is below MinHeight x MinWidth.
func New(cfg Config) (*Engine, error) {
	if cfg.Height < MinHeight || cfg.Width < MinWidth {
		return nil, &BoardTooSmallError{
			RequiredHeight: MinHeight,
			RequiredWidth:  MinWidth,
			Height:         cfg.Height,
			Width:          cfg.Width,
		}
	}

	if cfg.InitialLength <= 0 {
		cfg.InitialLength = DefaultInitialLength
	}
	if cfg.ScoreIncrement <= 0 {
		cfg.ScoreIncrement = DefaultScoreIncrement
	}
	if cfg.FoodMargin <= 0 {
		cfg.FoodMargin = DefaultFoodMargin
	}

	e := &Engine{
		height:    cfg.Height,
		width:     cfg.Width,
		increment: cfg.ScoreIncrement,
		// The food area must keep at least one row and column.
		margin: core.Min(cfg.FoodMargin, (core.Min(cfg.Height, cfg.Width)-1)/2),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	e.initSnake(cfg.InitialLength)
	e.food = core.Position{Row: cfg.Height / 2, Col: cfg.Width / 2}

	return e, nil
}

// initSnake lays the body out horizontally, head at (H/2, W/4), tail to the left.
func (e *Engine) initSnake(length int) {
	head := core.Position{Row: e.height / 2, Col: e.width / 4}
	// Keep the tail off the left wall.
	length = core.Clamp(length, 1, head.Col)

	e.body = make([]core.Position, length)
	for i := range e.body {
		e.body[i] = head.Add(0, -i)
	}
	e.direction = core.DirRight
	e.nextDir = core.DirRight
}

// SetDirection requests a direction change for the next tick.
// A request for the exact reverse of the current direction is ignored.
func (e *Engine) SetDirection(d core.Direction) {
	if d == e.direction.Reverse() {
		return
	}
	e.nextDir = d
}

// Tick advances the game by one step and returns the resulting frame.
// Once the game is over, Tick returns the same frozen result forever.
func (e *Engine) Tick() TickResult {
	if e.over {
		return e.frozen
	}

	e.tick++
	e.direction = e.nextDir
	newHead := e.body[0].Step(e.direction)

	// Collision is checked against the pre-move body, tail included.
	if !e.interior().ContainsPos(newHead) {
		return e.end(EndWall)
	}
	if e.occupies(newHead) {
		return e.end(EndSelf)
	}

	e.body = append([]core.Position{newHead}, e.body...)

	if newHead == e.food {
		e.score += e.increment
		if !e.spawnFood() {
			return e.end(EndBoardFull)
		}
	} else {
		e.body = e.body[:len(e.body)-1]
	}

	return e.result()
}

// end freezes the game and returns the terminal result.
func (e *Engine) end(reason EndReason) TickResult {
	e.over = true
	e.reason = reason
	e.frozen = e.result()
	return e.frozen
}

func (e *Engine) result() TickResult {
	return TickResult{
		Tick:     e.tick,
		GameOver: e.over,
		Reason:   e.reason,
		Score:    e.score,
		Snake:    e.segments(),
		Food:     e.food,
	}
}

// interior is the area inside the walls.
func (e *Engine) interior() core.Rect {
	return core.NewRect(0, 0, e.width, e.height).Inset(1)
}

// foodArea is the area where food may spawn.
func (e *Engine) foodArea() core.Rect {
	return core.NewRect(0, 0, e.width, e.height).Inset(e.margin)
}

// spawnFood places food on a random free cell of the food area.
// It rejection-samples first and falls back to scanning for free cells,
// so it terminates whenever a free cell exists. Returns false if none does.
func (e *Engine) spawnFood() bool {
	area := e.foodArea()
	if area.Area() == 0 {
		return false
	}

	for range area.Area() * foodAttemptsFactor {
		p := core.Position{
			Row: area.Y + e.rng.Intn(area.H),
			Col: area.X + e.rng.Intn(area.W),
		}
		if !e.occupies(p) {
			e.food = p
			return true
		}
	}

	var free []core.Position
	for row := area.Y; row < area.Bottom(); row++ {
		for col := area.X; col < area.Right(); col++ {
			p := core.Position{Row: row, Col: col}
			if !e.occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	e.food = free[e.rng.Intn(len(free))]
	return true
}

// occupies checks if the snake occupies the given position.
func (e *Engine) occupies(p core.Position) bool {
	for _, seg := range e.body {
		if seg == p {
			return true
		}
	}
	return false
}

func (e *Engine) segments() []core.Position {
	out := make([]core.Position, len(e.body))
	copy(out, e.body)
	return out
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// TickCount returns the number of ticks applied so far.
func (e *Engine) TickCount() uint64 {
	return e.tick
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.over
}
