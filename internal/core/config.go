package core

import "time"

// RuntimeConfig contains the per-run settings the platform passes to a game.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay, 0 = pick one
}

// ResolveSeed returns c with a time-based seed if none was set.
func (c RuntimeConfig) ResolveSeed() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
