package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// User-facing messages.
const (
	Title            = "SNAKE GAME"
	ThanksMessage    = "Thanks for playing!"
	TooSmallMessage  = "Terminal window too small. Please resize to at least 20x10."
	InstructionsText = "Use arrow keys to move, 'q' to quit"
)

// ScoreLine is the status text drawn on the top border.
func ScoreLine(score int) string {
	return fmt.Sprintf("%s - Score: %d", Title, score)
}

// GameOverLine is printed after the game ends.
func GameOverLine(score int) string {
	return fmt.Sprintf("Game Over! Final Score: %d", score)
}

// Style selects glyphs and colors for rendering.
type Style struct {
	Head rune
	Body rune
	Food rune
	Wall rune // 0 draws a box-drawing border

	SnakeColor core.Color
	FoodColor  core.Color
	WallColor  core.Color
	TextColor  core.Color
}

// DefaultStyle mirrors the classic curses look: '#' snake, '*' food.
func DefaultStyle() Style {
	return Style{
		Head:       '#',
		Body:       '#',
		Food:       '*',
		SnakeColor: core.ColorGreen,
		FoodColor:  core.ColorRed,
		WallColor:  core.ColorBlue,
		TextColor:  core.ColorYellow,
	}
}

// Overlay carries driving-loop state that the engine does not own.
type Overlay struct {
	Footer string // Drawn on the bottom border when it fits
	Paused bool
}

// Render draws a snapshot into dst with the board's top-left at (0, 0).
func Render(dst *core.Screen, snap Snapshot, style Style, ov Overlay) {
	dst.Clear()

	board := core.NewRect(0, 0, snap.Width, snap.Height)
	if style.Wall == 0 {
		dst.DrawBox(board, style.WallColor)
	} else {
		dst.DrawFrame(board, style.Wall, style.WallColor)
	}

	dst.SetPos(snap.Food, style.Food, style.FoodColor)

	// Body first so the head wins if anything overlaps.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		glyph := style.Body
		if i == 0 {
			glyph = style.Head
		}
		dst.SetPos(snap.Snake[i], glyph, style.SnakeColor)
	}

	dst.DrawText(2, 0, ScoreLine(snap.Score), style.TextColor)

	if ov.Footer != "" && len([]rune(ov.Footer))+4 <= snap.Width {
		dst.DrawText(2, snap.Height-1, ov.Footer, style.TextColor)
	}

	if ov.Paused && !snap.GameOver() {
		dst.DrawTextCentered(snap.Height/2, " PAUSED ", style.TextColor)
	}
}
