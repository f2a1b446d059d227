package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderInitialFrame(t *testing.T) {
	e, err := New(Config{Height: 12, Width: 40, Seed: 444})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	snap := e.Snapshot()

	screen := core.NewScreen(40, 12)
	Render(screen, snap, DefaultStyle(), Overlay{})

	if !strings.Contains(screen.Row(0), "SNAKE GAME - Score: 0") {
		t.Errorf("top border should carry the score line, got %q", screen.Row(0))
	}
	if screen.Get(2, 0) != 'S' {
		t.Errorf("score line should start at column 2, got %q", screen.Get(2, 0))
	}

	for _, seg := range snap.Snake {
		cell := screen.GetCell(seg.Col, seg.Row)
		if cell.Rune != '#' || cell.Color != core.ColorGreen {
			t.Errorf("segment %v rendered as %+v", seg, cell)
		}
	}

	food := screen.GetCell(snap.Food.Col, snap.Food.Row)
	if food.Rune != '*' || food.Color != core.ColorRed {
		t.Errorf("food rendered as %+v", food)
	}

	if screen.Get(0, 5) != '│' || screen.Get(39, 5) != '│' {
		t.Error("side walls should be drawn")
	}
	if screen.Get(0, 11) != '└' {
		t.Error("bottom-left corner should be drawn")
	}
}

func TestRenderScoreUpdates(t *testing.T) {
	e, err := New(Config{Height: 10, Width: 40, Seed: 1})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	e.food = e.Snapshot().Head().Step(core.DirRight)
	e.Tick()

	screen := core.NewScreen(40, 10)
	Render(screen, e.Snapshot(), DefaultStyle(), Overlay{})

	if !strings.Contains(screen.Row(0), ScoreLine(1)) {
		t.Errorf("expected %q on top border, got %q", ScoreLine(1), screen.Row(0))
	}
}

func TestRenderCustomStyle(t *testing.T) {
	e, err := New(Config{Height: 10, Width: 30})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	snap := e.Snapshot()

	style := Style{Head: '@', Body: 'o', Food: '%', Wall: '+'}
	screen := core.NewScreen(30, 10)
	Render(screen, snap, style, Overlay{})

	head := snap.Head()
	if screen.Get(head.Col, head.Row) != '@' {
		t.Errorf("head glyph = %q, expected '@'", screen.Get(head.Col, head.Row))
	}
	tail := snap.Snake[len(snap.Snake)-1]
	if screen.Get(tail.Col, tail.Row) != 'o' {
		t.Errorf("body glyph = %q, expected 'o'", screen.Get(tail.Col, tail.Row))
	}
	if screen.Get(0, 5) != '+' || screen.Get(29, 9) != '+' {
		t.Error("custom wall glyph should be used")
	}
}

func TestRenderFooterAndPause(t *testing.T) {
	e, err := New(Config{Height: 10, Width: 50})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	screen := core.NewScreen(50, 10)
	Render(screen, e.Snapshot(), DefaultStyle(), Overlay{Footer: InstructionsText, Paused: true})

	if !strings.Contains(screen.Row(9), InstructionsText) {
		t.Errorf("bottom border should carry the footer, got %q", screen.Row(9))
	}
	if !strings.Contains(screen.Row(5), "PAUSED") {
		t.Errorf("paused overlay missing, row 5 = %q", screen.Row(5))
	}

	// Footer that does not fit is skipped.
	narrow, err := New(Config{Height: 10, Width: 20})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	small := core.NewScreen(20, 10)
	Render(small, narrow.Snapshot(), DefaultStyle(), Overlay{Footer: InstructionsText})
	if strings.Contains(small.Row(9), "arrow") {
		t.Error("footer wider than the board should not be drawn")
	}
}

func TestMessages(t *testing.T) {
	if got := ScoreLine(7); got != "SNAKE GAME - Score: 7" {
		t.Errorf("ScoreLine(7) = %q", got)
	}
	if got := GameOverLine(3); got != "Game Over! Final Score: 3" {
		t.Errorf("GameOverLine(3) = %q", got)
	}
}
