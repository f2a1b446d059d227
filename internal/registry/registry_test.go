package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBuiltinThemes(t *testing.T) {
	list := List()
	if len(list) < 3 {
		t.Fatalf("expected at least 3 themes, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	for _, name := range []string{"ascii", "block", "classic"} {
		if !Exists(name) {
			t.Errorf("theme %q should be registered", name)
		}
	}
}

func TestClassicTheme(t *testing.T) {
	th, err := Get(DefaultTheme)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultTheme, err)
	}
	if th.Style.Head != '#' || th.Style.Body != '#' || th.Style.Food != '*' {
		t.Errorf("classic glyphs = %q %q %q", th.Style.Head, th.Style.Body, th.Style.Food)
	}
}

func TestASCIIThemeIsColorless(t *testing.T) {
	th, err := Get("ascii")
	if err != nil {
		t.Fatalf("Get(ascii) failed: %v", err)
	}
	s := th.Style
	for _, c := range []core.Color{s.SnakeColor, s.FoodColor, s.WallColor, s.TextColor} {
		if c != core.ColorDefault {
			t.Errorf("ascii theme should not set colors, got %v", c)
		}
	}
	if s.Wall == 0 {
		t.Error("ascii theme should use a glyph wall")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("neon"); err == nil {
		t.Error("unknown theme should return an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Theme{Name: DefaultTheme})
}
