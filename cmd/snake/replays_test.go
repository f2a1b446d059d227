package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestParseReplayID(t *testing.T) {
	if id, err := parseReplayID("12"); err != nil || id != 12 {
		t.Errorf("parseReplayID(\"12\") = %d, %v", id, err)
	}
	for _, arg := range []string{"", "abc", "0", "-3"} {
		if _, err := parseReplayID(arg); err == nil {
			t.Errorf("parseReplayID(%q) should fail", arg)
		}
	}
}

func TestRemoveReplay(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveReplay(storage.Replay{
		Seed:      7,
		Height:    10,
		Width:     20,
		Score:     2,
		EndReason: "wall",
		Ticks:     30,
		Inputs:    []storage.Input{{Tick: 4, Direction: "down"}},
	})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := removeReplay(store, id); err != nil {
		t.Fatalf("removeReplay() failed: %v", err)
	}
	r, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if r != nil {
		t.Error("replay should be gone after removeReplay")
	}

	if err := removeReplay(store, id); err == nil {
		t.Error("removing an unknown replay should fail")
	}
}
