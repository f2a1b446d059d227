package core

import "testing"

func TestResolveSeed(t *testing.T) {
	fixed := RuntimeConfig{Seed: 42}.ResolveSeed()
	if fixed.Seed != 42 {
		t.Errorf("explicit seed changed to %d", fixed.Seed)
	}

	picked := RuntimeConfig{ScreenW: 80, ScreenH: 24}.ResolveSeed()
	if picked.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if picked.ScreenW != 80 || picked.ScreenH != 24 {
		t.Error("other fields should be kept")
	}
}
