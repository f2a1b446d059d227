package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionPause, DirRight, false},
		{ActionQuit, DirRight, false},
		{ActionNone, DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %v, expected %v", dir, tc.dir)
			}
			if ok && ActionFor(dir) != tc.action {
				t.Errorf("ActionFor(%v) = %v, expected %v", dir, ActionFor(dir), tc.action)
			}
		})
	}
}

func TestActionQueueFIFO(t *testing.T) {
	q := NewActionQueue()

	if _, ok := q.Poll(0); ok {
		t.Fatal("Poll on empty queue should report nothing pending")
	}

	q.Push(ActionUp)
	q.Push(ActionNone) // dropped
	q.Push(ActionLeft)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	a, ok := q.Poll(0)
	if !ok || a != ActionUp {
		t.Errorf("first Poll = %v, %v; expected Up", a, ok)
	}
	a, ok = q.Poll(0)
	if !ok || a != ActionLeft {
		t.Errorf("second Poll = %v, %v; expected Left", a, ok)
	}
	if _, ok := q.Poll(0); ok {
		t.Error("queue should be drained")
	}
}
