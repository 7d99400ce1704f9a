package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionLeft)
	f.Push(ActionNone)
	f.Push(ActionUp)
	f.Push(ActionLeft)
	f.Pick(7)

	expected := []Action{ActionLeft, ActionUp, ActionLeft}
	if len(f.Actions) != len(expected) {
		t.Fatalf("Actions = %v, expected %v", f.Actions, expected)
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionUp) || f.Has(ActionShuffle) {
		t.Error("Has() returned wrong result")
	}
	if len(f.Picks) != 1 || f.Picks[0] != 7 {
		t.Errorf("Picks = %v, expected [7]", f.Picks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionLeft: true, ActionRight: true, ActionDown: true, ActionUp: true,
		ActionNone: false, ActionShuffle: false, ActionFlip: false, ActionQuit: false,
	}
	for a, expected := range moves {
		if a.IsMove() != expected {
			t.Errorf("%v.IsMove() = %v, expected %v", a, a.IsMove(), expected)
		}
	}
}
