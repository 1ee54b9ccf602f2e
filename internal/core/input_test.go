package core

import "testing"

func TestInputFrameOrderAndDedup(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionJump)
	f.Set(ActionPause)
	f.Set(ActionNone)

	got := f.Actions()
	if len(got) != 2 {
		t.Fatalf("expected 2 actions, got %d (%v)", len(got), got)
	}
	if got[0] != ActionPause || got[1] != ActionJump {
		t.Errorf("actions out of order: %v", got)
	}
	if !f.Has(ActionJump) || f.Has(ActionClose) {
		t.Error("Has() reported wrong membership")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear should empty the frame, got %v", f.Actions())
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionJump:  "Jump",
		ActionPause: "Pause",
		ActionStart: "Start",
		ActionClose: "Close",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), want)
		}
	}
}
