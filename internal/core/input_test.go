package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRotateRight, "RotateRight"},
		{ActionHardDrop, "HardDrop"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}

func TestActionDrops(t *testing.T) {
	if !ActionUp.Drops() || !ActionHardDrop.Drops() {
		t.Error("Up and HardDrop should drop the piece")
	}
	if ActionDown.Drops() || ActionLeft.Drops() {
		t.Error("Down and Left should not drop the piece")
	}
}
