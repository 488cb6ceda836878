package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionConfirm)
	f.Set(ActionUp)
	f.Set(ActionNone)

	if !f.Has(ActionConfirm) || !f.Has(ActionUp) {
		t.Errorf("Has = false for a set action")
	}
	if f.Has(ActionNone) || f.Has(ActionPause) {
		t.Errorf("Has = true for an unset action")
	}

	got := f.Actions()
	if len(got) != 2 || got[0] != ActionUp || got[1] != ActionConfirm {
		t.Errorf("Actions() = %v, expected [Up Confirm]", got)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame not empty after Clear")
	}
}

func TestInputFrameCloneCopiesClick(t *testing.T) {
	var f InputFrame
	f.SetClick(3, 4)
	f.Set(ActionRestart)

	c := f.Clone()
	f.Click.X = 99

	if c.Click == nil || c.Click.X != 3 || c.Click.Y != 4 {
		t.Errorf("clone click = %+v, expected {3 4}", c.Click)
	}
	if !c.Has(ActionRestart) {
		t.Error("clone lost its actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionConfirm, "Confirm"},
		{ActionPause, "Pause"},
		{Action(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.SetClick(3, 4)
	f.SetClick(7, 2)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() mismatch")
	}
	if f.Click == nil || *f.Click != (Click{X: 7, Y: 2}) {
		t.Errorf("Click = %+v, expected last press (7, 2)", f.Click)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionLeft) || clone.Click == nil {
		t.Error("Clone() should be independent of Clear()")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set() on zero frame failed")
	}
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
}
