package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionConfirm)
	f.Set(ActionRight)

	if !f.Has(ActionRight) || !f.Has(ActionConfirm) {
		t.Error("Has() missing actions")
	}
	if f.Has(ActionHint) {
		t.Error("Has(ActionHint) = true")
	}
	want := []Action{ActionRight, ActionConfirm, ActionRight}
	if len(f.Order) != len(want) {
		t.Fatalf("Order = %v, expected %v", f.Order, want)
	}
	for i := range want {
		if f.Order[i] != want[i] {
			t.Errorf("Order[%d] = %v, expected %v", i, f.Order[i], want[i])
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := FrameOf(ActionUp, ActionHint)
	c := f.Clone()

	f.Clear()
	if !f.Empty() || len(f.Order) != 0 {
		t.Error("Clear() left actions behind")
	}
	if !c.Has(ActionUp) || len(c.Order) != 2 {
		t.Error("Clone() shares state with the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) || !zero.Empty() {
		t.Error("zero frame should be empty")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set() on zero frame failed")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
		ok     bool
	}{
		{ActionUp, 0, 1, true},
		{ActionDown, 0, -1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionConfirm, 0, 0, false},
	}
	for _, tc := range tests {
		dx, dy, ok := tc.action.Direction()
		if dx != tc.dx || dy != tc.dy || ok != tc.ok {
			t.Errorf("%v.Direction() = (%d, %d, %v), expected (%d, %d, %v)", tc.action, dx, dy, ok, tc.dx, tc.dy, tc.ok)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionHint.String() != "Hint" {
		t.Errorf("ActionHint.String() = %q", ActionHint.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(999).String())
	}
}
