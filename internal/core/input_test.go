package core

import (
	"math"
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionLeft)
	if !f.Has(ActionPause) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameHeldOnly(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionConfirm)
	f.Set(ActionRight)

	held := f.HeldOnly()
	if held.Has(ActionPause) || held.Has(ActionConfirm) {
		t.Error("HeldOnly should drop one-shot actions")
	}
	if !held.Has(ActionRight) {
		t.Error("HeldOnly should keep movement actions")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Vec2
	}{
		{"none", nil, Vec2{}},
		{"left", []Action{ActionLeft}, Vec2{X: -1}},
		{"down", []Action{ActionDown}, Vec2{Y: 1}},
		{"opposing cancel", []Action{ActionLeft, ActionRight}, Vec2{}},
		{"diagonal normalized", []Action{ActionRight, ActionUp}, Vec2{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			got := f.Direction()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionFeed.String() != "Feed" {
		t.Errorf("ActionFeed.String() = %q", ActionFeed.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
