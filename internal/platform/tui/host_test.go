package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/game"
)

var t0 = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func TestHostPressesAreOneShot(t *testing.T) {
	clock := core.NewManualClock(t0)
	h := NewHost(clock, 0)

	h.Send(core.ActionFeed)
	h.Send(core.ActionPause)

	in := h.Poll()
	if !in.Has(core.ActionFeed) || !in.Has(core.ActionPause) {
		t.Fatalf("expected feed and pause in first poll, got %v", in.Actions)
	}
	if in = h.Poll(); len(in.Actions) != 0 {
		t.Errorf("presses leaked into the next poll: %v", in.Actions)
	}
}

func TestHostHoldsMovement(t *testing.T) {
	clock := core.NewManualClock(t0)
	h := NewHost(clock, 200*time.Millisecond)

	h.Send(core.ActionRight)
	if in := h.Poll(); !in.Has(core.ActionRight) {
		t.Fatal("expected right held after press")
	}

	clock.Advance(150 * time.Millisecond)
	if in := h.Poll(); !in.Has(core.ActionRight) {
		t.Error("expected right still held inside the window")
	}

	// auto-repeat extends the window
	h.Send(core.ActionRight)
	h.Poll()
	clock.Advance(150 * time.Millisecond)
	if in := h.Poll(); !in.Has(core.ActionRight) {
		t.Error("expected repeat to extend the hold")
	}

	clock.Advance(100 * time.Millisecond)
	if in := h.Poll(); in.Has(core.ActionRight) {
		t.Error("expected release after the window")
	}
}

func TestHostOppositeCancels(t *testing.T) {
	clock := core.NewManualClock(t0)
	h := NewHost(clock, time.Second)

	h.Send(core.ActionLeft)
	h.Send(core.ActionUp)
	h.Poll()

	h.Send(core.ActionRight)
	in := h.Poll()
	if in.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !in.Has(core.ActionRight) || !in.Has(core.ActionUp) {
		t.Errorf("expected right and up held, got %v", in.Actions)
	}
}

func TestHostRenderKeepsNewest(t *testing.T) {
	h := NewHost(core.NewManualClock(t0), 0)

	h.Render(game.Snapshot{Tick: 1})
	h.Render(game.Snapshot{Tick: 2})
	h.Render(game.Snapshot{Tick: 3})

	s := <-h.Frames()
	if s.Tick != 3 {
		t.Errorf("expected newest snapshot, got tick %d", s.Tick)
	}
	select {
	case s := <-h.Frames():
		t.Errorf("unexpected extra snapshot %d", s.Tick)
	default:
	}
}

func TestHostCloseAndFinish(t *testing.T) {
	h := NewHost(nil, 0)
	if h.ShouldClose() {
		t.Fatal("new host should not be closed")
	}
	h.Close()
	if !h.ShouldClose() {
		t.Error("expected ShouldClose after Close")
	}

	h.finish()
	if _, ok := <-h.Frames(); ok {
		t.Error("expected frames closed after finish")
	}
}

func TestHostDropsWhenFull(t *testing.T) {
	h := NewHost(core.NewManualClock(t0), 0)
	for range 200 {
		h.Send(core.ActionFeed)
	}
	if in := h.Poll(); !in.Has(core.ActionFeed) {
		t.Error("expected feed after flood")
	}
}
