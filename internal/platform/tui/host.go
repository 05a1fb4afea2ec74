package tui

import (
	"sync/atomic"
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/game"
)

// DefaultHold is how long a movement key stays down after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHold = 200 * time.Millisecond

// Host connects a loop running on its own goroutine to a Bubble Tea program.
// The program sends actions in; the loop renders snapshots out.
type Host struct {
	clock   core.Clock
	hold    time.Duration
	actions chan core.Action
	frames  chan game.Snapshot
	closed  atomic.Bool

	// loop goroutine only
	held map[core.Action]time.Time
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewHost creates a host. A zero hold selects DefaultHold.
func NewHost(clock core.Clock, hold time.Duration) *Host {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Host{
		clock:   clock,
		hold:    hold,
		actions: make(chan core.Action, 64),
		frames:  make(chan game.Snapshot, 1),
		held:    make(map[core.Action]time.Time),
	}
}

// Send queues an action for the next Poll. Actions are dropped when the
// loop falls far behind.
func (h *Host) Send(a core.Action) {
	select {
	case h.actions <- a:
	default:
	}
}

// Close asks the loop to stop.
func (h *Host) Close() { h.closed.Store(true) }

// ShouldClose implements loop.Host.
func (h *Host) ShouldClose() bool { return h.closed.Load() }

// Poll implements loop.Host. Presses become one-shot actions; movement keys
// stay held until the hold window passes without a repeat.
func (h *Host) Poll() core.InputFrame {
	now := h.clock.Now()
	in := core.NewInputFrame()

drain:
	for {
		select {
		case a := <-h.actions:
			if a.Held() {
				h.held[a] = now.Add(h.hold)
				delete(h.held, opposite[a])
				continue
			}
			in.Set(a)
		default:
			break drain
		}
	}

	for a, until := range h.held {
		if now.Before(until) {
			in.Set(a)
		} else {
			delete(h.held, a)
		}
	}
	return in
}

// Render implements loop.Host. Only the newest snapshot is kept, so a slow
// terminal skips frames instead of stalling the simulation.
func (h *Host) Render(s game.Snapshot) {
	select {
	case h.frames <- s:
		return
	default:
	}
	select {
	case <-h.frames:
	default:
	}
	select {
	case h.frames <- s:
	default:
	}
}

// Frames delivers rendered snapshots. It is closed once the loop has stopped.
func (h *Host) Frames() <-chan game.Snapshot { return h.frames }

// finish closes Frames. The loop must not render afterwards.
func (h *Host) finish() { close(h.frames) }
