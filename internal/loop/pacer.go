package loop

import (
	"runtime"
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/core"
)

// Pacer holds a loop to one iteration per step. It sleeps for most of the
// time left before the next deadline and spins for the rest.
type Pacer struct {
	clock     core.Clock
	sleep     func(time.Duration)
	step      time.Duration
	slack     time.Duration // left for spinning after a sleep
	threshold time.Duration // shorter waits are spun entirely
	spin      bool

	next time.Time
}

// PacerOption customizes a Pacer.
type PacerOption func(*Pacer)

// WithSleep replaces time.Sleep.
func WithSleep(sleep func(time.Duration)) PacerOption {
	return func(p *Pacer) { p.sleep = sleep }
}

// WithSpin enables or disables the spin phase. Without it the pacer sleeps
// the whole remaining time, trading precision for an idle CPU.
func WithSpin(spin bool) PacerOption {
	return func(p *Pacer) { p.spin = spin }
}

// WithSlack sets how long before the deadline sleeping stops and at which
// remaining time sleeping starts at all.
func WithSlack(slack, threshold time.Duration) PacerOption {
	return func(p *Pacer) {
		p.slack = slack
		p.threshold = threshold
	}
}

// NewPacer creates a pacer whose first deadline is one step from now.
func NewPacer(step time.Duration, clock core.Clock, opts ...PacerOption) *Pacer {
	p := &Pacer{
		clock:     clock,
		sleep:     time.Sleep,
		step:      step,
		slack:     300 * time.Microsecond,
		threshold: 500 * time.Microsecond,
		spin:      true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Reset()
	return p
}

// Reset restarts the schedule from the current time.
func (p *Pacer) Reset() {
	p.next = p.clock.Now()
}

// Next returns the deadline the last Wait aimed for.
func (p *Pacer) Next() time.Time { return p.next }

// Wait blocks until the next deadline. When the deadline already passed the
// schedule restarts from now instead of trying to catch up, and Wait
// returns false.
func (p *Pacer) Wait() bool {
	p.next = p.next.Add(p.step)

	now := p.clock.Now()
	if !now.Before(p.next) {
		p.next = now
		return false
	}

	remaining := p.next.Sub(now)
	if !p.spin {
		p.sleep(remaining)
		return true
	}

	if remaining > p.threshold {
		p.sleep(remaining - p.slack)
	}
	for p.clock.Now().Before(p.next) {
		runtime.Gosched()
	}
	return true
}
