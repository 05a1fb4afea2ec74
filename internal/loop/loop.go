// Package loop runs a game at a fixed tick rate independent of how often
// frames are rendered.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/game"
)

// Host is the frontend a loop drives: it supplies input and draws frames.
type Host interface {
	// ShouldClose reports that the user closed the window or session.
	ShouldClose() bool
	// Poll returns the input gathered since the previous call.
	Poll() core.InputFrame
	// Render draws one frame.
	Render(s game.Snapshot)
}

// Config holds loop timing.
type Config struct {
	TickRate      int
	MaxFrame      time.Duration
	SleepSlack    time.Duration
	SpinThreshold time.Duration
	Spin          bool
}

// DefaultConfig returns 60 Hz with a 250ms stall clamp.
func DefaultConfig() Config {
	return Config{
		TickRate:      60,
		MaxFrame:      250 * time.Millisecond,
		SleepSlack:    300 * time.Microsecond,
		SpinThreshold: 500 * time.Microsecond,
		Spin:          true,
	}
}

// Stats counts what a loop did.
type Stats struct {
	Frames uint64
	Ticks  uint64
	Late   uint64 // frames that missed their deadline
}

// Loop owns the game for the duration of Run.
type Loop struct {
	game   *game.Game
	clock  core.Clock
	acc    *Accumulator
	pacer  *Pacer
	logger *log.Logger

	pending core.InputFrame // one-shot actions waiting for a tick
	stats   Stats
}

// Option customizes a Loop.
type Option func(*Loop)

// WithLogger sets the loop logger.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) { lp.logger = l }
}

// WithPacer replaces the default pacer, mainly for tests.
func WithPacer(p *Pacer) Option {
	return func(lp *Loop) { lp.pacer = p }
}

// New creates a loop for g.
func New(g *game.Game, clock core.Clock, cfg Config, opts ...Option) *Loop {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}
	step := time.Second / time.Duration(cfg.TickRate)

	l := &Loop{
		game:    g,
		clock:   clock,
		acc:     NewAccumulator(step, cfg.MaxFrame),
		logger:  log.New(io.Discard),
		pending: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.pacer == nil {
		l.pacer = NewPacer(step, clock,
			WithSpin(cfg.Spin),
			WithSlack(cfg.SleepSlack, cfg.SpinThreshold),
		)
	}
	return l
}

// Stats returns counters for the run so far.
func (l *Loop) Stats() Stats { return l.stats }

// Run loops until the host closes, the game quits or ctx is done.
// A frame in progress always completes. Returns ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context, host Host) error {
	last := l.clock.Now()
	l.pacer.Reset()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if host.ShouldClose() || l.game.IsQuit() {
			l.logger.Debug("loop stopped", "frames", l.stats.Frames, "ticks", l.stats.Ticks, "late", l.stats.Late)
			return nil
		}

		now := l.clock.Now()
		frame := now.Sub(last)
		last = now

		l.Frame(frame, host.Poll())
		host.Render(l.game.Snapshot())

		if !l.pacer.Wait() {
			l.stats.Late++
		}
	}
}

// Frame feeds one frame of elapsed time and input to the game. One-shot
// actions reach only the first tick of the frame; held actions reach all.
// When no tick is due the one-shots wait for the next frame that has one.
func (l *Loop) Frame(elapsed time.Duration, in core.InputFrame) int {
	l.stats.Frames++

	for a, on := range in.Actions {
		if on {
			l.pending.Set(a)
		}
	}

	steps := l.acc.Advance(elapsed)
	for i := 0; i < steps; i++ {
		if i == 0 {
			l.game.Update(l.pending)
			l.pending = core.NewInputFrame()
		} else {
			l.game.Update(in.HeldOnly())
		}
		l.stats.Ticks++
		if l.game.IsQuit() {
			break
		}
	}

	// Held keys are resampled every frame, only presses carry over.
	for a := range l.pending.Actions {
		if a.Held() {
			delete(l.pending.Actions, a)
		}
	}
	return steps
}
