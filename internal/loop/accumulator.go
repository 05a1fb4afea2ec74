package loop

import "time"

// Accumulator converts variable frame times into whole fixed steps.
type Accumulator struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

// NewAccumulator creates an accumulator for the given step. Frame times above
// maxFrame are clamped so a stall does not cause a burst of catch-up ticks.
// A non-positive maxFrame disables clamping.
func NewAccumulator(step, maxFrame time.Duration) *Accumulator {
	if step <= 0 {
		step = time.Second / 60
	}
	return &Accumulator{step: step, maxFrame: maxFrame}
}

// Step returns the fixed step.
func (a *Accumulator) Step() time.Duration { return a.step }

// Advance adds one frame's elapsed time and returns how many steps are due.
// The unconsumed remainder carries into the next call.
func (a *Accumulator) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	if a.maxFrame > 0 && frame > a.maxFrame {
		frame = a.maxFrame
	}
	a.acc += frame

	steps := int(a.acc / a.step)
	a.acc -= time.Duration(steps) * a.step
	return steps
}

// Remainder returns the time not yet consumed by a whole step.
func (a *Accumulator) Remainder() time.Duration { return a.acc }

// Alpha returns the remainder as a fraction of a step, for interpolation.
func (a *Accumulator) Alpha() float64 {
	return float64(a.acc) / float64(a.step)
}

// Reset drops any accumulated time.
func (a *Accumulator) Reset() { a.acc = 0 }
