package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(90 * time.Second)
	if got := c.Now().Sub(start); got != 90*time.Second {
		t.Errorf("after Advance, elapsed = %v, expected 90s", got)
	}

	later := start.Add(time.Hour)
	c.Set(later)
	if !c.Now().Equal(later) {
		t.Errorf("after Set, Now() = %v, expected %v", c.Now(), later)
	}
}

func TestSystemClockMovesForward(t *testing.T) {
	var c Clock = SystemClock{}
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("system clock went backwards: %v then %v", a, b)
	}
}
