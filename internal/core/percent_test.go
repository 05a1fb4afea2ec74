package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNewPercentStoresFraction(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"half", 50, 0.5},
		{"full", 100, 1},
		{"above range is not clamped", 150, 1.5},
		{"below range is not clamped", -20, -0.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPercent(tc.in)
			if math.Abs(p.Fraction()-tc.expected) > epsilon {
				t.Errorf("NewPercent(%v).Fraction() = %v, expected %v", tc.in, p.Fraction(), tc.expected)
			}
		})
	}
}

func TestPercentSaturates(t *testing.T) {
	p := NewPercent(90)
	p.Increase(NewPercent(30))
	if p.Fraction() != 1 {
		t.Errorf("Increase past 100%% should saturate at 1, got %v", p.Fraction())
	}

	p = NewPercent(10)
	p.Decrease(NewPercent(30))
	if p.Fraction() != 0 {
		t.Errorf("Decrease below 0%% should saturate at 0, got %v", p.Fraction())
	}

	// An unclamped constructor value is pulled back into range by the next mutation.
	p = NewPercent(150)
	p.Increase(NewPercent(0))
	if p.Fraction() != 1 {
		t.Errorf("Increase should clamp an out-of-range value, got %v", p.Fraction())
	}
}

func TestPercentStaysInRange(t *testing.T) {
	deltas := []float64{35, -80, 12.5, 200, -3, -400, 99, 0.1, -0.1, 51}

	p := NewPercent(50)
	for i, d := range deltas {
		if d >= 0 {
			p.Increase(NewPercent(d))
		} else {
			p.Decrease(NewPercent(-d))
		}
		if p.Fraction() < 0 || p.Fraction() > 1 {
			t.Fatalf("step %d: fraction %v left [0, 1]", i, p.Fraction())
		}
	}
}

func TestPercentValueAndString(t *testing.T) {
	p := NewPercent(42.5)
	if math.Abs(p.Value()-42.5) > epsilon {
		t.Errorf("Value() = %v, expected 42.5", p.Value())
	}
	if p.String() != "42.5%" {
		t.Errorf("String() = %q, expected %q", p.String(), "42.5%")
	}
	if math.Abs(p.Scale(2).Value()-85) > epsilon {
		t.Errorf("Scale(2).Value() = %v, expected 85", p.Scale(2).Value())
	}
}
