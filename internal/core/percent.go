package core

import "fmt"

// Percent is a gauge value stored as a fraction of its full range.
//
// NewPercent does not clamp, so NewPercent(150) holds 1.5. Increase and
// Decrease always leave the value inside [0, 1].
type Percent struct {
	frac float64
}

// NewPercent builds a Percent from a value on the 0-100 scale.
func NewPercent(value float64) Percent {
	return Percent{frac: value / 100.0}
}

// Increase adds d and saturates at 100%.
func (p *Percent) Increase(d Percent) {
	p.frac = ClampF(p.frac+d.frac, 0, 1)
}

// Decrease subtracts d and saturates at 0%.
func (p *Percent) Decrease(d Percent) {
	p.frac = ClampF(p.frac-d.frac, 0, 1)
}

// Fraction returns the value in [0, 1].
func (p Percent) Fraction() float64 {
	return p.frac
}

// Value returns the value on the 0-100 scale.
func (p Percent) Value() float64 {
	return p.frac * 100.0
}

// Scale returns p multiplied by f, unclamped.
func (p Percent) Scale(f float64) Percent {
	return Percent{frac: p.frac * f}
}

// String formats the percent with one decimal, e.g. "42.5%".
func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p.Value())
}
