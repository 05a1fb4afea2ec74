package dog

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/core"
)

// Gauge identifies one of the dog's needs.
type Gauge int

const (
	GaugeFood Gauge = iota
	GaugeWater
	GaugeBladderComfort
	GaugeDigestionComfort
	GaugeSocialBattery
	GaugeEnergy
	GaugeHealth

	gaugeCount
)

var gaugeNames = [gaugeCount]string{
	"food", "water", "bladder_comfort", "digestion_comfort", "social_battery", "energy", "health",
}

// Gauges lists every gauge in display order.
func Gauges() []Gauge {
	gs := make([]Gauge, 0, gaugeCount)
	for g := range gaugeCount {
		gs = append(gs, g)
	}
	return gs
}

func (g Gauge) String() string {
	if g < 0 || g >= gaugeCount {
		return "unknown"
	}
	return gaugeNames[g]
}

// ParseGauge converts a config name such as "social_battery" to a Gauge.
func ParseGauge(s string) (Gauge, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range gaugeNames {
		if n == s {
			return Gauge(i), nil
		}
	}
	return 0, fmt.Errorf("dog: unknown gauge %q", s)
}

// Needs holds one Percent per gauge.
type Needs [gaugeCount]core.Percent

// DefaultNeeds returns the starting levels: 50% everywhere except full health.
func DefaultNeeds() Needs {
	var n Needs
	for g := range gaugeCount {
		n[g] = core.NewPercent(50)
	}
	n[GaugeHealth] = core.NewPercent(100)
	return n
}

// Mean returns the average fill of all gauges in [0, 1].
func (n Needs) Mean() float64 {
	var sum float64
	for _, p := range n {
		sum += p.Fraction()
	}
	return sum / float64(len(n))
}

// DrainRate means "lose Percent of the gauge's range every Every".
type DrainRate struct {
	Percent core.Percent
	Every   time.Duration
}

// NewDrainRate builds a rate from a 0-100 percent and an interval.
func NewDrainRate(percent float64, every time.Duration) DrainRate {
	return DrainRate{Percent: core.NewPercent(percent), Every: every}
}

// Amount returns how much drains over elapsed, interpolated linearly.
func (r DrainRate) Amount(elapsed time.Duration) core.Percent {
	if r.Every <= 0 || elapsed <= 0 {
		return core.Percent{}
	}
	return r.Percent.Scale(elapsed.Seconds() / r.Every.Seconds())
}

// DefaultDrains returns the active drains: food and water only.
func DefaultDrains() map[Gauge]DrainRate {
	return map[Gauge]DrainRate{
		GaugeFood:  NewDrainRate(10, time.Hour),
		GaugeWater: NewDrainRate(12, time.Hour),
	}
}
