// Package config provides YAML and TOML configuration loading for the
// game: timing, the dog, its needs, food and animation strips.
package config

import (
	"fmt"
	"time"
)

// Config is the complete game configuration.
type Config struct {
	Difficulty string           `yaml:"difficulty" toml:"difficulty"`
	Window     WindowConfig     `yaml:"window" toml:"window"`
	Loop       LoopConfig       `yaml:"loop" toml:"loop"`
	Splash     SplashConfig     `yaml:"splash" toml:"splash"`
	Calendar   CalendarConfig   `yaml:"calendar" toml:"calendar"`
	Dog        DogConfig        `yaml:"dog" toml:"dog"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Needs      NeedsConfig      `yaml:"needs" toml:"needs"`
	Feeding    FeedingConfig    `yaml:"feeding" toml:"feeding"`
	Animations AnimationsConfig `yaml:"animations" toml:"animations"`
	Storage    StorageConfig    `yaml:"storage" toml:"storage"`
}

// WindowConfig defines the native window.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// LoopConfig defines the fixed-step loop timing.
type LoopConfig struct {
	TickRate      int      `yaml:"tick_rate" toml:"tick_rate"`           // Ticks per second
	MaxFrame      Duration `yaml:"max_frame" toml:"max_frame"`           // Longest frame fed to the simulation
	SleepSlack    Duration `yaml:"sleep_slack" toml:"sleep_slack"`       // Time left for spinning after a sleep
	SpinThreshold Duration `yaml:"spin_threshold" toml:"spin_threshold"` // Shorter waits are spun, not slept
	Spin          bool     `yaml:"spin" toml:"spin"`
}

// SplashConfig defines the title card.
type SplashConfig struct {
	Duration Duration `yaml:"duration" toml:"duration"`
}

// CalendarConfig maps play time onto in-game days.
type CalendarConfig struct {
	Epoch             string  `yaml:"epoch" toml:"epoch"` // YYYY-MM-DD
	RealMinutesPerDay float64 `yaml:"real_minutes_per_day" toml:"real_minutes_per_day"`
}

// DogConfig defines the dog and the area it walks in.
type DogConfig struct {
	Name        string  `yaml:"name" toml:"name"`
	Breed       string  `yaml:"breed" toml:"breed"`
	Gender      string  `yaml:"gender" toml:"gender"`
	Speed       float64 `yaml:"speed" toml:"speed"` // World units per second
	WorldWidth  float64 `yaml:"world_width" toml:"world_width"`
	WorldHeight float64 `yaml:"world_height" toml:"world_height"`
}

// PlayerConfig defines the owner.
type PlayerConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Gender string `yaml:"gender" toml:"gender"`
}

// NeedsConfig defines starting gauge levels and how they deplete.
type NeedsConfig struct {
	Initial map[string]float64 `yaml:"initial" toml:"initial"` // Gauge name -> 0..100
	Drains  []DrainConfig      `yaml:"drains" toml:"drains"`
}

// DrainConfig is "gauge loses percent every interval".
type DrainConfig struct {
	Gauge   string   `yaml:"gauge" toml:"gauge"`
	Percent float64  `yaml:"percent" toml:"percent"`
	Every   Duration `yaml:"every" toml:"every"`
}

// FeedingConfig defines the foods and the raw nutrition scale they use.
type FeedingConfig struct {
	Scale       float64      `yaml:"scale" toml:"scale"` // Raw value that fills the whole gauge
	DefaultFood string       `yaml:"default_food" toml:"default_food"`
	Foods       []FoodConfig `yaml:"foods" toml:"foods"`
}

// FoodConfig is one food with its raw nutrition on [0, scale].
type FoodConfig struct {
	Name      string  `yaml:"name" toml:"name"`
	Nutrition float64 `yaml:"nutrition" toml:"nutrition"`
}

// AnimationsConfig lists the sprite strips. An empty Dir uses the sprites
// built into the binary.
type AnimationsConfig struct {
	Dir    string        `yaml:"dir" toml:"dir"`
	Strips []StripConfig `yaml:"strips" toml:"strips"`
}

// StripConfig is one horizontal strip of equal-width frames.
type StripConfig struct {
	Pose          string   `yaml:"pose" toml:"pose"`
	Emotion       string   `yaml:"emotion" toml:"emotion"`
	Facing        string   `yaml:"facing" toml:"facing"`
	File          string   `yaml:"file" toml:"file"`
	Frames        int      `yaml:"frames" toml:"frames"`
	FrameDuration Duration `yaml:"frame_duration" toml:"frame_duration"`
	Loop          bool     `yaml:"loop" toml:"loop"`
}

// StorageConfig defines where session statistics go.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Duration is a time.Duration written as "5s" or "250ms" in config files.
type Duration time.Duration

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}
