package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/doggies.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It matches defaults/doggies.yaml.
func Default() Config {
	return Config{
		Difficulty: string(DifficultyNormal),
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "All My Doggies",
		},
		Loop: LoopConfig{
			TickRate:      60,
			MaxFrame:      Duration(250 * time.Millisecond),
			SleepSlack:    Duration(300 * time.Microsecond),
			SpinThreshold: Duration(500 * time.Microsecond),
			Spin:          true,
		},
		Splash: SplashConfig{
			Duration: Duration(5 * time.Second),
		},
		Calendar: CalendarConfig{
			Epoch:             "2025-01-01",
			RealMinutesPerDay: 10,
		},
		Dog: DogConfig{
			Name:        "Scottie",
			Breed:       "cockapoo",
			Gender:      "boy",
			Speed:       120,
			WorldWidth:  736,
			WorldHeight: 360,
		},
		Player: PlayerConfig{
			Name:   "Player",
			Gender: "girl",
		},
		Needs: NeedsConfig{
			Initial: map[string]float64{
				"food":              50,
				"water":             50,
				"bladder_comfort":   50,
				"digestion_comfort": 50,
				"social_battery":    50,
				"energy":            50,
				"health":            100,
			},
			Drains: []DrainConfig{
				{Gauge: "food", Percent: 10, Every: Duration(time.Hour)},
				{Gauge: "water", Percent: 12, Every: Duration(time.Hour)},
			},
		},
		Feeding: FeedingConfig{
			Scale:       10,
			DefaultFood: "kibble",
			Foods: []FoodConfig{
				{Name: "kibble", Nutrition: 1.5},
				{Name: "wet food", Nutrition: 3},
				{Name: "treat", Nutrition: 0.5},
			},
		},
		Animations: AnimationsConfig{
			Strips: defaultStrips(),
		},
		Storage: StorageConfig{
			Path: "~/.doggies/doggies.db",
		},
	}
}

func defaultStrips() []StripConfig {
	var strips []StripConfig
	add := func(pose, emotion string, frames int, frameDuration time.Duration) {
		for _, facing := range []string{"front", "back", "left", "right"} {
			strips = append(strips, StripConfig{
				Pose:          pose,
				Emotion:       emotion,
				Facing:        facing,
				File:          pose + "_" + emotion + "_" + facing + ".png",
				Frames:        frames,
				FrameDuration: Duration(frameDuration),
				Loop:          true,
			})
		}
	}
	for _, emotion := range []string{"neutral", "happy", "sad"} {
		add("standing", emotion, 4, 150*time.Millisecond)
	}
	add("walking", "neutral", 4, 100*time.Millisecond)
	return strips
}
