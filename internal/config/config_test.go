package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	var cfg Config
	if err := Decode(DefaultYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "All My Doggies" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Loop.TickRate != 60 || cfg.Loop.MaxFrame.Std() != 250*time.Millisecond {
		t.Errorf("loop = %+v", cfg.Loop)
	}
	if cfg.Splash.Duration.Std() != 5*time.Second {
		t.Errorf("splash = %v", cfg.Splash.Duration)
	}

	food, err := cfg.DefaultFood()
	if err != nil {
		t.Fatal(err)
	}
	if food.Name != "kibble" || food.Nutrition.Value() != 15 {
		t.Errorf("default food = %+v", food)
	}

	drains, err := cfg.Drains()
	if err != nil {
		t.Fatal(err)
	}
	if len(drains) != 2 {
		t.Errorf("expected food and water drains, got %v", drains)
	}
	if r := drains[dog.GaugeFood]; r.Every != time.Hour || r.Percent.Value() != 10 {
		t.Errorf("food drain = %+v", r)
	}
}

const sampleYAML = `
difficulty: demanding
loop:
  tick_rate: 30
  max_frame: 100ms
dog:
  name: Rex
  breed: border collie
needs:
  initial:
    energy: 80
  drains:
    - gauge: energy
      percent: 5
      every: 30m
feeding:
  scale: 20
  default_food: bone
  foods:
    - name: bone
      nutrition: 4
`

const sampleTOML = `
difficulty = "demanding"

[loop]
tick_rate = 30
max_frame = "100ms"

[dog]
name = "Rex"
breed = "border collie"

[needs.initial]
energy = 80.0

[[needs.drains]]
gauge = "energy"
percent = 5.0
every = "30m"

[feeding]
scale = 20.0
default_food = "bone"

[[feeding.foods]]
name = "bone"
nutrition = 4.0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestYAMLAndTOMLAgree(t *testing.T) {
	dir := t.TempDir()

	fromYAML, err := LoadFile(writeFile(t, dir, "c.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromTOML, err := LoadFile(writeFile(t, dir, "c.toml", sampleTOML))
	if err != nil {
		t.Fatalf("toml: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, fromTOML) {
		t.Errorf("configs differ:\nyaml: %+v\ntoml: %+v", fromYAML, fromTOML)
	}

	if fromTOML.Loop.TickRate != 30 || fromTOML.Loop.MaxFrame.Std() != 100*time.Millisecond {
		t.Errorf("loop = %+v", fromTOML.Loop)
	}
	// Untouched sections keep their defaults.
	if fromTOML.Window != Default().Window {
		t.Errorf("window = %+v", fromTOML.Window)
	}
}

func TestPartialConfigConversions(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, t.TempDir(), "c.yaml", sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	id, err := cfg.DogIdentity(time.Time{})
	if err != nil || id.Breed != dog.BreedBorderCollie || id.Name != "Rex" {
		t.Errorf("identity = %+v, %v", id, err)
	}

	needs, err := cfg.InitialNeeds()
	if err != nil {
		t.Fatal(err)
	}
	if needs[dog.GaugeEnergy].Value() != 80 {
		t.Errorf("energy = %v, expected 80", needs[dog.GaugeEnergy].Value())
	}
	// Listed gauges override, the default map entries stay.
	if needs[dog.GaugeHealth].Value() != 100 {
		t.Errorf("health = %v, expected 100", needs[dog.GaugeHealth].Value())
	}

	drains, err := cfg.Drains()
	if err != nil {
		t.Fatal(err)
	}
	// Demanding doubles the configured 5%.
	if r, ok := drains[dog.GaugeEnergy]; !ok || r.Percent.Value() != 10 || r.Every != 30*time.Minute {
		t.Errorf("energy drain = %+v", r)
	}
	if _, ok := drains[dog.GaugeFood]; ok {
		t.Error("drain list should replace the defaults")
	}

	food, err := cfg.DefaultFood()
	if err != nil || food.Nutrition.Value() != 20 {
		t.Errorf("bone = %+v, %v", food, err)
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		t.Fatal(err)
	}
	if gc.TickRate != 30 || !gc.Epoch.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("game config = %+v", gc)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Loop.TickRate = 0
	cfg.Animations.Strips = append(cfg.Animations.Strips, StripConfig{
		Pose: "flying", Emotion: "neutral", Facing: "front", File: "fly.png", Frames: 0,
	})
	cfg.Feeding.DefaultFood = "cake"
	cfg.Needs.Drains = append(cfg.Needs.Drains, DrainConfig{Gauge: "happiness", Percent: 1, Every: Duration(time.Hour)})

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"tick_rate", "flying", "at least one frame", "cake", "happiness"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q:\n%v", want, err)
		}
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "loop: [\n"), "failed to parse config"},
		{"bad duration", writeFile(t, dir, "dur.toml", "[splash]\nduration = \"soon\"\n"), "failed to parse config"},
		{"invalid", writeFile(t, dir, "inv.yaml", "loop:\n  tick_rate: -1\n"), "invalid config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadFile = %v, expected %q", err, tc.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("with no files Load should return the default")
	}

	writeFile(t, work, "configs/doggies.toml", "[dog]\nname = \"Local\"\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dog.Name != "Local" {
		t.Errorf("expected local config, got dog %q", cfg.Dog.Name)
	}

	writeFile(t, home, ".doggies/config.yaml", "dog:\n  name: Home\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dog.Name != "Home" {
		t.Errorf("user config should win over local, got dog %q", cfg.Dog.Name)
	}

	custom := writeFile(t, work, "custom.yaml", "dog:\n  name: Custom\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dog.Name != "Custom" {
		t.Errorf("custom path should win, got dog %q", cfg.Dog.Name)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Encode(Default(), format)
			if err != nil {
				t.Fatal(err)
			}
			var cfg Config
			if err := Decode(data, format, &cfg); err != nil {
				t.Fatalf("decode: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(cfg, Default()) {
				t.Errorf("round trip changed the config:\n%s", data)
			}
		})
	}
}

type sizedTexture struct{ w, h int }

func (s sizedTexture) Width() int  { return s.w }
func (s sizedTexture) Height() int { return s.h }

type recordingLoader struct{ paths []string }

func (l *recordingLoader) Load(path string) (anim.Texture, error) {
	l.paths = append(l.paths, path)
	return sizedTexture{w: 128, h: 24}, nil
}

func TestLoadBank(t *testing.T) {
	loader := &recordingLoader{}
	bank, err := Default().LoadBank(loader)
	if err != nil {
		t.Fatal(err)
	}
	if bank.Len() != len(Default().Animations.Strips) {
		t.Errorf("bank has %d strips, expected %d", bank.Len(), len(Default().Animations.Strips))
	}

	walk, ok := bank.Get(anim.Key{Pose: anim.PoseWalking, Emotion: anim.EmotionNeutral, Facing: anim.FacingLeft})
	if !ok {
		t.Fatal("walking/neutral/left missing")
	}
	if walk.Len() != 4 || walk.FrameDuration != 100*time.Millisecond || walk.Frames[1].X != 32 {
		t.Errorf("walking strip = %+v", walk)
	}
	if loader.paths[0] != "standing_neutral_front.png" {
		t.Errorf("first path = %q", loader.paths[0])
	}
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("")
	if err != nil || p != DifficultyNormal {
		t.Errorf("empty = %v, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
	if DifficultyRelaxed.DrainMultiplier() >= DifficultyDemanding.DrainMultiplier() {
		t.Error("relaxed should drain slower than demanding")
	}
}
