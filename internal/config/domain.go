package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
	"github.com/vovakirdan/all-my-doggies/internal/game"
	"github.com/vovakirdan/all-my-doggies/internal/loop"
)

const epochLayout = "2006-01-02"

// Validate reports every problem in cfg at once.
func Validate(cfg Config) error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		add(fmt.Errorf("window: size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Loop.TickRate <= 0 {
		add(fmt.Errorf("loop: tick_rate %d must be positive", cfg.Loop.TickRate))
	}
	if cfg.Loop.MaxFrame < 0 {
		add(errors.New("loop: max_frame must not be negative"))
	}
	if cfg.Splash.Duration < 0 {
		add(errors.New("splash: duration must not be negative"))
	}
	if cfg.Calendar.RealMinutesPerDay <= 0 {
		add(errors.New("calendar: real_minutes_per_day must be positive"))
	}
	if cfg.Dog.WorldWidth < 0 || cfg.Dog.WorldHeight < 0 {
		add(fmt.Errorf("dog: world %gx%g must not be negative", cfg.Dog.WorldWidth, cfg.Dog.WorldHeight))
	}
	if cfg.Dog.Speed < 0 {
		add(errors.New("dog: speed must not be negative"))
	}
	if cfg.Feeding.Scale <= 0 {
		add(errors.New("feeding: scale must be positive"))
	}

	_, err := ParseDifficulty(cfg.Difficulty)
	add(err)
	_, err = cfg.Epoch()
	add(err)
	_, err = cfg.DogIdentity(time.Time{})
	add(err)
	_, err = cfg.NewPlayer()
	add(err)
	_, err = cfg.InitialNeeds()
	add(err)
	_, err = cfg.Drains()
	add(err)
	_, err = cfg.DefaultFood()
	add(err)
	for i, s := range cfg.Animations.Strips {
		_, err := s.Key()
		add(err)
		if s.Frames <= 0 {
			add(fmt.Errorf("animations: strip %d (%s) needs at least one frame", i, s.File))
		}
		if s.File == "" {
			add(fmt.Errorf("animations: strip %d has no file", i))
		}
	}

	return errors.Join(errs...)
}

// Epoch returns the in-game date at tick 0.
func (c Config) Epoch() (time.Time, error) {
	t, err := time.Parse(epochLayout, c.Calendar.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar: bad epoch %q: %w", c.Calendar.Epoch, err)
	}
	return t, nil
}

// Drains returns the configured drain rates scaled by the difficulty preset.
func (c Config) Drains() (map[dog.Gauge]dog.DrainRate, error) {
	preset, err := ParseDifficulty(c.Difficulty)
	if err != nil {
		return nil, err
	}
	mult := preset.DrainMultiplier()

	drains := make(map[dog.Gauge]dog.DrainRate, len(c.Needs.Drains))
	for _, d := range c.Needs.Drains {
		g, err := dog.ParseGauge(d.Gauge)
		if err != nil {
			return nil, fmt.Errorf("needs: %w", err)
		}
		if d.Every <= 0 {
			return nil, fmt.Errorf("needs: drain for %s needs a positive interval", d.Gauge)
		}
		if d.Percent < 0 {
			return nil, fmt.Errorf("needs: drain for %s must not be negative", d.Gauge)
		}
		drains[g] = dog.NewDrainRate(d.Percent*mult, d.Every.Std())
	}
	return drains, nil
}

// InitialNeeds returns the starting gauges. Gauges not listed keep the
// dog defaults.
func (c Config) InitialNeeds() (dog.Needs, error) {
	needs := dog.DefaultNeeds()
	for name, v := range c.Needs.Initial {
		g, err := dog.ParseGauge(name)
		if err != nil {
			return needs, fmt.Errorf("needs: %w", err)
		}
		if v < 0 || v > 100 {
			return needs, fmt.Errorf("needs: initial %s %.1f out of 0..100", name, v)
		}
		needs[g] = core.NewPercent(v)
	}
	return needs, nil
}

// Foods returns every configured food on the configured scale.
func (c Config) Foods() []dog.Food {
	foods := make([]dog.Food, 0, len(c.Feeding.Foods))
	for _, f := range c.Feeding.Foods {
		foods = append(foods, dog.NewFood(f.Name, f.Nutrition, c.Feeding.Scale))
	}
	return foods
}

// DefaultFood returns the food the feed action gives.
func (c Config) DefaultFood() (dog.Food, error) {
	for _, f := range c.Foods() {
		if f.Name == c.Feeding.DefaultFood {
			return f, nil
		}
	}
	return dog.Food{}, fmt.Errorf("feeding: default food %q is not in the food list", c.Feeding.DefaultFood)
}

// DogIdentity returns who the configured dog is.
func (c Config) DogIdentity(born time.Time) (dog.Identity, error) {
	breed, err := dog.ParseBreed(c.Dog.Breed)
	if err != nil {
		return dog.Identity{}, err
	}
	gender, err := core.ParseGender(c.Dog.Gender)
	if err != nil {
		return dog.Identity{}, fmt.Errorf("dog: %w", err)
	}
	return dog.Identity{Name: c.Dog.Name, Breed: breed, Gender: gender, Born: born}, nil
}

// NewPlayer returns the configured owner.
func (c Config) NewPlayer() (*game.Player, error) {
	gender, err := core.ParseGender(c.Player.Gender)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	return game.NewPlayer(c.Player.Name, gender), nil
}

// World returns the area the dog walks in.
func (c Config) World() core.Rect {
	return core.NewRect(0, 0, c.Dog.WorldWidth, c.Dog.WorldHeight)
}

// GameConfig returns the game tunables.
func (c Config) GameConfig() (game.Config, error) {
	epoch, err := c.Epoch()
	if err != nil {
		return game.Config{}, err
	}
	food, err := c.DefaultFood()
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		TickRate:          c.Loop.TickRate,
		SplashDuration:    c.Splash.Duration.Std(),
		Epoch:             epoch,
		RealMinutesPerDay: c.Calendar.RealMinutesPerDay,
		DogSpeed:          c.Dog.Speed,
		DefaultFood:       food,
	}, nil
}

// LoopConfig returns the loop timing.
func (c Config) LoopConfig() loop.Config {
	return loop.Config{
		TickRate:      c.Loop.TickRate,
		MaxFrame:      c.Loop.MaxFrame.Std(),
		SleepSlack:    c.Loop.SleepSlack.Std(),
		SpinThreshold: c.Loop.SpinThreshold.Std(),
		Spin:          c.Loop.Spin,
	}
}

// Key parses the strip's pose, emotion and facing.
func (s StripConfig) Key() (anim.Key, error) {
	pose, err := anim.ParsePose(s.Pose)
	if err != nil {
		return anim.Key{}, fmt.Errorf("animations: %w", err)
	}
	emotion, err := anim.ParseEmotion(s.Emotion)
	if err != nil {
		return anim.Key{}, fmt.Errorf("animations: %w", err)
	}
	facing, err := anim.ParseFacing(s.Facing)
	if err != nil {
		return anim.Key{}, fmt.Errorf("animations: %w", err)
	}
	return anim.Key{Pose: pose, Emotion: emotion, Facing: facing}, nil
}

// LoadBank loads every strip through loader. Strip files are relative to
// the loader's root, which is Animations.Dir or the built-in sprites.
func (c Config) LoadBank(loader anim.TextureLoader) (*anim.Bank, error) {
	bank := anim.NewBank()
	for _, s := range c.Animations.Strips {
		key, err := s.Key()
		if err != nil {
			return nil, err
		}
		if err := bank.LoadStrip(loader, key, s.File, s.Frames, s.FrameDuration.Std(), s.Loop); err != nil {
			return nil, err
		}
	}
	return bank, nil
}
