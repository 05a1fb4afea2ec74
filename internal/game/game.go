// Package game holds the top-level state machine: splash, menu, play and
// pause, the dog and its owner, and the in-game calendar.
package game

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
)

// Config holds the tunables of a game.
type Config struct {
	TickRate          int           // Simulation ticks per real second
	SplashDuration    time.Duration // How long the title card shows
	Epoch             time.Time     // In-game date at tick 0
	RealMinutesPerDay float64       // Real minutes per in-game day
	DogSpeed          float64       // Walking speed in world units per second
	DefaultFood       dog.Food      // What the feed action gives
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		TickRate:          60,
		SplashDuration:    5 * time.Second,
		Epoch:             time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		RealMinutesPerDay: 10,
		DogSpeed:          120,
		DefaultFood:       dog.NewFood("kibble", 1.5, dog.DefaultNutritionScale),
	}
}

// Game is the state machine driving one session. It is mutated only by the
// goroutine running its loop.
type Game struct {
	cfg   Config
	clock core.Clock
	state State
	ticks uint64

	dog      *dog.Dog
	player   *Player
	feedings int

	logger *log.Logger
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithDog gives the game its dog.
func WithDog(d *dog.Dog) Option {
	return func(g *Game) { g.dog = d }
}

// WithPlayer gives the game its player.
func WithPlayer(p *Player) Option {
	return func(g *Game) { g.player = p }
}

// New creates a game in the Initializing state.
func New(cfg Config, clock core.Clock, opts ...Option) *Game {
	def := DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.RealMinutesPerDay <= 0 {
		cfg.RealMinutesPerDay = def.RealMinutesPerDay
	}
	if cfg.Epoch.IsZero() {
		cfg.Epoch = def.Epoch
	}
	if clock == nil {
		clock = core.SystemClock{}
	}

	g := &Game{
		cfg:    cfg,
		clock:  clock,
		state:  Initializing{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the game's tunables.
func (g *Game) Config() Config { return g.cfg }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Ticks returns how many times Update has run.
func (g *Game) Ticks() uint64 { return g.ticks }

// Dog returns the dog, or nil before one is set.
func (g *Game) Dog() *dog.Dog { return g.dog }

// Player returns the player, or nil before one is set.
func (g *Game) Player() *Player { return g.player }

// Feedings returns how many times the dog was fed this session.
func (g *Game) Feedings() int { return g.feedings }

// SetDog replaces the dog.
func (g *Game) SetDog(d *dog.Dog) { g.dog = d }

// SetPlayer replaces the player.
func (g *Game) SetPlayer(p *Player) { g.player = p }

// TickDuration returns the simulated time covered by one tick.
func (g *Game) TickDuration() time.Duration {
	return time.Second / time.Duration(g.cfg.TickRate)
}

// IsQuit reports whether the game reached the terminal state.
func (g *Game) IsQuit() bool {
	_, ok := g.state.(Quit)
	return ok
}

// SetState moves the machine to s unconditionally.
func (g *Game) SetState(s State) {
	if s == nil {
		return
	}
	if s.String() != g.state.String() {
		g.logger.Debug("state change", "from", g.state, "to", s, "tick", g.ticks)
	}
	g.state = s
}

// ShowSplash starts the title card timer at the current clock time.
func (g *Game) ShowSplash() {
	g.SetState(Splash{Start: g.clock.Now(), Duration: g.cfg.SplashDuration})
}

// ShowMainMenu switches to the main menu.
func (g *Game) ShowMainMenu() {
	g.SetState(MainMenu{})
}

// Update runs one tick. Quit is checked before the current state handles
// the input, so it wins everywhere.
func (g *Game) Update(in core.InputFrame) {
	g.ticks++

	if in.Has(core.ActionQuit) {
		g.SetState(Quit{})
		return
	}

	switch s := g.state.(type) {
	case Splash:
		if s.Remaining(g.clock.Now()) == 0 {
			g.ShowMainMenu()
		}
	case MainMenu:
		if in.Has(core.ActionConfirm) {
			g.SetState(Playing{})
		}
	case Playing:
		if in.Has(core.ActionPause) {
			g.SetState(Paused{})
			return
		}
		g.updatePlaying(in)
	case Paused:
		if in.Has(core.ActionPause) {
			g.SetState(Playing{})
		}
	case Initializing, CollectingInfo, Quit:
		// Driven from outside or terminal.
	}
}

func (g *Game) updatePlaying(in core.InputFrame) {
	d := g.dog
	if d == nil {
		return
	}

	if in.Has(core.ActionFeed) {
		d.Feed(g.cfg.DefaultFood)
		g.feedings++
		g.logger.Debug("fed dog", "food", g.cfg.DefaultFood.Name, "level", d.Level(dog.GaugeFood))
	}

	dir := in.Direction()
	if dir.IsZero() {
		d.SetVelocity(core.Vec2{})
		if d.Pose() == anim.PoseWalking {
			d.SetVisualState(anim.PoseStanding, d.Emotion(), d.Facing())
		}
	} else {
		d.SetVelocity(dir.Scale(g.cfg.DogSpeed))
	}

	d.ApplyDrains(g.clock.Now())
	d.RefreshMood()
	d.Update(g.TickDuration())
}

// DateInGame maps the tick counter onto the in-game calendar.
func (g *Game) DateInGame() time.Time {
	return DateForTicks(g.ticks, g.cfg.TickRate, g.cfg.RealMinutesPerDay, g.cfg.Epoch)
}

// DateForTicks returns epoch plus one day for every full in-game day that
// ticks at tickRate cover, where a day lasts minutesPerDay real minutes.
func DateForTicks(ticks uint64, tickRate int, minutesPerDay float64, epoch time.Time) time.Time {
	ticksPerDay := float64(tickRate) * 60 * minutesPerDay
	if ticksPerDay <= 0 {
		return epoch
	}
	days := int(math.Floor(float64(ticks) / ticksPerDay))
	return epoch.AddDate(0, 0, days)
}
