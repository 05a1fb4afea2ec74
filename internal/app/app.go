// Package app wires configuration, assets, the game and its loop into a
// playable session, and records the session when it ends.
package app

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/assets"
	"github.com/vovakirdan/all-my-doggies/internal/config"
	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
	"github.com/vovakirdan/all-my-doggies/internal/game"
	"github.com/vovakirdan/all-my-doggies/internal/loop"
	"github.com/vovakirdan/all-my-doggies/internal/storage"
)

// Frontend names recorded with each session.
const (
	FrontendWindow = "window"
	FrontendTUI    = "tui"
	FrontendSSH    = "ssh"
)

// TextureLoader returns the loader for the configured sprites: the asset
// directory when one is set, otherwise the built-in sprites.
func TextureLoader(cfg config.Config) (*assets.Loader, error) {
	if cfg.Animations.Dir == "" {
		return assets.Builtin(), nil
	}
	dir, err := config.ExpandHome(cfg.Animations.Dir)
	if err != nil {
		return nil, err
	}
	return assets.NewDirLoader(dir), nil
}

// LoadBank loads every configured strip. The bank is read-only afterwards
// and may be shared by any number of sessions.
func LoadBank(cfg config.Config) (*anim.Bank, error) {
	loader, err := TextureLoader(cfg)
	if err != nil {
		return nil, err
	}
	return cfg.LoadBank(loader)
}

// Session is one game with its loop.
type Session struct {
	Game *game.Game
	Loop *loop.Loop

	frontend string
	clock    core.Clock
	started  time.Time
	ended    time.Time
}

// Options configures NewSession. Zero values select defaults.
type Options struct {
	Frontend string
	Clock    core.Clock
	Logger   *log.Logger
	LoopOpts []loop.Option
}

// NewSession builds a game from cfg with a fresh dog and starts its splash.
func NewSession(cfg config.Config, bank *anim.Bank, opts Options) (*Session, error) {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	now := opts.Clock.Now()

	gcfg, err := cfg.GameConfig()
	if err != nil {
		return nil, err
	}
	id, err := cfg.DogIdentity(now)
	if err != nil {
		return nil, err
	}
	needs, err := cfg.InitialNeeds()
	if err != nil {
		return nil, err
	}
	drains, err := cfg.Drains()
	if err != nil {
		return nil, err
	}
	player, err := cfg.NewPlayer()
	if err != nil {
		return nil, err
	}

	world := cfg.World()
	d := dog.New(id, bank, now,
		dog.WithNeeds(needs),
		dog.WithDrains(drains),
		dog.WithBounds(world),
		dog.WithPosition(core.Vec2{X: world.W / 2, Y: world.H / 2}),
		dog.WithLogger(opts.Logger.WithPrefix("dog")),
	)

	g := game.New(gcfg, opts.Clock,
		game.WithDog(d),
		game.WithPlayer(player),
		game.WithLogger(opts.Logger.WithPrefix("game")),
	)
	g.ShowSplash()

	loopOpts := append([]loop.Option{loop.WithLogger(opts.Logger.WithPrefix("loop"))}, opts.LoopOpts...)
	l := loop.New(g, opts.Clock, cfg.LoopConfig(), loopOpts...)

	return &Session{
		Game:     g,
		Loop:     l,
		frontend: opts.Frontend,
		clock:    opts.Clock,
		started:  now,
	}, nil
}

// Run drives the session until the host closes, the game quits or ctx is done.
func (s *Session) Run(ctx context.Context, host loop.Host) error {
	defer func() { s.ended = s.clock.Now() }()
	return s.Loop.Run(ctx, host)
}

// Record summarizes the session for storage.
func (s *Session) Record() storage.Session {
	ended := s.ended
	if ended.IsZero() {
		ended = s.clock.Now()
	}

	rec := storage.Session{
		Frontend:  s.frontend,
		StartedAt: s.started,
		EndedAt:   ended,
		Ticks:     s.Game.Ticks(),
		GameDate:  s.Game.DateInGame(),
		Feedings:  s.Game.Feedings(),
	}
	if p := s.Game.Player(); p != nil {
		rec.Player = p.Name
	}
	if d := s.Game.Dog(); d != nil {
		rec.DogName = d.Name
		rec.Breed = d.Breed.String()
		rec.FinalFood = d.Level(dog.GaugeFood).Value()
		rec.FinalWater = d.Level(dog.GaugeWater).Value()
	}
	return rec
}

// Recorder stores finished sessions. *storage.Store implements it.
type Recorder interface {
	SaveSession(storage.Session) (int64, error)
}

// Save records the session. Failures are logged, never returned: losing
// statistics must not spoil a game.
func (s *Session) Save(rec Recorder, logger *log.Logger) {
	if rec == nil {
		return
	}
	r := s.Record()
	if r.Ticks == 0 {
		return
	}
	if _, err := rec.SaveSession(r); err != nil {
		logger.Warn("cannot record session", "err", err)
		return
	}
	logger.Debug("session recorded", "dog", r.DogName, "ticks", r.Ticks, "feedings", r.Feedings)
}

var _ Recorder = (*storage.Store)(nil)
