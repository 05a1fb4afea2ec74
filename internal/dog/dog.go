// Package dog simulates the virtual dog: its depleting needs, movement and
// the animation state derived from both.
package dog

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/core"
)

// Mood thresholds on the mean gauge fill.
const (
	happyThreshold = 0.7
	sadThreshold   = 0.3
)

// drainInterval is the minimum time between two drain applications.
const drainInterval = time.Second

// Identity is who the dog is. It never changes after creation.
type Identity struct {
	Name   string
	Breed  Breed
	Gender core.Gender
	Born   time.Time
}

// Dog is a simulated dog. It is owned by a single game loop and is not safe
// for concurrent use.
type Dog struct {
	Identity

	needs     Needs
	drains    map[Gauge]DrainRate
	lastDrain time.Time

	pos    core.Vec2
	vel    core.Vec2
	bounds core.Rect

	pose    anim.Pose
	emotion anim.Emotion
	facing  anim.Facing

	bank    *anim.Bank // shared, read-only
	player  *anim.Player
	missing map[anim.Key]bool

	logger *log.Logger
}

// Option customizes a Dog at construction.
type Option func(*Dog)

// WithDrains replaces the default drains. Gauges absent from drains do not deplete.
func WithDrains(drains map[Gauge]DrainRate) Option {
	return func(d *Dog) {
		d.drains = make(map[Gauge]DrainRate, len(drains))
		for g, r := range drains {
			d.drains[g] = r
		}
	}
}

// WithNeeds sets the starting gauge levels.
func WithNeeds(n Needs) Option {
	return func(d *Dog) { d.needs = n }
}

// WithBounds keeps the dog's position inside r. A zero rect means unbounded.
func WithBounds(r core.Rect) Option {
	return func(d *Dog) { d.bounds = r }
}

// WithPosition sets the starting position.
func WithPosition(p core.Vec2) Option {
	return func(d *Dog) { d.pos = p }
}

// WithLogger sets the logger used to report missing animations.
func WithLogger(l *log.Logger) Option {
	return func(d *Dog) { d.logger = l }
}

// New creates a dog standing, neutral and facing the camera. now is the
// reference time for the first drain; bank may be nil for a dog without sprites.
func New(id Identity, bank *anim.Bank, now time.Time, opts ...Option) *Dog {
	d := &Dog{
		Identity:  id,
		needs:     DefaultNeeds(),
		drains:    DefaultDrains(),
		lastDrain: now,
		bank:      bank,
		missing:   make(map[anim.Key]bool),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.SetVisualState(anim.PoseStanding, anim.EmotionNeutral, anim.FacingFront)
	return d
}

// Level returns the current fill of gauge g.
func (d *Dog) Level(g Gauge) core.Percent {
	if g < 0 || g >= gaugeCount {
		return core.Percent{}
	}
	return d.needs[g]
}

// Needs returns a copy of all gauges.
func (d *Dog) Needs() Needs {
	return d.needs
}

// Feed raises the food gauge by the food's nutrition. It never fails.
func (d *Dog) Feed(food Food) {
	d.needs[GaugeFood].Increase(food.Nutrition)
}

// ApplyDrains depletes every gauge with a configured drain for the time since
// the last application. Calls less than a second apart do nothing.
// Returns true when drains were applied.
func (d *Dog) ApplyDrains(now time.Time) bool {
	elapsed := now.Sub(d.lastDrain)
	if elapsed < drainInterval {
		return false
	}

	for g, rate := range d.drains {
		if g < 0 || g >= gaugeCount {
			continue
		}
		d.needs[g].Decrease(rate.Amount(elapsed))
	}
	d.lastDrain = now
	return true
}

// Mood derives an emotion from the average of all gauges.
func (d *Dog) Mood() anim.Emotion {
	mean := d.needs.Mean()
	switch {
	case mean >= happyThreshold:
		return anim.EmotionHappy
	case mean < sadThreshold:
		return anim.EmotionSad
	default:
		return anim.EmotionNeutral
	}
}

// RefreshMood switches the visual state when the mood changed.
func (d *Dog) RefreshMood() {
	if m := d.Mood(); m != d.emotion {
		d.SetVisualState(d.pose, m, d.facing)
	}
}

// SetVelocity sets the movement vector in pixels per second.
func (d *Dog) SetVelocity(v core.Vec2) {
	d.vel = v
}

// Velocity returns the movement vector.
func (d *Dog) Velocity() core.Vec2 {
	return d.vel
}

// Position returns the dog's top-left position.
func (d *Dog) Position() core.Vec2 {
	return d.pos
}

// Pose returns the current pose.
func (d *Dog) Pose() anim.Pose { return d.pose }

// Emotion returns the current emotion.
func (d *Dog) Emotion() anim.Emotion { return d.emotion }

// Facing returns the current facing.
func (d *Dog) Facing() anim.Facing { return d.facing }

// Animation returns the dog's player, or nil if no strip ever matched.
func (d *Dog) Animation() *anim.Player {
	return d.player
}

// SetVisualState records pose, emotion and facing and restarts the matching
// strip. When the exact key is missing the neutral strip for the same pose and
// facing is used; when that is missing too the current strip keeps playing.
// Returns false when no strip was found.
func (d *Dog) SetVisualState(pose anim.Pose, emotion anim.Emotion, facing anim.Facing) bool {
	d.pose, d.emotion, d.facing = pose, emotion, facing

	key := anim.Key{Pose: pose, Emotion: emotion, Facing: facing}
	desc, ok := d.bank.Get(key)
	if !ok && emotion != anim.EmotionNeutral {
		desc, ok = d.bank.Get(anim.Key{Pose: pose, Emotion: anim.EmotionNeutral, Facing: facing})
	}
	if !ok {
		if !d.missing[key] {
			d.missing[key] = true
			d.logger.Warn("no animation for visual state", "dog", d.Name, "key", key.String())
		}
		return false
	}

	if d.player == nil {
		d.player = anim.NewPlayer(desc)
	} else {
		d.player.Play(desc)
	}
	return true
}

// Update moves the dog, derives pose and facing from its velocity and
// advances the animation by dt.
func (d *Dog) Update(dt time.Duration) {
	d.pos = d.clamp(d.pos.Add(d.vel.Scale(dt.Seconds())))

	pose := d.pose
	if d.vel.Len() > 0 {
		pose = anim.PoseWalking
	}
	facing := facingFor(d.vel, d.facing)

	if pose != d.pose || facing != d.facing {
		d.SetVisualState(pose, d.emotion, facing)
	}

	if d.player != nil {
		d.player.Update(dt)
	}
}

// facingFor picks a facing from v. Horizontal movement wins over vertical;
// a still dog keeps facing where it was.
func facingFor(v core.Vec2, current anim.Facing) anim.Facing {
	switch {
	case v.X > 0:
		return anim.FacingRight
	case v.X < 0:
		return anim.FacingLeft
	case v.Y < 0:
		return anim.FacingBack
	case v.Y > 0:
		return anim.FacingFront
	default:
		return current
	}
}

func (d *Dog) clamp(p core.Vec2) core.Vec2 {
	if d.bounds.Empty() {
		return p
	}
	return core.Vec2{
		X: core.ClampF(p.X, d.bounds.X, d.bounds.Right()),
		Y: core.ClampF(p.Y, d.bounds.Y, d.bounds.Bottom()),
	}
}
