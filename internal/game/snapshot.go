package game

import (
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
)

// DogView is a read-only copy of what a frontend needs to draw the dog.
type DogView struct {
	Name     string
	Breed    dog.Breed
	Gender   core.Gender
	Needs    dog.Needs
	Position core.Vec2
	Pose     anim.Pose
	Emotion  anim.Emotion
	Facing   anim.Facing
	Texture  anim.Texture // nil when no strip matched
	Frame    core.Rect
}

// Snapshot captures the game for rendering. It shares nothing mutable with
// the game, so it may cross goroutines.
type Snapshot struct {
	State      State
	Tick       uint64
	Date       time.Time
	SplashLeft time.Duration
	Feedings   int
	Player     *Player // copy, nil before setup
	Dog        *DogView
}

// Snapshot returns the current render snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:    g.state,
		Tick:     g.ticks,
		Date:     g.DateInGame(),
		Feedings: g.feedings,
	}
	if sp, ok := g.state.(Splash); ok {
		s.SplashLeft = sp.Remaining(g.clock.Now())
	}
	if g.player != nil {
		p := *g.player
		s.Player = &p
	}
	if d := g.dog; d != nil {
		v := &DogView{
			Name:     d.Name,
			Breed:    d.Breed,
			Gender:   d.Gender,
			Needs:    d.Needs(),
			Position: d.Position(),
			Pose:     d.Pose(),
			Emotion:  d.Emotion(),
			Facing:   d.Facing(),
		}
		if p := d.Animation(); p != nil {
			v.Texture = p.Texture()
			v.Frame = p.FrameRect()
		}
		s.Dog = v
	}
	return s
}
