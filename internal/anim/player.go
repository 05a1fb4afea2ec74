package anim

import (
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/core"
)

// Player is the per-entity playback cursor over a shared Descriptor.
type Player struct {
	desc    *Descriptor
	frame   int
	elapsed time.Duration // time spent in the current frame
	playing bool
}

// NewPlayer creates a player positioned at frame 0 and playing.
func NewPlayer(desc *Descriptor) *Player {
	return &Player{desc: desc, playing: true}
}

// Update advances the animation by dt.
// Several frames can elapse in one call when dt exceeds the frame duration.
func (p *Player) Update(dt time.Duration) {
	if !p.playing || p.desc == nil || p.desc.Len() <= 1 || p.desc.FrameDuration <= 0 {
		return
	}

	p.elapsed += dt
	for p.elapsed >= p.desc.FrameDuration {
		p.elapsed -= p.desc.FrameDuration
		p.frame++
		if p.frame >= p.desc.Len() {
			if p.desc.Looped {
				p.frame = 0
			} else {
				p.frame = p.desc.Len() - 1
				p.playing = false
				p.elapsed = 0
				return
			}
		}
	}
}

// Reset rewinds to frame 0 and resumes playback.
func (p *Player) Reset() {
	p.frame = 0
	p.elapsed = 0
	p.playing = true
}

// Play switches to desc and restarts from the first frame.
// There is no cross-fade, even between similar strips.
func (p *Player) Play(desc *Descriptor) {
	p.desc = desc
	p.Reset()
}

// Descriptor returns the strip being played.
func (p *Player) Descriptor() *Descriptor {
	return p.desc
}

// Frame returns the current frame index.
func (p *Player) Frame() int {
	return p.frame
}

// Elapsed returns the time spent in the current frame.
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// Playing reports whether the player is still advancing.
func (p *Player) Playing() bool {
	return p.playing
}

// FrameRect returns the source rectangle of the current frame.
// Returns an empty rect for a strip without frames.
func (p *Player) FrameRect() core.Rect {
	if p.desc == nil || p.frame >= p.desc.Len() {
		return core.Rect{}
	}
	return p.desc.Frames[p.frame]
}

// Texture returns the texture of the current strip.
func (p *Player) Texture() Texture {
	if p.desc == nil {
		return nil
	}
	return p.desc.Texture
}
