package anim

import (
	"time"

	"github.com/vovakirdan/all-my-doggies/internal/core"
)

// Texture is a loaded image handle owned by the rendering collaborator.
// The animation system only needs its size to cut frames.
type Texture interface {
	Width() int
	Height() int
}

// TextureLoader loads a texture from a path.
// It returns an error naming the path when the file is missing or corrupt.
type TextureLoader interface {
	Load(path string) (Texture, error)
}

// Descriptor is an immutable strip definition shared across every entity
// that plays it. Never mutate a Descriptor after it is built.
type Descriptor struct {
	Texture       Texture
	Frames        []core.Rect // Source rectangles in the texture
	FrameDuration time.Duration
	Looped        bool
}

// Len returns the number of frames.
func (d *Descriptor) Len() int {
	return len(d.Frames)
}

// NewStrip cuts tex into frames equal-width frames laid out horizontally,
// all sharing the texture height. Frame count comes from the caller, not the image.
func NewStrip(tex Texture, frames int, frameDuration time.Duration, looped bool) *Descriptor {
	if frames < 0 {
		frames = 0
	}

	rects := make([]core.Rect, 0, frames)
	if frames > 0 {
		frameW := float64(tex.Width() / frames)
		frameH := float64(tex.Height())
		for i := range frames {
			rects = append(rects, core.NewRect(float64(i)*frameW, 0, frameW, frameH))
		}
	}

	return &Descriptor{
		Texture:       tex,
		Frames:        rects,
		FrameDuration: frameDuration,
		Looped:        looped,
	}
}
