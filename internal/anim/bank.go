package anim

import (
	"fmt"
	"sort"
	"time"
)

// Bank maps keys to shared descriptors. It is filled once at load time and
// then only read, so entities can hold a pointer to it.
type Bank struct {
	strips map[Key]*Descriptor
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{strips: make(map[Key]*Descriptor)}
}

// Insert registers desc under key, replacing any previous entry.
func (b *Bank) Insert(key Key, desc *Descriptor) {
	b.strips[key] = desc
}

// Get returns the descriptor for key.
func (b *Bank) Get(key Key) (*Descriptor, bool) {
	if b == nil {
		return nil, false
	}
	d, ok := b.strips[key]
	return d, ok
}

// Len returns the number of registered strips.
func (b *Bank) Len() int {
	return len(b.strips)
}

// Keys returns all registered keys in a stable order.
func (b *Bank) Keys() []Key {
	keys := make([]Key, 0, len(b.strips))
	for k := range b.strips {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, c := keys[i], keys[j]
		if a.Pose != c.Pose {
			return a.Pose < c.Pose
		}
		if a.Emotion != c.Emotion {
			return a.Emotion < c.Emotion
		}
		return a.Facing < c.Facing
	})
	return keys
}

// LoadStrip loads the texture at path and registers it as a strip of
// frames equal-width frames.
func (b *Bank) LoadStrip(loader TextureLoader, key Key, path string, frames int, frameDuration time.Duration, looped bool) error {
	if frames <= 0 {
		return fmt.Errorf("anim: strip %s (%s) needs at least one frame", key, path)
	}

	tex, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("anim: cannot load strip %s: %w", key, err)
	}

	b.Insert(key, NewStrip(tex, frames, frameDuration, looped))
	return nil
}
