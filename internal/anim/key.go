// Package anim implements sprite-strip animation: shared immutable descriptors,
// per-entity playback cursors and a keyed bank of descriptors.
package anim

import (
	"fmt"
	"strings"
)

// Facing is the high-level direction a sprite looks toward.
type Facing int

const (
	FacingFront Facing = iota
	FacingBack
	FacingLeft
	FacingRight
)

// Pose is the body state that selects which strip to play.
type Pose int

const (
	PoseStanding Pose = iota
	PoseSitting
	PoseWalking
	PoseSleeping
	PoseHindLegs
)

// Emotion is the facial "flavor" of a sprite.
type Emotion int

const (
	EmotionNeutral Emotion = iota
	EmotionHappy
	EmotionSad
)

var (
	facingNames  = [...]string{"front", "back", "left", "right"}
	poseNames    = [...]string{"standing", "sitting", "walking", "sleeping", "hind_legs"}
	emotionNames = [...]string{"neutral", "happy", "sad"}
)

func (f Facing) String() string {
	if f < 0 || int(f) >= len(facingNames) {
		return "unknown"
	}
	return facingNames[f]
}

func (p Pose) String() string {
	if p < 0 || int(p) >= len(poseNames) {
		return "unknown"
	}
	return poseNames[p]
}

func (e Emotion) String() string {
	if e < 0 || int(e) >= len(emotionNames) {
		return "unknown"
	}
	return emotionNames[e]
}

// ParseFacing converts a config name such as "left" to a Facing.
func ParseFacing(s string) (Facing, error) {
	i, err := lookup(facingNames[:], s)
	if err != nil {
		return 0, fmt.Errorf("anim: unknown facing %q", s)
	}
	return Facing(i), nil
}

// ParsePose converts a config name such as "walking" to a Pose.
func ParsePose(s string) (Pose, error) {
	i, err := lookup(poseNames[:], s)
	if err != nil {
		return 0, fmt.Errorf("anim: unknown pose %q", s)
	}
	return Pose(i), nil
}

// ParseEmotion converts a config name such as "happy" to an Emotion.
func ParseEmotion(s string) (Emotion, error) {
	i, err := lookup(emotionNames[:], s)
	if err != nil {
		return 0, fmt.Errorf("anim: unknown emotion %q", s)
	}
	return Emotion(i), nil
}

func lookup(names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("not found")
}

// Key identifies one strip in a Bank.
type Key struct {
	Pose    Pose
	Emotion Emotion
	Facing  Facing
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Pose, k.Emotion, k.Facing)
}
