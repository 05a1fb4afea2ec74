package anim

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeTexture is a texture with a fixed size and no pixels.
type fakeTexture struct {
	w, h int
}

func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

// fakeLoader serves textures from a map and fails for anything else.
type fakeLoader map[string]fakeTexture

func (l fakeLoader) Load(path string) (Texture, error) {
	tex, ok := l[path]
	if !ok {
		return nil, errors.New("missing asset " + path)
	}
	return tex, nil
}

func strip(frames int, d time.Duration, looped bool) *Descriptor {
	return NewStrip(fakeTexture{w: 16 * frames, h: 16}, frames, d, looped)
}

func TestNewStripCutsEqualFrames(t *testing.T) {
	d := NewStrip(fakeTexture{w: 64, h: 20}, 4, 100*time.Millisecond, true)

	if d.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", d.Len())
	}
	for i, r := range d.Frames {
		if r.X != float64(i*16) || r.Y != 0 || r.W != 16 || r.H != 20 {
			t.Errorf("frame %d = %+v, expected x=%d w=16 h=20", i, r, i*16)
		}
	}
}

func TestPlayerCatchesUpSeveralFrames(t *testing.T) {
	p := NewPlayer(strip(4, 100*time.Millisecond, true))

	p.Update(350 * time.Millisecond)

	if p.Frame() != 3 {
		t.Errorf("Frame() = %d, expected 3", p.Frame())
	}
	if p.Elapsed() != 50*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 50ms", p.Elapsed())
	}
	if !p.Playing() {
		t.Error("looping strip should keep playing")
	}
}

func TestPlayerLoopWraps(t *testing.T) {
	p := NewPlayer(strip(4, 100*time.Millisecond, true))

	p.Update(450 * time.Millisecond)

	if p.Frame() != 0 {
		t.Errorf("Frame() = %d, expected wrap to 0", p.Frame())
	}
	if p.Elapsed() != 50*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 50ms", p.Elapsed())
	}
}

func TestPlayerNonLoopStopsOnLastFrame(t *testing.T) {
	p := NewPlayer(strip(3, 100*time.Millisecond, false))

	p.Update(500 * time.Millisecond)
	if p.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", p.Frame())
	}
	if p.Playing() {
		t.Error("non-looping strip should stop after its last frame")
	}

	for range 10 {
		p.Update(time.Second)
	}
	if p.Frame() != 2 || p.Playing() {
		t.Errorf("stopped player moved: frame=%d playing=%v", p.Frame(), p.Playing())
	}
}

func TestPlayerSingleFrameNeverAdvances(t *testing.T) {
	for _, frames := range []int{0, 1} {
		p := NewPlayer(strip(frames, 10*time.Millisecond, true))
		p.Update(time.Second)
		if p.Frame() != 0 || p.Elapsed() != 0 {
			t.Errorf("%d-frame strip advanced: frame=%d elapsed=%v", frames, p.Frame(), p.Elapsed())
		}
	}
}

func TestPlayerPlayRestarts(t *testing.T) {
	p := NewPlayer(strip(3, 100*time.Millisecond, false))
	p.Update(time.Second)

	next := strip(4, 50*time.Millisecond, true)
	p.Play(next)

	if p.Descriptor() != next {
		t.Error("Play should switch descriptors")
	}
	if p.Frame() != 0 || p.Elapsed() != 0 || !p.Playing() {
		t.Errorf("Play should restart: frame=%d elapsed=%v playing=%v", p.Frame(), p.Elapsed(), p.Playing())
	}
	if p.FrameRect().W != 16 {
		t.Errorf("FrameRect().W = %v, expected 16", p.FrameRect().W)
	}
}

func TestBankLoadStrip(t *testing.T) {
	loader := fakeLoader{"walk_left.png": {w: 96, h: 24}}
	b := NewBank()
	key := Key{Pose: PoseWalking, Emotion: EmotionNeutral, Facing: FacingLeft}

	if err := b.LoadStrip(loader, key, "walk_left.png", 6, 80*time.Millisecond, true); err != nil {
		t.Fatalf("LoadStrip() failed: %v", err)
	}

	d, ok := b.Get(key)
	if !ok {
		t.Fatal("strip not registered")
	}
	if d.Len() != 6 || d.Frames[1].X != 16 {
		t.Errorf("unexpected frames: %+v", d.Frames)
	}

	if _, ok := b.Get(Key{Pose: PoseSleeping}); ok {
		t.Error("Get should miss unknown keys")
	}
}

func TestBankLoadStripErrors(t *testing.T) {
	b := NewBank()
	key := Key{Pose: PoseSitting}

	err := b.LoadStrip(fakeLoader{}, key, "nope.png", 2, time.Second, true)
	if err == nil || !strings.Contains(err.Error(), "nope.png") {
		t.Errorf("expected error naming the asset, got %v", err)
	}

	err = b.LoadStrip(fakeLoader{"a.png": {w: 8, h: 8}}, key, "a.png", 0, time.Second, true)
	if err == nil {
		t.Error("zero-frame strip should be rejected")
	}
	if b.Len() != 0 {
		t.Errorf("failed loads should not register strips, got %d", b.Len())
	}
}

func TestBankKeysSorted(t *testing.T) {
	b := NewBank()
	b.Insert(Key{Pose: PoseWalking, Facing: FacingRight}, strip(1, time.Second, true))
	b.Insert(Key{Pose: PoseStanding, Facing: FacingBack}, strip(1, time.Second, true))
	b.Insert(Key{Pose: PoseStanding, Facing: FacingFront}, strip(1, time.Second, true))

	keys := b.Keys()
	if len(keys) != 3 {
		t.Fatalf("Keys() returned %d keys", len(keys))
	}
	if keys[0].Facing != FacingFront || keys[1].Facing != FacingBack || keys[2].Pose != PoseWalking {
		t.Errorf("Keys() not sorted: %v", keys)
	}
}

func TestParseNames(t *testing.T) {
	p, err := ParsePose("Hind_Legs")
	if err != nil || p != PoseHindLegs {
		t.Errorf("ParsePose = %v, %v", p, err)
	}
	e, err := ParseEmotion(" sad ")
	if err != nil || e != EmotionSad {
		t.Errorf("ParseEmotion = %v, %v", e, err)
	}
	f, err := ParseFacing("back")
	if err != nil || f != FacingBack {
		t.Errorf("ParseFacing = %v, %v", f, err)
	}
	if _, err := ParsePose("flying"); err == nil {
		t.Error("ParsePose should reject unknown names")
	}

	k := Key{Pose: PoseWalking, Emotion: EmotionHappy, Facing: FacingLeft}
	if k.String() != "walking/happy/left" {
		t.Errorf("Key.String() = %q", k.String())
	}
}
