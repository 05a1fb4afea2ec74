package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/all-my-doggies/internal/assets"
)

func TestCanvasTextClips(t *testing.T) {
	c := NewCanvas(5, 2, "")
	c.DrawText(3, 0, "dog", "")
	c.DrawText(0, 5, "off", "")

	if got := c.Rune(3, 0); got != 'd' {
		t.Errorf("expected 'd' at (3,0), got %q", got)
	}
	if got := c.Rune(4, 0); got != 'o' {
		t.Errorf("expected 'o' at (4,0), got %q", got)
	}
	if got := c.Rune(9, 9); got != ' ' {
		t.Errorf("out of bounds should read as space, got %q", got)
	}
}

func TestCanvasCentered(t *testing.T) {
	c := NewCanvas(10, 1, "")
	c.DrawTextCentered(0, "ab", "")
	if c.Rune(4, 0) != 'a' || c.Rune(5, 0) != 'b' {
		t.Errorf("expected centered text, got %q", c.String())
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2, "")
	c.DrawText(0, 0, "abc", "")
	c.DrawText(0, 1, "de", lipgloss.Color("#ff0000"))

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "abc") || !strings.Contains(lines[1], "de") {
		t.Errorf("unexpected output %q", lines)
	}
}

func TestCanvasNegativeSize(t *testing.T) {
	c := NewCanvas(-3, -1, "")
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("expected empty canvas, got %dx%d", c.Width(), c.Height())
	}
	c.Set(0, 0, 'x', "", "")
	if c.String() != "" {
		t.Errorf("expected empty output, got %q", c.String())
	}
}

func TestDrawSpriteHalfBlocks(t *testing.T) {
	// column 0: both rows opaque, column 1: top only, column 2: bottom only,
	// column 3: transparent
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	red := color.NRGBA{R: 255, A: 255}
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(0, 1, red)
	src.SetNRGBA(1, 0, red)
	src.SetNRGBA(2, 1, red)
	img := assets.NewImage("test.png", src)

	c := NewCanvas(6, 2, "")
	c.DrawSprite(1, 1, img, 0, 0, 4, 2)

	want := []rune{'▀', '▀', '▄', ' '}
	for i, r := range want {
		if got := c.Rune(1+i, 1); got != r {
			t.Errorf("cell %d: expected %q, got %q", i, r, got)
		}
	}
	if c.Rune(1, 0) != ' ' {
		t.Error("sprite should not touch the row above")
	}
}

func TestDrawSpriteFrameOffset(t *testing.T) {
	// two 1×2 frames side by side; only the second is opaque
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img := assets.NewImage("strip.png", src)

	c := NewCanvas(1, 1, "")
	c.DrawSprite(0, 0, img, 0, 0, 1, 2)
	if c.Rune(0, 0) != ' ' {
		t.Error("first frame is transparent")
	}
	c.DrawSprite(0, 0, img, 1, 0, 1, 2)
	if c.Rune(0, 0) != '▀' {
		t.Errorf("expected second frame drawn, got %q", c.Rune(0, 0))
	}
}
