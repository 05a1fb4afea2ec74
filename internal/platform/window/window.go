// Package window plays the game in a desktop window drawn with raylib.
//
// raylib must be driven from the main OS thread, so Run blocks the calling
// goroutine, which has to be the program's main goroutine.
package window

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
	"github.com/vovakirdan/all-my-doggies/internal/app"
	"github.com/vovakirdan/all-my-doggies/internal/config"
	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
	"github.com/vovakirdan/all-my-doggies/internal/game"
)

// Layout in window pixels.
const (
	spriteScale = 2
	headerH     = 40
	gaugeH      = 26
	gaugeBarW   = 180
	fontSize    = 20
)

var (
	grass      = rl.NewColor(58, 95, 44, 255)
	panel      = rl.NewColor(30, 30, 36, 255)
	barEmpty   = rl.NewColor(70, 70, 80, 255)
	barFull    = rl.NewColor(124, 196, 92, 255)
	barLow     = rl.NewColor(214, 88, 72, 255)
	titleColor = rl.NewColor(255, 255, 175, 255)
)

// imageSource is a texture that carries its decoded pixels.
// *assets.Image implements it.
type imageSource interface {
	NRGBA() *image.NRGBA
}

// Host is a loop.Host backed by a raylib window.
type Host struct {
	cfg      config.WindowConfig
	world    core.Rect
	fieldTop int32
	textures map[anim.Texture]rl.Texture2D
	failed   map[anim.Texture]bool
	logger   *log.Logger
}

// Open creates the window. The dog's world is drawn one to one below the
// header, scaled by the sprite scale only for the sprite itself.
func Open(cfg config.WindowConfig, world core.Rect, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)

	return &Host{
		cfg:      cfg,
		world:    world,
		fieldTop: headerH,
		textures: make(map[anim.Texture]rl.Texture2D),
		failed:   make(map[anim.Texture]bool),
		logger:   logger,
	}
}

// Close releases every uploaded texture and closes the window.
func (h *Host) Close() {
	for _, t := range h.textures {
		rl.UnloadTexture(t)
	}
	clear(h.textures)
	rl.CloseWindow()
}

// ShouldClose implements loop.Host.
func (h *Host) ShouldClose() bool {
	return rl.WindowShouldClose()
}

type binding struct {
	keys   []int32
	action core.Action
}

var (
	heldBindings = []binding{
		{[]int32{rl.KeyW, rl.KeyUp}, core.ActionUp},
		{[]int32{rl.KeyS, rl.KeyDown}, core.ActionDown},
		{[]int32{rl.KeyA, rl.KeyLeft}, core.ActionLeft},
		{[]int32{rl.KeyD, rl.KeyRight}, core.ActionRight},
	}
	pressBindings = []binding{
		{[]int32{rl.KeyEnter, rl.KeyKpEnter}, core.ActionConfirm},
		{[]int32{rl.KeySpace, rl.KeyP}, core.ActionPause},
		{[]int32{rl.KeyF}, core.ActionFeed},
		{[]int32{rl.KeyQ}, core.ActionQuit},
	}
)

// Poll implements loop.Host. Movement follows keys held down right now;
// everything else fires once per press.
func (h *Host) Poll() core.InputFrame {
	in := core.NewInputFrame()
	collect(&in, heldBindings, rl.IsKeyDown)
	collect(&in, pressBindings, rl.IsKeyPressed)
	return in
}

func collect(in *core.InputFrame, bindings []binding, active func(int32) bool) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if active(k) {
				in.Set(b.action)
				break
			}
		}
	}
}

// Render implements loop.Host.
func (h *Host) Render(s game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	switch s.State.(type) {
	case game.Splash:
		rl.ClearBackground(rl.Black)
		h.centered("ALL MY DOGGIES", h.cfg.Height/2-40, 40, titleColor)
		h.centered("starting in "+countdown(s), h.cfg.Height/2+20, fontSize, rl.LightGray)
	case game.MainMenu:
		rl.ClearBackground(rl.Black)
		h.centered("ALL MY DOGGIES", h.cfg.Height/2-80, 40, titleColor)
		if d := s.Dog; d != nil {
			h.centered(describeDog(d)+" is waiting for you.", h.cfg.Height/2-10, fontSize, rl.RayWhite)
		}
		h.centered("Press Enter to play", h.cfg.Height/2+30, fontSize, rl.LightGray)
		h.centered("WASD walk   F feed   Space pause   Q quit", h.cfg.Height/2+70, 16, rl.Gray)
	case game.Playing, game.Paused:
		h.drawPlay(s)
	default:
		rl.ClearBackground(rl.Black)
	}
}

func (h *Host) drawPlay(s game.Snapshot) {
	rl.ClearBackground(panel)
	fieldH := int32(h.world.H) + 24*spriteScale
	rl.DrawRectangle(0, h.fieldTop, int32(h.cfg.Width), fieldH, grass)

	header := s.Date.Format("Mon, 02 Jan 2006")
	if d := s.Dog; d != nil {
		header = fmt.Sprintf("%s, feeling %s   %s", describeDog(d), d.Emotion, header)
		h.drawDog(d)
		h.drawGauges(d.Needs, h.fieldTop+fieldH+10)
	}
	if s.Feedings > 0 {
		header += fmt.Sprintf("   fed %d times", s.Feedings)
	}
	rl.DrawText(header, 10, 10, fontSize, rl.RayWhite)

	if _, paused := s.State.(game.Paused); paused {
		rl.DrawRectangle(0, 0, int32(h.cfg.Width), int32(h.cfg.Height), rl.Fade(rl.Black, 0.5))
		h.centered("PAUSED", h.cfg.Height/2-20, 40, titleColor)
		h.centered("space to resume", h.cfg.Height/2+30, fontSize, rl.LightGray)
	}
}

func (h *Host) drawDog(d *game.DogView) {
	x := float32(d.Position.X - h.world.X)
	y := float32(d.Position.Y-h.world.Y) + float32(h.fieldTop)

	tex, ok := h.texture(d.Texture)
	if !ok || d.Frame.Empty() {
		rl.DrawRectangle(int32(x), int32(y), 32*spriteScale, 24*spriteScale, rl.Brown)
		return
	}

	src := rl.NewRectangle(float32(d.Frame.X), float32(d.Frame.Y), float32(d.Frame.W), float32(d.Frame.H))
	dst := rl.NewRectangle(x, y, float32(d.Frame.W)*spriteScale, float32(d.Frame.H)*spriteScale)
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

// texture uploads t on first use. Failures are logged once and the dog is
// drawn as a placeholder from then on.
func (h *Host) texture(t anim.Texture) (rl.Texture2D, bool) {
	if t == nil || h.failed[t] {
		return rl.Texture2D{}, false
	}
	if tex, ok := h.textures[t]; ok {
		return tex, true
	}

	src, ok := t.(imageSource)
	if !ok {
		h.logger.Warn("texture has no pixels", "type", fmt.Sprintf("%T", t))
		h.failed[t] = true
		return rl.Texture2D{}, false
	}
	img := rl.NewImageFromImage(src.NRGBA())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		h.logger.Warn("cannot upload texture", "width", t.Width(), "height", t.Height())
		h.failed[t] = true
		return rl.Texture2D{}, false
	}
	rl.SetTextureFilter(tex, rl.FilterPoint)
	h.textures[t] = tex
	return tex, true
}

func (h *Host) drawGauges(n dog.Needs, top int32) {
	gs := dog.Gauges()
	half := (len(gs) + 1) / 2
	colW := int32(h.cfg.Width / 2)
	for i, g := range gs {
		col, row := int32(i/half), int32(i%half)
		x := 10 + col*colW
		y := top + row*gaugeH

		p := n[g]
		label := strings.ReplaceAll(g.String(), "_", " ")
		rl.DrawText(label, x, y, 16, rl.RayWhite)

		bx := x + 170
		fill := barFull
		if p.Fraction() < 0.25 {
			fill = barLow
		}
		rl.DrawRectangle(bx, y, gaugeBarW, 16, barEmpty)
		rl.DrawRectangle(bx, y, int32(p.Fraction()*gaugeBarW), 16, fill)
		rl.DrawText(fmt.Sprintf("%3.0f%%", p.Value()), bx+gaugeBarW+8, y, 16, rl.RayWhite)
	}
}

func (h *Host) centered(text string, y, size int, c rl.Color) {
	w := rl.MeasureText(text, int32(size))
	rl.DrawText(text, (int32(h.cfg.Width)-w)/2, int32(y), int32(size), c)
}

func describeDog(d *game.DogView) string {
	breed := strings.ReplaceAll(d.Breed.String(), "_", " ")
	return fmt.Sprintf("%s the %s (%s)", d.Name, breed, d.Gender)
}

func countdown(s game.Snapshot) string {
	return fmt.Sprintf("%ds", int(math.Ceil(s.SplashLeft.Seconds())))
}

// Run opens the window and plays sess until the window closes, the game
// quits or ctx is done. It must be called from the main goroutine.
func Run(ctx context.Context, sess *app.Session, cfg config.Config, logger *log.Logger) error {
	h := Open(cfg.Window, cfg.World(), logger)
	defer h.Close()
	return sess.Run(ctx, h)
}
