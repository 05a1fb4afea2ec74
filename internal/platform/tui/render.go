package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/dog"
	"github.com/vovakirdan/all-my-doggies/internal/game"
)

// Layout constants
const (
	MinWidth  = 80 // two gauge columns
	MinHeight = 22 // header, field, gauges and help

	gaugeBarWidth   = 12
	gaugeLabelWidth = 18
	gaugeRows       = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4)
	fieldBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("64"))

	grass       = lipgloss.Color("#3a5f2c")
	pausedColor = lipgloss.Color("#ffffaf")
)

// Renderer draws snapshots as terminal frames.
type Renderer struct {
	world core.Rect
	bar   progress.Model
	help  help.Model
	keys  gameKeys
}

// NewRenderer creates a renderer for a dog living in world.
func NewRenderer(world core.Rect) *Renderer {
	return &Renderer{
		world: world,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(gaugeBarWidth),
			progress.WithoutPercentage(),
		),
		help: help.New(),
		keys: defaultGameKeys(),
	}
}

// Render draws s into a width×height frame.
func (r *Renderer) Render(s game.Snapshot, width, height int) string {
	if width < MinWidth || height < MinHeight {
		msg := fmt.Sprintf("Terminal too small: %dx%d\nNeed at least %dx%d", width, height, MinWidth, MinHeight)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var content string
	switch st := s.State.(type) {
	case game.Splash:
		content = r.splashView(s)
	case game.MainMenu:
		content = r.menuView(s)
	case game.Playing:
		return r.playView(s, width, height, false)
	case game.Paused:
		return r.playView(s, width, height, true)
	case game.Quit:
		content = "Bye!"
	default:
		content = subtleStyle.Render(fmt.Sprintf("%s...", st))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *Renderer) splashView(s game.Snapshot) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("ALL MY DOGGIES"),
		"",
		"a dog that needs you",
		"",
		subtleStyle.Render("starting in "+countdown(s.SplashLeft)),
	)
	return boxStyle.Render(body)
}

func (r *Renderer) menuView(s game.Snapshot) string {
	lines := []string{titleStyle.Render("ALL MY DOGGIES"), ""}
	if s.Player != nil {
		lines = append(lines, fmt.Sprintf("Welcome, %s!", s.Player.Name))
	}
	if d := s.Dog; d != nil {
		lines = append(lines, fmt.Sprintf("%s is waiting for you.", describeDog(d)))
	}
	lines = append(lines,
		"",
		"Press Enter to play",
		"",
		subtleStyle.Render(r.help.FullHelpView(r.keys.FullHelp())),
	)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func describeDog(d *game.DogView) string {
	breed := strings.ReplaceAll(d.Breed.String(), "_", " ")
	return fmt.Sprintf("%s the %s (%s)", d.Name, breed, d.Gender)
}

func (r *Renderer) playView(s game.Snapshot, width, height int, paused bool) string {
	header := lipgloss.NewStyle().MaxWidth(width).Render(r.header(s))

	// header, field borders, gauges, help
	fieldW := width - 2
	fieldH := height - 1 - 2 - gaugeRows - 1
	field := NewCanvas(fieldW, fieldH, grass)
	if d := s.Dog; d != nil {
		r.drawDog(field, d)
	}
	if paused {
		field.DrawTextCentered(fieldH/2, " PAUSED ", pausedColor)
		field.DrawTextCentered(fieldH/2+1, " space to resume ", pausedColor)
	}

	parts := []string{header, fieldBorder.Render(field.String())}
	if d := s.Dog; d != nil {
		parts = append(parts, r.gauges(d.Needs))
	} else {
		parts = append(parts, strings.Repeat("\n", gaugeRows-1))
	}
	parts = append(parts, subtleStyle.Render(r.help.ShortHelpView(r.keys.ShortHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) header(s game.Snapshot) string {
	parts := []string{titleStyle.Render("All My Doggies")}
	if d := s.Dog; d != nil {
		parts[0] = titleStyle.Render(describeDog(d))
		parts = append(parts, "feeling "+d.Emotion.String())
	}
	parts = append(parts, s.Date.Format("Mon, 02 Jan 2006"))
	if s.Feedings > 0 {
		parts = append(parts, fmt.Sprintf("fed %d×", s.Feedings))
	}
	return strings.Join(parts, " · ")
}

// drawDog places the current animation frame on the field, scaling the
// world position to the cells left over by the sprite.
func (r *Renderer) drawDog(c *Canvas, d *game.DogView) {
	src, ok := d.Texture.(PixelSource)
	if !ok || d.Frame.Empty() {
		x, y := fieldPos(d.Position, r.world, c.Width()-1, c.Height()-1)
		c.Set(x, y, '@', lipgloss.Color("#ffffff"), "")
		return
	}

	fw, fh := int(d.Frame.W), int(d.Frame.H)
	rows := (fh + 1) / 2
	x, y := fieldPos(d.Position, r.world, c.Width()-fw, c.Height()-rows)
	c.DrawSprite(x, y, src, int(d.Frame.X), int(d.Frame.Y), fw, fh)
}

// fieldPos maps a world position onto a span of cols×rows cells.
func fieldPos(p core.Vec2, world core.Rect, cols, rows int) (int, int) {
	span := func(v, lo, size float64, cells int) int {
		if size <= 0 || cells <= 0 {
			return 0
		}
		f := core.ClampF((v-lo)/size, 0, 1)
		return int(math.Round(f * float64(cells)))
	}
	return span(p.X, world.X, world.W, cols), span(p.Y, world.Y, world.H, rows)
}

func (r *Renderer) gauges(n dog.Needs) string {
	gs := dog.Gauges()
	half := (len(gs) + 1) / 2
	col := func(gs []dog.Gauge) string {
		lines := make([]string, 0, len(gs))
		for _, g := range gs {
			lines = append(lines, r.gaugeLine(g, n[g]))
		}
		return strings.Join(lines, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, col(gs[:half]), "  ", col(gs[half:]))
}

func (r *Renderer) gaugeLine(g dog.Gauge, p core.Percent) string {
	label := strings.ReplaceAll(g.String(), "_", " ")
	return fmt.Sprintf("%-*s %s %5.1f%%", gaugeLabelWidth, label, r.bar.ViewAs(p.Fraction()), p.Value())
}

// countdown formats the time left on the splash screen.
func countdown(d time.Duration) string {
	return fmt.Sprintf("%ds", int(math.Ceil(d.Seconds())))
}
