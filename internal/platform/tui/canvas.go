package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// alphaCutoff is the alpha below which a sprite pixel counts as transparent.
const alphaCutoff = 128

// PixelSource is a sprite sheet with addressable pixels.
// *assets.Image implements it.
type PixelSource interface {
	Width() int
	Height() int
	At(x, y int) color.NRGBA
}

type cell struct {
	r      rune
	fg, bg lipgloss.Color
}

// Canvas is a grid of colored cells. Sprites are drawn with half blocks,
// so every cell holds two pixel rows.
type Canvas struct {
	width  int
	height int
	bg     lipgloss.Color
	cells  []cell
}

// NewCanvas creates a canvas filled with spaces on bg.
func NewCanvas(width, height int, bg lipgloss.Color) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
		bg:     bg,
	}
	c.cells = make([]cell, c.width*c.height)
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Clear fills the canvas with background spaces.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', bg: c.bg}
	}
}

// Set places a rune. Out-of-bounds coordinates are silently ignored.
// An empty bg keeps the canvas background.
func (c *Canvas) Set(x, y int, r rune, fg, bg lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if bg == "" {
		bg = c.bg
	}
	c.cells[y*c.width+x] = cell{r: r, fg: fg, bg: bg}
}

// Rune returns the rune at the given position, or a space out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y*c.width+x].r
}

// DrawText writes text horizontally starting at (x, y), clipped to the canvas.
func (c *Canvas) DrawText(x, y int, text string, fg lipgloss.Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, fg, "")
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (c *Canvas) DrawTextCentered(y int, text string, fg lipgloss.Color) {
	x := (c.width - len([]rune(text))) / 2
	c.DrawText(x, y, text, fg)
}

// DrawSprite draws the frame of src whose top-left pixel is (fx, fy) and
// size fw×fh at cell (x, y). Transparent pixels keep the canvas background.
func (c *Canvas) DrawSprite(x, y int, src PixelSource, fx, fy, fw, fh int) {
	for py := 0; py < fh; py += 2 {
		for px := 0; px < fw; px++ {
			top := c.pixel(src, fx+px, fy+py)
			var bottom color.NRGBA
			if py+1 < fh {
				bottom = c.pixel(src, fx+px, fy+py+1)
			}

			topOn, bottomOn := top.A >= alphaCutoff, bottom.A >= alphaCutoff
			switch {
			case topOn && bottomOn:
				c.Set(x+px, y+py/2, '▀', hexColor(top), hexColor(bottom))
			case topOn:
				c.Set(x+px, y+py/2, '▀', hexColor(top), "")
			case bottomOn:
				c.Set(x+px, y+py/2, '▄', hexColor(bottom), "")
			}
		}
	}
}

func (c *Canvas) pixel(src PixelSource, x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= src.Width() || y >= src.Height() {
		return color.NRGBA{}
	}
	return src.At(x, y)
}

func hexColor(p color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B))
}

// String renders the canvas. Adjacent cells with the same colors are
// grouped to minimize ANSI escape sequences.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)
	styles := make(map[[2]lipgloss.Color]lipgloss.Style)

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]

		x := 0
		for x < len(row) {
			fg, bg := row[x].fg, row[x].bg

			var run strings.Builder
			for x < len(row) && row[x].fg == fg && row[x].bg == bg {
				run.WriteRune(row[x].r)
				x++
			}

			k := [2]lipgloss.Color{fg, bg}
			style, ok := styles[k]
			if !ok {
				style = lipgloss.NewStyle()
				if fg != "" {
					style = style.Foreground(fg)
				}
				if bg != "" {
					style = style.Background(bg)
				}
				styles[k] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
