// Package assets loads sprite strips from PNG files, either from a
// directory on disk or from the sprites built into the binary.
package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"os"
	"sync"

	"github.com/vovakirdan/all-my-doggies/internal/anim"
)

//go:embed dog/*.png
var builtin embed.FS

// Image is a decoded sprite sheet. It implements anim.Texture and is never
// modified after loading, so frontends may read it from any goroutine.
type Image struct {
	path string
	img  *image.NRGBA
}

// NewImage wraps an already decoded image.
func NewImage(path string, src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{path: path, img: dst}
}

// Width implements anim.Texture.
func (i *Image) Width() int { return i.img.Rect.Dx() }

// Height implements anim.Texture.
func (i *Image) Height() int { return i.img.Rect.Dy() }

// Path returns the path the image was loaded from.
func (i *Image) Path() string { return i.path }

// NRGBA returns the pixels. Callers must not modify them.
func (i *Image) NRGBA() *image.NRGBA { return i.img }

// At returns the pixel at x, y, transparent outside the image.
func (i *Image) At(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(i.img.Rect) {
		return color.NRGBA{}
	}
	return i.img.NRGBAAt(x, y)
}

// Loader decodes PNG files from a file system and caches them by path, so
// strips cut from the same sheet share one Image.
type Loader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]*Image
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]*Image)}
}

// NewDirLoader creates a loader rooted at dir.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Builtin returns a loader over the sprites compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtin, "dog")
	if err != nil {
		panic(err) // "dog" is a fixed, valid path
	}
	return NewLoader(sub)
}

// Load implements anim.TextureLoader.
func (l *Loader) Load(path string) (anim.Texture, error) {
	img, err := l.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadImage decodes the PNG at path.
func (l *Loader) LoadImage(path string) (*Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}

	img := NewImage(path, src)
	l.cache[path] = img
	return img, nil
}

// Loaded returns how many distinct images are cached.
func (l *Loader) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}
