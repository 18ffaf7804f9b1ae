// Package rendertest provides an in-memory render backend that records draw
// calls, for tests that exercise drawing code without a GPU.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/archipelago/internal/render"
)

// Call is one recorded draw operation.
type Call struct {
	Op   string // "fill_rect", "stroke_rect", "circle", "text", "image"
	X, Y float64
	W, H float64
	Clr  color.Color
	Text string
}

// Renderer records operations issued against its images.
type Renderer struct {
	Calls []Call
}

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// NewImage creates a recording image.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{r: r, rect: image.Rect(0, 0, width, height)}
}

// FillRect records a filled rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill_rect", X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Clr: clr})
}

// StrokeRect records a rectangle outline.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "stroke_rect", X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Clr: clr})
}

// FillCircle records a circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "circle", X: float64(x), Y: float64(y), W: float64(radius), Clr: clr})
}

// DrawText records text output.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	r.Calls = append(r.Calls, Call{Op: "text", X: float64(x), Y: float64(y), Text: text})
}

// Count returns how many calls with the given op were recorded.
func (r *Renderer) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Image is a recording render.Image. Images drawn through DrawImage are
// logged on the renderer that created the destination.
type Image struct {
	r    *Renderer
	rect image.Rectangle
}

// NewImage creates a standalone image, e.g. a fake tileset texture.
func NewImage(r *Renderer, width, height int) *Image {
	return &Image{r: r, rect: image.Rect(0, 0, width, height)}
}

func (i *Image) Bounds() image.Rectangle { return i.rect }
func (i *Image) Size() (int, int) { return i.rect.Dx(), i.rect.Dy() }
func (i *Image) Fill(clr color.Color) {}
func (i *Image) Clear() {}
func (i *Image) Dispose() {}
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{r: i.r, rect: r.Intersect(i.rect)}
}

// DrawImage records the translation of the drawn image.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	if i.r == nil {
		return
	}
	c := Call{Op: "image"}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			c.X, c.Y = g.TX, g.TY
		}
	}
	b := src.Bounds()
	c.W, c.H = float64(b.Dx()), float64(b.Dy())
	i.r.Calls = append(i.r.Calls, c)
}

// GeoM tracks translation only.
type GeoM struct {
	TX, TY float64
}

func (g *GeoM) Translate(tx, ty float64) { g.TX += tx; g.TY += ty }
func (g *GeoM) Scale(sx, sy float64) { g.TX *= sx; g.TY *= sy }
func (g *GeoM) Reset() { g.TX, g.TY = 0, 0 }

// Loader serves images from a map of paths; missing paths fail.
type Loader struct {
	R      *Renderer
	Images map[string][2]int
}

// LoadImage returns a recording image of the registered size.
func (l *Loader) LoadImage(path string) (render.Image, error) {
	size, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("rendertest: no image registered for %s", path)
	}
	return NewImage(l.R, size[0], size[1]), nil
}
