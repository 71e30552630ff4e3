// Package raster paints render primitives into a square RGBA frame.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"KanjiDraw/internal/render"
)

// MaxSide caps the frame side in pixels. Surfaces with a larger side are
// painted downscaled.
const MaxSide = 2048

// FrameSide returns the pixel side used for a surface of the given side,
// rounded up and capped at MaxSide.
func FrameSide(side float64) int {
	if math.IsNaN(side) || side < 1 {
		return 1
	}
	return int(math.Min(math.Ceil(side), MaxSide))
}

// Painter strokes primitives through one gg.Context that it keeps across
// calls. The frame returned by Frame shares its pixels with the context, so
// painting never copies the image.
//
// Primitive coordinates are in surface units; Render fixes how many pixels
// one surface unit covers until the next Render.
type Painter struct {
	dc    *gg.Context
	pm    *gg.Pixmap
	frame *image.RGBA
	bg    gg.RGBA
	k     float64
}

// NewPainter returns a painter with a px×px frame filled with bg.
func NewPainter(px int, bg color.Color) *Painter {
	p := &Painter{bg: gg.FromColor(bg), k: 1}
	p.alloc(max(px, 1))
	return p
}

func (p *Painter) alloc(px int) {
	p.pm = gg.NewPixmap(px, px)
	p.dc = gg.NewContext(px, px, gg.WithPixmap(p.pm))
	p.frame = &image.RGBA{
		Pix:    p.pm.Data(),
		Stride: 4 * px,
		Rect:   image.Rect(0, 0, px, px),
	}
	p.pm.Clear(p.bg)
}

// Frame returns the painted image. It stays valid until the next Render
// that changes the frame size.
func (p *Painter) Frame() *image.RGBA { return p.frame }

// Side returns the frame side in pixels.
func (p *Painter) Side() int { return p.pm.Width() }

// Render repaints the whole frame: a surface of the given side is fitted to
// FrameSide(side) pixels, cleared to the background and scene painted over
// it. The context is only reallocated when the pixel side changes.
func (p *Painter) Render(scene []render.Primitive, side float64) {
	px := FrameSide(side)
	if px != p.pm.Width() {
		p.alloc(px)
	} else {
		p.pm.Clear(p.bg)
	}
	p.k = 1
	if side > 0 {
		p.k = float64(px) / side
	}
	for _, prim := range scene {
		p.stroke(prim)
	}
}

// Paint draws prims over the current frame and returns the pixel rectangle
// they touched. Each primitive is clipped to its own bounds, so the work
// follows the size of the primitives, not of the frame.
func (p *Painter) Paint(prims []render.Primitive) image.Rectangle {
	var dirty image.Rectangle
	for _, prim := range prims {
		r := p.bounds(prim)
		if r.Empty() {
			continue
		}
		p.dc.Push()
		p.dc.ClipRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		p.stroke(prim)
		p.dc.Pop()
		dirty = dirty.Union(r)
	}
	return dirty
}

func visible(prim render.Primitive) bool {
	return len(prim.Points) >= 2 && prim.Width > 0 && prim.Color.A != 0
}

// bounds is the pixel rectangle covered by prim, stroke width included.
func (p *Painter) bounds(prim render.Primitive) image.Rectangle {
	if !visible(prim) {
		return image.Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range prim.Points {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	pad := prim.Width/2 + 1
	r := image.Rect(
		int(math.Floor((minX-pad)*p.k)), int(math.Floor((minY-pad)*p.k)),
		int(math.Ceil((maxX+pad)*p.k)), int(math.Ceil((maxY+pad)*p.k)),
	)
	return r.Intersect(p.frame.Rect)
}

func (p *Painter) stroke(prim render.Primitive) {
	if !visible(prim) {
		return
	}
	st := gg.RoundStroke().WithWidth(prim.Width * p.k)
	if prim.Dashed() {
		st = st.WithDash(prim.Dash.Scale(p.k))
	}
	p.dc.SetStroke(st)
	p.dc.SetColor(prim.Color)

	p.dc.MoveTo(prim.Points[0].X*p.k, prim.Points[0].Y*p.k)
	for _, pt := range prim.Points[1:] {
		p.dc.LineTo(pt.X*p.k, pt.Y*p.k)
	}
	// Stroke clears the path even when it fails; a failed primitive is
	// just missing from the frame.
	_ = p.dc.Stroke()
}
