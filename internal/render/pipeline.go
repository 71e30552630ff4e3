package render

import (
	"github.com/gogpu/gg"

	"KanjiDraw/internal/state"
)

// Frame is everything a recompute reads.
type Frame struct {
	History *state.History
	Space   *state.Space
	Style   state.Style
	// Current is the stroke being captured; empty when idle.
	Current state.Stroke
}

// Pipeline holds the primitives of the last recompute, split by kind so the
// fast path can append to the preview without touching the rest.
type Pipeline struct {
	guides  []Primitive
	ink     []Primitive
	preview []Primitive
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Full recomputes the whole scene from f. It depends on nothing but f, so
// calling it twice without a state change yields the same scene.
func (p *Pipeline) Full(f Frame) {
	scale := f.Space.Scale()
	p.guides = Guides(f.Space.Side(), scale)

	layers := Layers(f.Style)
	paths := make([][]gg.Point, 0, f.History.Len())
	f.History.Each(func(s state.Stroke) {
		if s.Visible() {
			paths = append(paths, Smooth(s.Points, CommittedSteps))
		}
	})
	p.ink = layered(paths, layers, f.Style.Thickness, scale, Ink, ZInk)

	p.preview = nil
	if f.Current.Visible() {
		cur := [][]gg.Point{Smooth(f.Current.Points, TransientSteps)}
		p.preview = layered(cur, layers, f.Style.Thickness, scale, Preview, ZPreview)
	}
}

// Fast appends a single straight segment for a newly accepted point. Guides
// and committed ink are left as they are; the next Full replaces the preview.
func (p *Pipeline) Fast(from, to state.Point, st state.Style, scale int) Primitive {
	prim := Primitive{
		Kind:   Preview,
		Points: []gg.Point{toGG(from), toGG(to)},
		Width:  float64(st.Thickness * scale),
		Color:  Foreground,
		Z:      ZPreview,
	}
	p.preview = append(p.preview, prim)
	return prim
}

// Scene returns the primitives to paint, bottom first.
func (p *Pipeline) Scene() []Primitive {
	out := make([]Primitive, 0, len(p.guides)+len(p.ink)+len(p.preview))
	out = append(out, p.guides...)
	out = append(out, p.ink...)
	out = append(out, p.preview...)
	return out
}

// Len returns the number of primitives in the current scene.
func (p *Pipeline) Len() int {
	return len(p.guides) + len(p.ink) + len(p.preview)
}

// layered emits every pass across all paths before moving to the next one,
// so a stroke's outer halo never covers the core of a stroke drawn before it.
func layered(paths [][]gg.Point, layers []Layer, thickness, scale int, kind Kind, z int) []Primitive {
	out := make([]Primitive, 0, len(paths)*len(layers))
	for i, l := range layers {
		w := float64((thickness + l.Delta) * scale)
		for _, pts := range paths {
			out = append(out, Primitive{
				Kind:   kind,
				Points: pts,
				Width:  w,
				Color:  l.Color,
				Z:      z + i,
			})
		}
	}
	return out
}
