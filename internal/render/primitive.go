// Package render turns the committed strokes, the surface geometry and the
// style into a flat list of drawable primitives. The host paints whatever list
// it receives; nothing here keeps a scene graph between recomputes.
package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Kind tells the host what a primitive belongs to.
type Kind uint8

const (
	// Guide is one of the dashed centre lines.
	Guide Kind = iota
	// Ink is a layer of a committed stroke.
	Ink
	// Preview is part of the stroke still being drawn.
	Preview
)

func (k Kind) String() string {
	switch k {
	case Guide:
		return "guide"
	case Ink:
		return "ink"
	case Preview:
		return "preview"
	default:
		return "unknown"
	}
}

// Z-order bases. Ink and preview layers add their pass index.
const (
	ZGuide   = 0
	ZInk     = 1
	ZPreview = 16
)

var (
	Foreground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Background = color.NRGBA{A: 0xff}
	GuideColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

// Primitive is an open polyline stroked with round caps and joins.
// Primitives are drawn in slice order, which is also ascending Z.
// Callers must not modify Points or Dash.
type Primitive struct {
	Kind   Kind
	Points []gg.Point
	Width  float64
	Color  color.NRGBA
	Dash   *gg.Dash
	Z      int
}

// Dashed reports whether the primitive is drawn with a dash pattern.
func (p Primitive) Dashed() bool { return p.Dash.IsDashed() }
