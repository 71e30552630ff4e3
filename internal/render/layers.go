package render

import (
	"image/color"
	"slices"

	"KanjiDraw/internal/state"
)

// Layer is one concentric pass of an antialiased stroke. Delta is added to
// the base thickness.
type Layer struct {
	Delta int
	Color color.NRGBA
}

func gray(y uint8) color.NRGBA { return color.NRGBA{R: y, G: y, B: y, A: 0xff} }

var (
	threeLayers = []Layer{
		{Delta: 2, Color: gray(0x88)},
		{Delta: 1, Color: gray(0xcc)},
		{Delta: 0, Color: Foreground},
	}
	fiveLayers = []Layer{
		{Delta: 4, Color: gray(0xaa)},
		{Delta: 3, Color: gray(0xbb)},
		{Delta: 2, Color: gray(0xcc)},
		{Delta: 1, Color: gray(0xdd)},
		{Delta: 0, Color: Foreground},
	}
	solid = []Layer{{Delta: 0, Color: Foreground}}
)

// Layers returns the passes for a stroke, widest first. Without antialiasing
// there is a single foreground pass.
func Layers(st state.Style) []Layer {
	if !st.Antialiasing {
		return slices.Clone(solid)
	}
	if st.Schedule == state.ThreeLayer {
		return slices.Clone(threeLayers)
	}
	return slices.Clone(fiveLayers)
}
