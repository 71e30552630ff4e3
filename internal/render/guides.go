package render

import (
	"math"

	"github.com/gogpu/gg"
)

// Guide dash pattern and width at resolution scale 1.
const (
	GuideDash  = 10.0
	GuideGap   = 10.0
	GuideWidth = 1.0
)

// Guides returns the horizontal and vertical dashed lines crossing at the
// centre of a surface with the given side. The dash phase is anchored so one
// dash is centred on the crossing, which keeps both halves of each line
// mirror images of each other.
func Guides(side float64, scale int) []Primitive {
	k := float64(scale)
	c := side / 2
	dash := gg.NewDash(GuideDash*k, GuideGap*k)
	// Pattern position at distance d is offset+d; put the middle of a dash at c.
	dash = dash.WithOffset(math.Mod(GuideDash*k/2-c, dash.PatternLength()))
	dash = dash.WithOffset(dash.NormalizedOffset())

	return []Primitive{
		{
			Kind:   Guide,
			Points: []gg.Point{gg.Pt(0, c), gg.Pt(side, c)},
			Width:  GuideWidth * k,
			Color:  GuideColor,
			Dash:   dash,
			Z:      ZGuide,
		},
		{
			Kind:   Guide,
			Points: []gg.Point{gg.Pt(c, 0), gg.Pt(c, side)},
			Width:  GuideWidth * k,
			Color:  GuideColor,
			Dash:   dash.Clone(),
			Z:      ZGuide,
		},
	}
}
