package render_test

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/require"

	"KanjiDraw/internal/render"
)

func TestGuidesCrossAtCentre(t *testing.T) {
	require := require.New(t)
	g := render.Guides(800, 1)
	require.Len(g, 2)

	require.Equal([]gg.Point{gg.Pt(0, 400), gg.Pt(800, 400)}, g[0].Points)
	require.Equal([]gg.Point{gg.Pt(400, 0), gg.Pt(400, 800)}, g[1].Points)
	for _, p := range g {
		require.Equal(render.Guide, p.Kind)
		require.Equal(render.GuideColor, p.Color)
		require.Equal(1.0, p.Width)
		require.True(p.Dashed())
		require.Equal([]float64{10, 10}, p.Dash.Array)
	}
}

func TestGuidesCentreADashOnTheCrossing(t *testing.T) {
	for _, side := range []float64{800, 733, 120} {
		g := render.Guides(side, 1)
		phase := math.Mod(g[0].Dash.Offset+side/2, g[0].Dash.PatternLength())
		require.InDelta(t, render.GuideDash/2, phase, 1e-9, "side %v", side)
	}
}

func TestGuidesFollowScale(t *testing.T) {
	g := render.Guides(1600, 2)
	require.Equal(t, 2.0, g[0].Width)
	require.Equal(t, []float64{20, 20}, g[0].Dash.Array)
}
