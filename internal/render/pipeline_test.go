package render_test

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"KanjiDraw/internal/render"
	"KanjiDraw/internal/state"
)

type PipelineSuite struct {
	suite.Suite
	h     *state.History
	sp    *state.Space
	style state.Style
	p     *render.Pipeline
}

func (s *PipelineSuite) SetupTest() {
	s.h = state.NewHistory()
	s.sp = state.NewSpace(800, state.DefaultMinSize, 1, s.h)
	s.style = state.DefaultStyle()
	s.p = render.NewPipeline()
}

func (s *PipelineSuite) frame() render.Frame {
	return render.Frame{History: s.h, Space: s.sp, Style: s.style}
}

func (s *PipelineSuite) push(pts ...state.Point) {
	s.h.Push(state.Stroke{ID: "s", Points: pts})
}

func byKind(scene []render.Primitive, k render.Kind) []render.Primitive {
	var out []render.Primitive
	for _, p := range scene {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

func widths(prims []render.Primitive) []float64 {
	out := make([]float64, len(prims))
	for i, p := range prims {
		out[i] = p.Width
	}
	return out
}

func (s *PipelineSuite) TestFiveLayerOrdering() {
	require := require.New(s.T())
	s.style.Thickness = 6
	s.push(state.Point{X: 10, Y: 10}, state.Point{X: 10, Y: 40})
	s.p.Full(s.frame())

	ink := byKind(s.p.Scene(), render.Ink)
	require.Equal([]float64{10, 9, 8, 7, 6}, widths(ink))
	for i := 1; i < len(ink); i++ {
		require.Greater(ink[i-1].Width, ink[i].Width)
		require.Greater(ink[i].Z, ink[i-1].Z)
	}
	require.Equal(render.Foreground, ink[len(ink)-1].Color)
	for _, p := range ink[:len(ink)-1] {
		require.NotEqual(render.Foreground, p.Color)
		require.Equal(p.Color.R, p.Color.G, "halo layers are gray")
	}
}

func (s *PipelineSuite) TestThreeLayerScene() {
	require := require.New(s.T())
	s.style.Thickness = 6
	s.style.Schedule = state.ThreeLayer
	s.push(state.Point{X: 10, Y: 10}, state.Point{X: 10, Y: 40})
	s.p.Full(s.frame())

	scene := s.p.Scene()
	require.Len(scene, 5)
	require.Len(byKind(scene, render.Guide), 2)

	ink := byKind(scene, render.Ink)
	require.Equal([]float64{8, 7, 6}, widths(ink))
	for _, p := range ink {
		require.Equal([]gg.Point{gg.Pt(10, 10), gg.Pt(10, 40)}, p.Points)
	}
	require.Equal(render.Foreground, ink[2].Color)
}

func (s *PipelineSuite) TestWithoutAntialiasing() {
	require := require.New(s.T())
	s.style.Antialiasing = false
	s.push(state.Point{X: 0, Y: 0}, state.Point{X: 50, Y: 50})
	s.p.Full(s.frame())

	ink := byKind(s.p.Scene(), render.Ink)
	require.Len(ink, 1)
	require.Equal(float64(s.style.Thickness), ink[0].Width)
	require.Equal(render.Foreground, ink[0].Color)
}

func (s *PipelineSuite) TestSinglePointStrokeIsInvisible() {
	s.push(state.Point{X: 5, Y: 5})
	s.p.Full(s.frame())
	require.Empty(s.T(), byKind(s.p.Scene(), render.Ink))
	require.Len(s.T(), s.p.Scene(), 2, "guides only")
}

func (s *PipelineSuite) TestLayersArePassMajorAcrossStrokes() {
	require := require.New(s.T())
	s.style.Schedule = state.ThreeLayer
	s.push(state.Point{X: 0, Y: 0}, state.Point{X: 10, Y: 0})
	s.push(state.Point{X: 0, Y: 20}, state.Point{X: 10, Y: 20})
	s.p.Full(s.frame())

	ink := byKind(s.p.Scene(), render.Ink)
	require.Len(ink, 6)
	t := float64(s.style.Thickness)
	require.Equal([]float64{t + 2, t + 2, t + 1, t + 1, t, t}, widths(ink))
}

func (s *PipelineSuite) TestFullIsIdempotent() {
	s.push(state.Point{X: 0, Y: 0}, state.Point{X: 30, Y: 40}, state.Point{X: 90, Y: 10})
	s.push(state.Point{X: 200, Y: 200}, state.Point{X: 300, Y: 300})
	s.p.Full(s.frame())
	first := s.p.Scene()
	s.p.Full(s.frame())
	require.Equal(s.T(), first, s.p.Scene())
}

func (s *PipelineSuite) TestFastAppendsOnePrimitive() {
	require := require.New(s.T())
	s.push(state.Point{X: 0, Y: 0}, state.Point{X: 30, Y: 40})
	s.p.Full(s.frame())
	before := s.p.Scene()

	prim := s.p.Fast(state.Point{X: 1, Y: 2}, state.Point{X: 3, Y: 9}, s.style, 1)
	after := s.p.Scene()
	require.Len(after, len(before)+1)
	require.Equal(before, after[:len(before)], "guides and ink untouched")
	require.Equal(prim, after[len(after)-1])
	require.Equal(render.Preview, prim.Kind)
	require.Equal([]gg.Point{gg.Pt(1, 2), gg.Pt(3, 9)}, prim.Points)
	require.Equal(float64(s.style.Thickness), prim.Width)
	require.Equal(render.Foreground, prim.Color)

	s.p.Full(s.frame())
	require.Equal(before, s.p.Scene(), "full recompute supersedes the fast preview")
}

func (s *PipelineSuite) TestFullRendersCurrentStroke() {
	require := require.New(s.T())
	f := s.frame()
	f.Current = state.Stroke{Points: []state.Point{{X: 0, Y: 0}, {X: 40, Y: 40}, {X: 80, Y: 0}}}
	s.p.Full(f)

	preview := byKind(s.p.Scene(), render.Preview)
	require.Len(preview, 5)
	require.Len(preview[0].Points, 1+render.TransientSteps)
	for _, p := range preview {
		require.GreaterOrEqual(p.Z, render.ZPreview)
	}
}

func (s *PipelineSuite) TestScaleMultipliesWidths() {
	require := require.New(s.T())
	s.sp.SetScale(2)
	s.style.Thickness = 6
	s.style.Schedule = state.ThreeLayer
	s.push(state.Point{X: 0, Y: 0}, state.Point{X: 100, Y: 0})
	s.p.Full(s.frame())

	scene := s.p.Scene()
	require.Equal([]float64{16, 14, 12}, widths(byKind(scene, render.Ink)))
	guides := byKind(scene, render.Guide)
	require.Equal(2.0, guides[0].Width)
	require.Equal(gg.Pt(1600, 800), guides[0].Points[1])
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func TestLayersReturnsCopy(t *testing.T) {
	st := state.DefaultStyle()
	l := render.Layers(st)
	l[0].Delta = 99
	require.Equal(t, 4, render.Layers(st)[0].Delta)
}
