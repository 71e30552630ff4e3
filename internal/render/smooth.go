package render

import (
	"github.com/gogpu/gg"

	"KanjiDraw/internal/state"
)

// Spline steps per span. The stroke still being drawn gets fewer.
const (
	CommittedSteps = 48
	TransientSteps = 24
)

// Smooth flattens a quadratic B-spline through pts into a polyline.
//
// The curve starts at the first point and ends at the last; every interior
// point is the control point of one span whose ends are the midpoints of its
// neighbouring edges. Two points give a straight line. Fewer than two give nil.
func Smooth(pts []state.Point, steps int) []gg.Point {
	n := len(pts)
	if n < 2 {
		return nil
	}
	if n == 2 {
		return []gg.Point{toGG(pts[0]), toGG(pts[1])}
	}
	if steps < 1 {
		steps = 1
	}

	out := make([]gg.Point, 0, 1+(n-2)*steps)
	out = append(out, toGG(pts[0]))
	for i := 0; i < n-2; i++ {
		start := mid(pts[i], pts[i+1])
		if i == 0 {
			start = toGG(pts[0])
		}
		end := mid(pts[i+1], pts[i+2])
		if i == n-3 {
			end = toGG(pts[n-1])
		}
		q := gg.NewQuadBez(start, toGG(pts[i+1]), end)
		for k := 1; k <= steps; k++ {
			out = append(out, q.Eval(float64(k)/float64(steps)))
		}
	}
	return out
}

func toGG(p state.Point) gg.Point { return gg.Pt(p.X, p.Y) }

func mid(a, b state.Point) gg.Point {
	return gg.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}
