package state

import "math"

// Point is a position in surface space.
type Point struct{ X, Y float64 }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Finite reports whether both coordinates are real numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Stroke is one pointer-down to pointer-up path. Points are kept in capture order.
type Stroke struct {
	ID     string
	Points []Point
}

// Visible reports whether the stroke has at least one segment to draw.
func (s Stroke) Visible() bool { return len(s.Points) >= 2 }

// Clone returns a copy that shares no memory with s.
func (s Stroke) Clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return Stroke{ID: s.ID, Points: pts}
}

func (s *Stroke) scale(f float64) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].Scale(f)
	}
}
