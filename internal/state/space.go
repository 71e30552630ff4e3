package state

import "math"

const (
	DefaultSize          = 800.0
	DefaultMinSize       = 100.0
	DefaultResizeEpsilon = 10.0
	DefaultPadding       = 40.0

	MinScale = 1
	MaxScale = 32
)

// Scaler is anything holding geometry that follows the surface when it is
// rescaled.
type Scaler interface {
	Scale(f float64)
}

// Space owns the side length of the square drawing surface and keeps stored
// geometry proportional to it.
//
// Size is in display units. Scale is the resolution multiplier: surface
// coordinates are display coordinates times Scale, so the surface side is
// Size*Scale.
type Space struct {
	size    float64
	scale   int
	targets []Scaler

	MinSize float64
	Epsilon float64
	Padding float64
}

// NewSpace returns a space of the given side length and resolution scale
// whose rescales are applied to targets in order. size is raised to minSize
// and scale clamped to [MinScale, MaxScale].
func NewSpace(size, minSize float64, scale int, targets ...Scaler) *Space {
	return &Space{
		size:    math.Max(size, minSize),
		scale:   clampScale(scale),
		targets: targets,
		MinSize: minSize,
		Epsilon: DefaultResizeEpsilon,
		Padding: DefaultPadding,
	}
}

func (s *Space) Size() float64 { return s.size }

func (s *Space) Scale() int { return s.scale }

// Side returns the surface side length in surface units.
func (s *Space) Side() float64 { return s.size * float64(s.scale) }

// Center returns the geometric centre of the surface.
func (s *Space) Center() Point {
	c := s.Side() / 2
	return Point{X: c, Y: c}
}

// Candidate computes the side length that fits the available area. reserved
// is the height the host keeps for its own controls.
func (s *Space) Candidate(availWidth, availHeight, reserved float64) float64 {
	return math.Min(availWidth-s.Padding, availHeight-reserved)
}

// Resize changes the side length to candidate and rescales all targets. It
// reports false, leaving everything untouched, when the change is within
// Epsilon or candidate does not exceed MinSize.
func (s *Space) Resize(candidate float64) bool {
	if math.IsNaN(candidate) || math.IsInf(candidate, 0) {
		return false
	}
	if math.Abs(candidate-s.size) <= s.Epsilon || candidate <= s.MinSize {
		return false
	}
	f := candidate / s.size
	s.size = candidate
	s.apply(f)
	return true
}

// SetScale changes the resolution scale, clamped to [MinScale, MaxScale], and
// rescales all targets. It reports false when the scale did not change.
func (s *Space) SetScale(n int) bool {
	n = clampScale(n)
	if n == s.scale {
		return false
	}
	f := float64(n) / float64(s.scale)
	s.scale = n
	s.apply(f)
	return true
}

// ToSurface converts a display position into surface space, clamped to the
// surface.
func (s *Space) ToSurface(x, y float64) Point {
	k := float64(s.scale)
	return s.Clamp(Point{X: x * k, Y: y * k})
}

// Clamp restricts p to the surface square.
func (s *Space) Clamp(p Point) Point {
	side := s.Side()
	return Point{
		X: math.Min(math.Max(p.X, 0), side),
		Y: math.Min(math.Max(p.Y, 0), side),
	}
}

func (s *Space) apply(f float64) {
	for _, t := range s.targets {
		t.Scale(f)
	}
}

func clampScale(n int) int {
	if n < MinScale {
		return MinScale
	}
	if n > MaxScale {
		return MaxScale
	}
	return n
}
