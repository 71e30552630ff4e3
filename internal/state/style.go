package state

import (
	"fmt"
	"math"
)

const (
	MinThickness = 1
	MaxThickness = 30

	DefaultThickness       = 15
	DefaultJitterThreshold = 3.0
)

// Schedule selects how many concentric passes draw an antialiased stroke.
type Schedule int

const (
	FiveLayer Schedule = iota
	ThreeLayer
)

func (s Schedule) String() string {
	switch s {
	case ThreeLayer:
		return "3 layers"
	case FiveLayer:
		return "5 layers"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// ParseSchedule is the inverse of Schedule.String.
func ParseSchedule(s string) (Schedule, bool) {
	switch s {
	case ThreeLayer.String():
		return ThreeLayer, true
	case FiveLayer.String():
		return FiveLayer, true
	}
	return 0, false
}

// Style is the rendering configuration read on every recompute.
type Style struct {
	Thickness       int
	Antialiasing    bool
	PerformanceMode bool
	JitterThreshold float64
	Schedule        Schedule
}

func DefaultStyle() Style {
	return Style{
		Thickness:       DefaultThickness,
		Antialiasing:    true,
		PerformanceMode: true,
		JitterThreshold: DefaultJitterThreshold,
		Schedule:        FiveLayer,
	}
}

// Validate reports the first field that is out of range.
func (s Style) Validate() error {
	if s.Thickness < MinThickness || s.Thickness > MaxThickness {
		return fmt.Errorf("thickness %d outside [%d, %d]", s.Thickness, MinThickness, MaxThickness)
	}
	if s.JitterThreshold < 0 || math.IsNaN(s.JitterThreshold) || math.IsInf(s.JitterThreshold, 0) {
		return fmt.Errorf("jitter threshold %v must be finite and non-negative", s.JitterThreshold)
	}
	if s.Schedule != ThreeLayer && s.Schedule != FiveLayer {
		return fmt.Errorf("unknown layer schedule %v", s.Schedule)
	}
	return nil
}

// ClampThickness restricts n to [MinThickness, MaxThickness].
func ClampThickness(n int) int {
	if n < MinThickness {
		return MinThickness
	}
	if n > MaxThickness {
		return MaxThickness
	}
	return n
}
