package state

// RecorderState is the capture state of a Recorder.
type RecorderState int

const (
	Idle RecorderState = iota
	Capturing
)

func (s RecorderState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// Recorder turns pointer samples into strokes. Calls that do not fit the
// current state are ignored: pointer input cannot be forced into a
// well-ordered protocol.
type Recorder struct {
	history *History
	state   RecorderState
	current Stroke

	// Threshold is the minimum distance, in surface units, a sample has to
	// move away from the last accepted point to be kept.
	Threshold float64
}

// NewRecorder returns an idle recorder that commits into h.
func NewRecorder(h *History, threshold float64) *Recorder {
	return &Recorder{history: h, Threshold: threshold}
}

func (r *Recorder) State() RecorderState { return r.state }

func (r *Recorder) Capturing() bool { return r.state == Capturing }

// Begin starts a new stroke at p. It reports false when a capture is already
// in progress.
func (r *Recorder) Begin(p Point) bool {
	if r.state != Idle {
		return false
	}
	r.current = Stroke{ID: newStrokeID(), Points: []Point{p}}
	r.state = Capturing
	return true
}

// Extend appends p to the stroke being captured. It reports false when the
// recorder is idle or p lies closer than Threshold to the last kept point.
func (r *Recorder) Extend(p Point) bool {
	if r.state != Capturing {
		return false
	}
	last := r.current.Points[len(r.current.Points)-1]
	if p.Dist(last) < r.Threshold {
		return false
	}
	r.current.Points = append(r.current.Points, p)
	return true
}

// Commit pushes the captured stroke into the history and returns to Idle.
// Single-point strokes are committed too.
func (r *Recorder) Commit() (Stroke, bool) {
	if r.state != Capturing {
		return Stroke{}, false
	}
	s := r.current
	r.current = Stroke{}
	r.state = Idle
	r.history.Push(s)
	return s, true
}

// Cancel discards the stroke being captured, if any.
func (r *Recorder) Cancel() {
	r.current = Stroke{}
	r.state = Idle
}

// Current returns a copy of the stroke being captured. It is empty when idle.
func (r *Recorder) Current() Stroke {
	if r.state != Capturing {
		return Stroke{}
	}
	return r.current.Clone()
}

// LastSegment returns the two most recently accepted points.
func (r *Recorder) LastSegment() (from, to Point, ok bool) {
	n := len(r.current.Points)
	if r.state != Capturing || n < 2 {
		return Point{}, Point{}, false
	}
	return r.current.Points[n-2], r.current.Points[n-1], true
}

// Scale multiplies the coordinates of the stroke being captured by f.
func (r *Recorder) Scale(f float64) {
	r.current.scale(f)
}
