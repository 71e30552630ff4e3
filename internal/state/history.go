package state

// History is the ordered stack of committed strokes.
type History struct {
	strokes []Stroke

	// OnChange is called after every push, clear and undo that removed a
	// stroke. Rescaling does not notify; the caller that resized redraws.
	OnChange func()
}

func NewHistory() *History {
	return &History{strokes: make([]Stroke, 0)}
}

// Push appends s to the history.
func (h *History) Push(s Stroke) {
	h.strokes = append(h.strokes, s)
	h.changed()
}

// Undo removes and returns the most recent stroke. It reports false and does
// nothing when the history is empty.
func (h *History) Undo() (Stroke, bool) {
	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	last := h.strokes[len(h.strokes)-1]
	h.strokes[len(h.strokes)-1] = Stroke{}
	h.strokes = h.strokes[:len(h.strokes)-1]
	h.changed()
	return last, true
}

// Clear empties the history. Clearing an empty history is legal.
func (h *History) Clear() {
	h.strokes = make([]Stroke, 0)
	h.changed()
}

func (h *History) Len() int { return len(h.strokes) }

func (h *History) Empty() bool { return len(h.strokes) == 0 }

// Strokes returns a deep copy of the committed strokes, oldest first.
func (h *History) Strokes() []Stroke {
	out := make([]Stroke, len(h.strokes))
	for i, s := range h.strokes {
		out[i] = s.Clone()
	}
	return out
}

// Each calls fn for every stroke in commit order without copying.
// fn must not retain or modify the stroke.
func (h *History) Each(fn func(Stroke)) {
	for _, s := range h.strokes {
		fn(s)
	}
}

// Scale multiplies every stored coordinate by f.
func (h *History) Scale(f float64) {
	for i := range h.strokes {
		h.strokes[i].scale(f)
	}
}

func (h *History) changed() {
	if h.OnChange != nil {
		h.OnChange()
	}
}
