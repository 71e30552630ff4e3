// Package board composes the drawing core: it owns the history, the stroke
// recorder, the coordinate space and the render pipeline, and routes typed
// host events into them.
//
// A Board is not safe for concurrent use. The host calls it from the one
// goroutine that delivers its input events; every call runs to completion,
// including any recompute, before returning.
package board

import (
	"KanjiDraw/internal/render"
	"KanjiDraw/internal/state"
)

type Board struct {
	style    state.Style
	history  *state.History
	recorder *state.Recorder
	space    *state.Space
	pipeline *render.Pipeline

	// OnSceneChange is called after every operation that changed the scene.
	// added holds the primitives appended by a fast-path move; it is nil
	// after a full recompute, when the whole scene has to be repainted.
	OnSceneChange func(added []render.Primitive)
}

// New builds a board from DefaultConfig with opts applied.
func New(opts ...Option) (*Board, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		style:    cfg.Style,
		history:  state.NewHistory(),
		pipeline: render.NewPipeline(),
	}
	b.recorder = state.NewRecorder(b.history, 0)
	b.space = state.NewSpace(cfg.Size, cfg.MinSize, cfg.Scale, b.recorder, b.history)
	b.space.Epsilon = cfg.ResizeEpsilon
	b.space.Padding = cfg.Padding
	b.syncThreshold()

	b.history.OnChange = b.redraw
	b.pipeline.Full(b.frame())

	Logger().Info("board created",
		"size", b.space.Size(), "scale", b.space.Scale(), "thickness", b.style.Thickness)
	return b, nil
}

// PointerDown starts a stroke at a display position.
func (b *Board) PointerDown(x, y float64) {
	p, ok := b.toSurface(x, y)
	if !ok {
		return
	}
	if !b.recorder.Begin(p) {
		Logger().Debug("pointer down ignored: already capturing")
		return
	}
	Logger().Debug("stroke begin", "x", p.X, "y", p.Y)
}

// PointerMove extends the current stroke. Samples closer than the jitter
// threshold to the last kept point are dropped.
func (b *Board) PointerMove(x, y float64) {
	p, ok := b.toSurface(x, y)
	if !ok {
		return
	}
	if !b.recorder.Extend(p) {
		return
	}
	if b.style.PerformanceMode {
		from, to, _ := b.recorder.LastSegment()
		prim := b.pipeline.Fast(from, to, b.style, b.space.Scale())
		b.changed([]render.Primitive{prim})
		return
	}
	b.redraw()
}

// PointerUp commits the current stroke. The position is not recorded: the
// last accepted move already ended the stroke.
func (b *Board) PointerUp(_, _ float64) {
	s, ok := b.recorder.Commit()
	if !ok {
		Logger().Debug("pointer up ignored: not capturing")
		return
	}
	Logger().Info("stroke committed", "id", s.ID, "points", len(s.Points), "depth", b.history.Len())
}

// SurfaceResized fits the square surface into the available area, keeping
// reserved height free for the host's controls.
func (b *Board) SurfaceResized(availWidth, availHeight, reserved float64) {
	candidate := b.space.Candidate(availWidth, availHeight, reserved)
	old := b.space.Size()
	if !b.space.Resize(candidate) {
		Logger().Debug("resize suppressed", "candidate", candidate, "size", old)
		return
	}
	Logger().Info("surface resized", "from", old, "to", b.space.Size())
	b.redraw()
}

// Undo removes the last committed stroke. It reports whether one was removed.
func (b *Board) Undo() bool {
	s, ok := b.history.Undo()
	if ok {
		Logger().Info("undo", "id", s.ID, "depth", b.history.Len())
	}
	return ok
}

// Clear drops every committed stroke and any stroke being drawn.
func (b *Board) Clear() {
	b.recorder.Cancel()
	b.history.Clear()
	Logger().Info("cleared")
}

// SetThickness sets the base stroke thickness, clamped to the valid range.
func (b *Board) SetThickness(n int) {
	n = state.ClampThickness(n)
	if n == b.style.Thickness {
		return
	}
	b.style.Thickness = n
	Logger().Info("thickness changed", "thickness", n)
	b.redraw()
}

func (b *Board) SetAntialiasing(on bool) {
	if on == b.style.Antialiasing {
		return
	}
	b.style.Antialiasing = on
	Logger().Info("antialiasing changed", "enabled", on)
	b.redraw()
}

func (b *Board) SetPerformanceMode(on bool) {
	if on == b.style.PerformanceMode {
		return
	}
	b.style.PerformanceMode = on
	Logger().Info("performance mode changed", "enabled", on)
	b.redraw()
}

// SetSchedule selects the antialiasing layer schedule.
func (b *Board) SetSchedule(s state.Schedule) {
	if s == b.style.Schedule || (s != state.ThreeLayer && s != state.FiveLayer) {
		return
	}
	b.style.Schedule = s
	Logger().Info("layer schedule changed", "schedule", s.String())
	b.redraw()
}

// SetResolutionScale changes the resolution scale, clamped to [1, 32], and
// rescales stored geometry the same way a resize does.
func (b *Board) SetResolutionScale(n int) {
	old := b.space.Scale()
	if !b.space.SetScale(n) {
		return
	}
	b.syncThreshold()
	Logger().Info("resolution scale changed", "from", old, "to", b.space.Scale())
	b.redraw()
}

// Scene returns the primitives to paint, bottom first, in surface units.
func (b *Board) Scene() []render.Primitive { return b.pipeline.Scene() }

// Depth returns the number of committed strokes.
func (b *Board) Depth() int { return b.history.Len() }

func (b *Board) Empty() bool { return b.history.Empty() }

// Strokes returns a copy of the committed strokes in surface units.
func (b *Board) Strokes() []state.Stroke { return b.history.Strokes() }

// Current returns a copy of the stroke being drawn.
func (b *Board) Current() state.Stroke { return b.recorder.Current() }

func (b *Board) Capturing() bool { return b.recorder.Capturing() }

func (b *Board) Style() state.Style { return b.style }

// Size returns the displayed side length.
func (b *Board) Size() float64 { return b.space.Size() }

func (b *Board) Scale() int { return b.space.Scale() }

// Side returns the surface side length, Size times Scale.
func (b *Board) Side() float64 { return b.space.Side() }

func (b *Board) toSurface(x, y float64) (state.Point, bool) {
	if !(state.Point{X: x, Y: y}).Finite() {
		Logger().Debug("non-finite pointer position ignored", "x", x, "y", y)
		return state.Point{}, false
	}
	return b.space.ToSurface(x, y), true
}

// syncThreshold keeps the jitter threshold in display units whatever the
// resolution scale.
func (b *Board) syncThreshold() {
	b.recorder.Threshold = b.style.JitterThreshold * float64(b.space.Scale())
}

func (b *Board) frame() render.Frame {
	return render.Frame{
		History: b.history,
		Space:   b.space,
		Style:   b.style,
		Current: b.recorder.Current(),
	}
}

func (b *Board) redraw() {
	b.pipeline.Full(b.frame())
	Logger().Debug("scene recomputed", "primitives", b.pipeline.Len())
	b.changed(nil)
}

func (b *Board) changed(added []render.Primitive) {
	if b.OnSceneChange != nil {
		b.OnSceneChange(added)
	}
}
