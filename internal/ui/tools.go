package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"KanjiDraw/internal/board"
	"KanjiDraw/internal/state"
)

var panelColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// Controls is the debug panel: style knobs plus undo and clear.
type Controls struct {
	Thickness    *widget.Slider
	Antialiasing *widget.Check
	FastDrawing  *widget.Check
	Schedule     *widget.Select
	Scale        *widget.Slider
	Undo         *widget.Button
	Clear        *widget.Button

	thicknessLabel *widget.Label
	scaleLabel     *widget.Label
	object         fyne.CanvasObject
}

func NewControls(b *board.Board) *Controls {
	st := b.Style()
	c := &Controls{
		thicknessLabel: widget.NewLabel(""),
		scaleLabel:     widget.NewLabel(""),
	}

	c.Thickness = widget.NewSlider(state.MinThickness, state.MaxThickness)
	c.Thickness.Step = 1
	c.Thickness.SetValue(float64(st.Thickness))
	c.Thickness.OnChanged = func(v float64) {
		b.SetThickness(int(v))
		c.thicknessLabel.SetText(thicknessText(b.Style().Thickness))
	}
	c.thicknessLabel.SetText(thicknessText(st.Thickness))

	c.Antialiasing = widget.NewCheck("Antialiasing", b.SetAntialiasing)
	c.Antialiasing.SetChecked(st.Antialiasing)

	c.FastDrawing = widget.NewCheck("Fast Drawing", b.SetPerformanceMode)
	c.FastDrawing.SetChecked(st.PerformanceMode)

	c.Schedule = widget.NewSelect([]string{state.FiveLayer.String(), state.ThreeLayer.String()}, func(s string) {
		if sch, ok := state.ParseSchedule(s); ok {
			b.SetSchedule(sch)
		}
	})
	c.Schedule.SetSelected(st.Schedule.String())

	c.Scale = widget.NewSlider(state.MinScale, state.MaxScale)
	c.Scale.Step = 1
	c.Scale.SetValue(float64(b.Scale()))
	c.Scale.OnChanged = func(v float64) {
		b.SetResolutionScale(int(v))
		c.scaleLabel.SetText(scaleText(b.Scale()))
	}
	c.scaleLabel.SetText(scaleText(b.Scale()))

	c.Undo = widget.NewButton("Undo (Q)", func() { b.Undo() })
	c.Clear = widget.NewButton("Clear (E)", b.Clear)
	c.Sync(b.Depth())

	sliders := container.New(layout.NewGridWrapLayout(fyne.NewSize(160, 35)), c.Thickness, c.Scale)
	row := container.NewHBox(
		c.thicknessLabel,
		sliders,
		c.scaleLabel,
		widget.NewSeparator(),
		c.Antialiasing,
		c.FastDrawing,
		c.Schedule,
		layout.NewSpacer(),
		c.Undo,
		c.Clear,
	)
	title := widget.NewLabelWithStyle("DEBUG CONTROLS", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	c.object = container.NewStack(canvas.NewRectangle(panelColor), container.NewVBox(title, row))
	return c
}

// Object returns the panel to place in a layout.
func (c *Controls) Object() fyne.CanvasObject { return c.object }

// Sync enables undo and clear only when there is something to remove.
func (c *Controls) Sync(depth int) {
	if depth > 0 {
		c.Undo.Enable()
		c.Clear.Enable()
		return
	}
	c.Undo.Disable()
	c.Clear.Disable()
}

func thicknessText(n int) string { return fmt.Sprintf("Thickness %d", n) }

func scaleText(n int) string { return fmt.Sprintf("Scale ×%d", n) }
