package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"KanjiDraw/internal/board"
	"KanjiDraw/internal/raster"
	"KanjiDraw/internal/render"
)

// BoardWidget shows the drawing surface centred in its area and forwards
// pointer input and size changes to a board.Board.
type BoardWidget struct {
	widget.BaseWidget
	board   *board.Board
	painter *raster.Painter

	// Reserved is the height passed to the board as kept for other controls.
	Reserved float32
	// OnHistoryChange is called with the history depth after every scene change.
	OnHistoryChange func(depth int)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{
		board:    b,
		painter:  raster.NewPainter(raster.FrameSide(b.Side()), render.Background),
		Reserved: defaultReserved,
	}
	w.ExtendBaseWidget(w)
	b.OnSceneChange = w.sceneChanged
	w.repaint()
	return w
}

// Image returns the last painted frame. Its pixel side is the surface side,
// capped at raster.MaxSide.
func (w *BoardWidget) Image() *image.RGBA { return w.painter.Frame() }

func (w *BoardWidget) sceneChanged(added []render.Primitive) {
	if added == nil {
		w.repaint()
	} else {
		w.painter.Paint(added)
	}
	w.Refresh()
	if w.OnHistoryChange != nil {
		w.OnHistoryChange(w.board.Depth())
	}
}

func (w *BoardWidget) repaint() {
	w.painter.Render(w.board.Scene(), w.board.Side())
}

// origin is the top-left corner of the surface inside the widget.
func (w *BoardWidget) origin() fyne.Position {
	size := w.Size()
	side := float32(w.board.Size())
	return fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)
}

func (w *BoardWidget) local(pos fyne.Position) (float64, float64) {
	o := w.origin()
	return float64(pos.X - o.X), float64(pos.Y - o.Y)
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.board.PointerDown(w.local(e.Position))
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.board.PointerUp(w.local(e.Position))
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.board.PointerMove(w.local(e.Position))
}

func (w *BoardWidget) DragEnd() {}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: w}
	r.background = canvas.NewRectangle(render.Background)
	r.frame = canvas.NewRectangle(color.Transparent)
	r.frame.StrokeColor = color.White
	r.frame.StrokeWidth = 2
	r.surface = canvas.NewImageFromImage(w.Image())
	r.surface.FillMode = canvas.ImageFillStretch
	r.surface.ScaleMode = canvas.ImageScaleSmooth
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	frame      *canvas.Rectangle
	surface    *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.surface, r.frame}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.board.SurfaceResized(float64(size.Width), float64(size.Height), float64(r.board.Reserved))
	r.place()
}

func (r *boardWidgetRenderer) place() {
	side := float32(r.board.board.Size())
	o := r.board.origin()
	r.surface.Move(o)
	r.surface.Resize(fyne.NewSquareSize(side))
	r.frame.Move(o)
	r.frame.Resize(fyne.NewSquareSize(side))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(float32(minSurface))
}

func (r *boardWidgetRenderer) Refresh() {
	r.surface.Image = r.board.Image()
	r.place()
	canvas.Refresh(r.surface)
	canvas.Refresh(r.frame)
}

func (r *boardWidgetRenderer) Destroy() {}
