package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"KanjiDraw/internal/board"
)

const (
	// defaultReserved is the vertical padding around the surface. The debug
	// panel lives in its own layout cell, so it is not counted here.
	defaultReserved = 40
	minSurface      = 300
)

// NewContent builds the window content: the board, plus the debug panel when
// debug is set. Keyboard shortcuts are installed on win.
func NewContent(win fyne.Window, b *board.Board, debug bool) fyne.CanvasObject {
	bw := NewBoardWidget(b)

	var bottom fyne.CanvasObject
	if debug {
		controls := NewControls(b)
		bw.OnHistoryChange = controls.Sync
		bottom = controls.Object()
	}

	win.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'q', 'Q':
			b.Undo()
		case 'e', 'E':
			b.Clear()
		}
	})

	return container.NewBorder(nil, bottom, nil, nil, bw)
}

func RunApp(b *board.Board, debug bool) {
	myApp := app.New()
	title := "KanjiDraw"
	size := fyne.NewSize(600, 650)
	if debug {
		title += " - Debug Mode"
		size = fyne.NewSize(800, 850)
	}
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(size)
	myWindow.SetContent(NewContent(myWindow, b, debug))
	myWindow.ShowAndRun()
}
