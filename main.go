package main

import (
	"log"
	"log/slog"
	"os"
	"slices"

	"KanjiDraw/internal/board"
	"KanjiDraw/internal/ui"
)

const DebugFlag = "--debug"

func main() {
	debug := slices.Contains(os.Args[1:], DebugFlag)
	if debug {
		board.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		log.Println("Starting KanjiDraw in debug mode")
	}

	b, err := board.New()
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}
	ui.RunApp(b, debug)
}
