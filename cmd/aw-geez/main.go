// aw-geez renders a grid of randomly rotated and scaled sprites, spins them,
// orbits the camera over the field, and zooms with the mouse wheel. The
// sprite count is logged once a second.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zshift/aw-geez/internal/game"
)

func main() {
	width := flag.Int("width", 1280, "Window width in logical pixels.")
	height := flag.Int("height", 720, "Window height in logical pixels.")
	debugMode := flag.Bool("debug", false, "Enable verbose frame diagnostics and the debug overlay.")
	flag.Parse()

	g, err := game.New(game.Config{
		Title:  "aw-geez",
		Width:  *width,
		Height: *height,
		Debug:  *debugMode,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
