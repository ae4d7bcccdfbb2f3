// Package game wires the world, systems, and window shell together.
package game

import (
	"fmt"
	// Sprite asset decoding.
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
	"github.com/zshift/aw-geez/internal/debug"
	"github.com/zshift/aw-geez/internal/event"
	"github.com/zshift/aw-geez/internal/system"
)

// SpritePath is the fixed relative path the sprite image is read from at
// startup. A missing or undecodable file aborts startup.
const SpritePath = "assets/branding/icon.png"

// Config is the startup configuration, resolved from command-line flags.
type Config struct {
	Title  string
	Width  int
	Height int
	// Debug enables verbose diagnostics logging and the ImGui overlay.
	Debug bool
}

// Game implements ebiten.Game over the ECS. The engine drives Update once
// per tick and Draw once per frame; all demo logic lives in the registered
// systems.
type Game struct {
	world    donburi.World
	ecs      *decs.ECS
	overlay  *debug.Overlay
	displays *donburi.Query
}

// New loads the sprite asset, builds the world, and registers the systems in
// frame order. When cfg.Debug is set the overlay owns window creation;
// otherwise the window is configured here.
func New(cfg Config) (*Game, error) {
	var overlay *debug.Overlay
	if cfg.Debug {
		overlay = debug.NewOverlay(cfg.Title, cfg.Width, cfg.Height)
	} else {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	sprite, _, err := ebitenutil.NewImageFromFile(SpritePath)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", SpritePath, err)
	}

	world := donburi.NewWorld()
	e := decs.NewECS(world)

	g := &Game{
		world:    world,
		ecs:      e,
		overlay:  overlay,
		displays: donburi.NewQuery(filter.Contains(component.Display)),
	}

	display := world.Entry(world.Create(component.Display))
	component.Display.SetValue(display, component.DisplayData{
		Width:  cfg.Width,
		Height: cfg.Height,
	})

	system.Setup(world, sprite)

	// Registration order is execution order: the tick timer runs before the
	// game systems, the camera systems after them.
	e.AddSystem(system.NewInput().Update)
	e.AddSystem(system.NewTick().Update)
	e.AddSystem(system.NewRotateEntity().Update)
	e.AddSystem(system.NewMoveCamera().Update)
	e.AddSystem(system.NewZoomCamera(world).Update)
	e.AddSystem(system.NewDiagnostics(cfg.Debug).Update)
	e.AddSystem(system.FlushEvents)

	e.AddRenderer(decs.LayerDefault, system.NewRender(world).Draw)

	return g, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.overlay.BeginFrame()
	g.ecs.Update()
	g.overlay.EndFrame(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout tracks the window size and publishes a resize event when it
// changes. The zoom system re-broadcasts the same event after scale changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)

	if entry, ok := g.displays.First(g.world); ok {
		d := component.Display.Get(entry)
		if d.Width != outsideWidth || d.Height != outsideHeight {
			d.Width = outsideWidth
			d.Height = outsideHeight
			event.WindowResized.Publish(g.world, event.WindowResizedData{
				Width:  outsideWidth,
				Height: outsideHeight,
			})
		}
	}
	return outsideWidth, outsideHeight
}
