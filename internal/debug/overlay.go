// Package debug provides the optional Dear ImGui diagnostics overlay.
package debug

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

// Overlay owns the ImGui backend and renders the diagnostics window. It is
// only constructed in debug mode; a nil *Overlay is a no-op everywhere.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend

	stats   *donburi.Query
	cameras *donburi.Query
	sprites *donburi.Query
}

// NewOverlay creates the ImGui backend and the game window. When the overlay
// is enabled it owns window creation; the caller must not size the window
// separately.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: backend,
		stats:   donburi.NewQuery(filter.Contains(component.FrameStats)),
		cameras: donburi.NewQuery(filter.Contains(component.CameraTag, component.Projection)),
		sprites: donburi.NewQuery(filter.Contains(component.Sprite)),
	}
}

func (o *Overlay) BeginFrame() {
	if o == nil {
		return
	}
	o.backend.BeginFrame()
}

// EndFrame builds the diagnostics window from the world and closes the ImGui
// frame. Call after all systems have run.
func (o *Overlay) EndFrame(w donburi.World) {
	if o == nil {
		return
	}
	o.statsWindow(w)
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil {
		return
	}
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	if o == nil {
		return
	}
	o.backend.Layout(outsideWidth, outsideHeight)
}

func (o *Overlay) statsWindow(w donburi.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 170), imgui.CondOnce)

	if !imgui.BeginV("Diagnostics", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if entry, ok := o.stats.First(w); ok {
		stats := component.FrameStats.Get(entry)
		imgui.Text(fmt.Sprintf("Avg FPS: %.1f", stats.AvgFPS))
		imgui.Text(fmt.Sprintf("Frame: %.2f ms", stats.LastMS))
		imgui.Text(fmt.Sprintf("Min/Avg/Max: %.2f / %.2f / %.2f ms",
			stats.MinMS, stats.AvgMS, stats.MaxMS))
		imgui.Separator()
	}

	imgui.Text(fmt.Sprintf("Sprites: %d", o.sprites.Count(w)))

	if entry, ok := o.cameras.First(w); ok {
		proj := component.Projection.Get(entry)
		imgui.Text(fmt.Sprintf("Projection scale: %.3f", proj.Scale))
	}

	imgui.End()
}
