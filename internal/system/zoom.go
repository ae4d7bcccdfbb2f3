package system

import (
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
	"github.com/zshift/aw-geez/internal/event"
)

// zoomStep is the projection scale change per wheel unit.
const zoomStep = 0.025

// ZoomCamera adjusts the camera projection on mouse-wheel events, clamped to
// the projection range, and re-broadcasts a window-resized notification so
// layout-dependent state downstream gets recomputed.
type ZoomCamera struct {
	cameras  *donburi.Query
	displays *donburi.Query
}

// NewZoomCamera subscribes the system to wheel events on w.
func NewZoomCamera(w donburi.World) *ZoomCamera {
	z := &ZoomCamera{
		cameras:  donburi.NewQuery(filter.Contains(component.CameraTag, component.Projection)),
		displays: donburi.NewQuery(filter.Contains(component.Display)),
	}
	event.Wheel.Subscribe(w, z.onWheel)
	return z
}

// Update dispatches the wheel events queued since the last frame.
func (z *ZoomCamera) Update(e *decs.ECS) {
	event.Wheel.ProcessEvents(e.World)
}

func (z *ZoomCamera) onWheel(w donburi.World, ev event.WheelData) {
	z.cameras.Each(w, func(entry *donburi.Entry) {
		proj := component.Projection.Get(entry)
		proj.Scale = clamp(
			proj.Scale-ev.OffsetY*zoomStep,
			component.MinProjectionScale,
			component.MaxProjectionScale,
		)

		if display, ok := z.displays.First(w); ok {
			d := component.Display.Get(display)
			event.WindowResized.Publish(w, event.WindowResizedData{
				Width:  d.Width,
				Height: d.Height,
			})
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
