package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"

	"github.com/zshift/aw-geez/internal/event"
)

// Input polls device state at the top of the frame and turns it into typed
// events for the systems downstream.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update(e *decs.ECS) {
	offX, offY := ebiten.Wheel()
	if offX != 0 || offY != 0 {
		event.Wheel.Publish(e.World, event.WheelData{OffsetX: offX, OffsetY: offY})
	}
}

// FlushEvents dispatches whatever is still queued at the end of the frame,
// notably the window-resized re-broadcasts the zoom system emits. Registered
// after every other system.
func FlushEvents(e *decs.ECS) {
	events.ProcessAllEvents(e.World)
}
