// Package event defines the typed events exchanged between systems.
package event

import "github.com/yohamta/donburi/features/events"

// WheelData is one mouse-wheel scroll, in ebiten wheel units.
type WheelData struct {
	OffsetX float64
	OffsetY float64
}

// WindowResizedData carries the window dimensions in logical pixels. It is
// published on real window resizes and re-broadcast by the zoom system after
// a scale change so layout-dependent state gets recomputed.
type WindowResizedData struct {
	Width  int
	Height int
}

var (
	Wheel         = events.NewEventType[WheelData]()
	WindowResized = events.NewEventType[WindowResizedData]()
)
