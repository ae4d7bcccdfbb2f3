package component

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PoseData is the camera's logical pose, integrated incrementally each frame
// and copied onto the render transform afterwards. Keeping it separate from
// TransformData lets the render rotation accumulate independently of the
// orbit heading.
type PoseData struct {
	Translation dmath.Vec2
	Angle       float64
}

// ProjectionData is the orthographic zoom scale. Larger values show more of
// the world. Kept within [MinProjectionScale, MaxProjectionScale] by the
// zoom system.
type ProjectionData struct {
	Scale float64
}

const (
	MinProjectionScale = 0.1
	MaxProjectionScale = 1.0
)

// DisplayData tracks the window size in logical pixels, updated from the
// game's Layout.
type DisplayData struct {
	Width  int
	Height int
}

var (
	// CameraTag marks the single camera entity.
	CameraTag  = donburi.NewTag()
	Pose       = donburi.NewComponentType[PoseData]()
	Projection = donburi.NewComponentType[ProjectionData]()
	Display    = donburi.NewComponentType[DisplayData]()
)
