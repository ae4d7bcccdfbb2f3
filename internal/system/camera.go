package system

import (
	"math"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

const (
	// cameraSpeed is the forward translation speed of the logical pose, in
	// world pixels per second along its heading.
	cameraSpeed = 10.0
	// cameraOrbitRate turns the pose heading, radians per second.
	cameraOrbitRate = 0.5
	// cameraSpinRate turns the render transform, radians per second,
	// independent of the heading.
	cameraSpinRate = 0.5
)

// MoveCamera integrates the camera's logical pose each frame and copies the
// result onto the render transform. The pose heading orbits at a fixed rate
// while the pose translates forward along it, tracing a spiral.
type MoveCamera struct {
	cameras *donburi.Query
}

func NewMoveCamera() *MoveCamera {
	return &MoveCamera{
		cameras: donburi.NewQuery(filter.Contains(
			component.CameraTag,
			component.Transform,
			component.Pose,
		)),
	}
}

func (m *MoveCamera) Update(e *decs.ECS) {
	m.advance(e.World, e.Time.DeltaTime().Seconds())
}

func (m *MoveCamera) advance(w donburi.World, dt float64) {
	m.cameras.Each(w, func(entry *donburi.Entry) {
		pose := component.Pose.Get(entry)
		tf := component.Transform.Get(entry)

		pose.Angle += cameraOrbitRate * dt
		pose.Translation.X += math.Cos(pose.Angle) * cameraSpeed * dt
		pose.Translation.Y += math.Sin(pose.Angle) * cameraSpeed * dt

		tf.Translation = pose.Translation
		tf.Rotation += cameraSpinRate * dt
	})
}
