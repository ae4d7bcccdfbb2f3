// Package system holds the per-frame behaviors of the demo. Each system is
// registered with the donburi scheduler in the order the frame runs them:
// input first, then the tick timer, then sprite rotation, then the camera
// systems, then diagnostics and the event flush.
package system

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/zshift/aw-geez/internal/component"
)

const (
	// TileSize is the edge length, in world pixels, each sprite is fitted to.
	TileSize = 64.0
	// MapSize is the world extent the sprite grid is derived from: the grid
	// spans [-MapSize/32, MapSize/32) tiles on each axis.
	MapSize = 320.0

	// GridHalfExtent is the number of grid tiles on each side of the origin.
	GridHalfExtent = int(MapSize / 32)
	// SpriteCount is the fixed number of sprites spawned at startup; none
	// are added or removed afterwards.
	SpriteCount = (2 * GridHalfExtent) * (2 * GridHalfExtent)

	maxSpriteScale  = 2.0
	maxRotationRate = 5.0
	cameraDepth     = 1000.0
)

// Setup runs once before the first frame. It spawns the camera entity and
// the grid of randomized sprites, all sharing the one image handle.
func Setup(w donburi.World, sprite *ebiten.Image) {
	spawnCamera(w)
	spawnSprites(w, sprite)

	w.Entry(w.Create(component.FrameStats))
}

func spawnCamera(w donburi.World) {
	entry := w.Entry(w.Create(
		component.CameraTag,
		component.Transform,
		component.Pose,
		component.Projection,
		component.TickTimer,
	))

	component.Transform.SetValue(entry, component.TransformData{
		Depth: cameraDepth,
		Scale: 1,
	})
	component.Pose.SetValue(entry, component.PoseData{})
	component.Projection.SetValue(entry, component.ProjectionData{
		Scale: component.MaxProjectionScale,
	})
	component.TickTimer.SetValue(entry, component.TickTimerData{
		Timer: component.NewTimer(tickInterval),
	})
}

func spawnSprites(w donburi.World, img *ebiten.Image) {
	for y := -GridHalfExtent; y < GridHalfExtent; y++ {
		for x := -GridHalfExtent; x < GridHalfExtent; x++ {
			entry := w.Entry(w.Create(
				component.Transform,
				component.Sprite,
				component.Direction,
				component.RotationRate,
			))

			component.Transform.SetValue(entry, component.TransformData{
				Translation: dmath.Vec2{
					X: float64(x) * TileSize,
					Y: float64(y) * TileSize,
				},
				Depth:    rand.Float64(),
				Rotation: rand.Float64(),
				Scale:    rand.Float64() * maxSpriteScale,
			})
			component.Sprite.SetValue(entry, component.SpriteData{
				Image: img,
				Size:  TileSize,
			})

			direction := component.Clockwise
			if rand.Float64() > 0.5 {
				direction = component.CounterClockwise
			}
			component.Direction.SetValue(entry, direction)
			component.RotationRate.SetValue(entry, component.RotationRateData{
				RadiansPerSec: rand.Float64() * maxRotationRate,
			})
		}
	}
}
