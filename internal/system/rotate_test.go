package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

func spawnTestSprite(w donburi.World, rotation float64, dir component.SpinDirection, rate float64) *donburi.Entry {
	entry := w.Entry(w.Create(
		component.Transform,
		component.Sprite,
		component.Direction,
		component.RotationRate,
	))
	component.Transform.SetValue(entry, component.TransformData{Rotation: rotation, Scale: 1})
	component.Sprite.SetValue(entry, component.SpriteData{Size: TileSize})
	component.Direction.SetValue(entry, dir)
	component.RotationRate.SetValue(entry, component.RotationRateData{RadiansPerSec: rate})
	return entry
}

func TestRotateEntityAdvancesByRate(t *testing.T) {
	w := donburi.NewWorld()
	cw := spawnTestSprite(w, 0.25, component.Clockwise, 2.0)
	ccw := spawnTestSprite(w, 0.25, component.CounterClockwise, 3.0)

	r := NewRotateEntity()
	r.advance(w, 0.5)

	assert.InDelta(t, 0.25+2.0*0.5, component.Transform.Get(cw).Rotation, 1e-9)
	assert.InDelta(t, 0.25-3.0*0.5, component.Transform.Get(ccw).Rotation, 1e-9)
}

func TestRotateEntityZeroDelta(t *testing.T) {
	w := donburi.NewWorld()
	entry := spawnTestSprite(w, 1.5, component.Clockwise, 4.0)

	NewRotateEntity().advance(w, 0)

	assert.Equal(t, 1.5, component.Transform.Get(entry).Rotation)
}

func TestRotateEntityWrapsFullTurns(t *testing.T) {
	w := donburi.NewWorld()
	entry := spawnTestSprite(w, 0.1, component.Clockwise, 5.0)

	r := NewRotateEntity()
	for i := 0; i < 100; i++ {
		r.advance(w, 1.0/60)
	}

	got := component.Transform.Get(entry).Rotation
	want := math.Mod(0.1+5.0*100.0/60, 2*math.Pi)
	assert.Less(t, math.Abs(got), 2*math.Pi)
	assert.InDelta(t, want, got, 1e-6)
}

func TestRotateEntityIgnoresCamera(t *testing.T) {
	w := donburi.NewWorld()
	spawnCamera(w)

	NewRotateEntity().advance(w, 1)

	camera, ok := donburi.NewQuery(filter.Contains(component.CameraTag, component.Transform)).First(w)
	assert.True(t, ok)
	assert.Equal(t, 0.0, component.Transform.Get(camera).Rotation)
}
