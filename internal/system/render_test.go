package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zshift/aw-geez/internal/component"
)

func TestViewMatrixCentersCamera(t *testing.T) {
	camera := &component.TransformData{Scale: 1}
	proj := &component.ProjectionData{Scale: 1}

	view := viewMatrix(camera, proj, 640, 360)

	x, y := view.Apply(0, 0)
	assert.InDelta(t, 640.0, x, 1e-9)
	assert.InDelta(t, 360.0, y, 1e-9)
}

func TestViewMatrixFlipsWorldYUp(t *testing.T) {
	camera := &component.TransformData{Scale: 1}
	proj := &component.ProjectionData{Scale: 1}

	view := viewMatrix(camera, proj, 640, 360)

	// A point above the camera in world space lands above center on screen,
	// where screen Y grows downward.
	_, y := view.Apply(0, 10)
	assert.InDelta(t, 350.0, y, 1e-9)
}

func TestViewMatrixZoomIsReciprocalScale(t *testing.T) {
	camera := &component.TransformData{Scale: 1}

	// Scale 0.5 shows half the world, so world distances double on screen.
	view := viewMatrix(camera, &component.ProjectionData{Scale: 0.5}, 0, 0)
	x, _ := view.Apply(10, 0)
	assert.InDelta(t, 20.0, x, 1e-9)

	view = viewMatrix(camera, &component.ProjectionData{Scale: 1}, 0, 0)
	x, _ = view.Apply(10, 0)
	assert.InDelta(t, 10.0, x, 1e-9)
}

func TestViewMatrixFollowsCameraTranslation(t *testing.T) {
	camera := &component.TransformData{Scale: 1}
	camera.Translation.X = 100
	camera.Translation.Y = -50

	view := viewMatrix(camera, &component.ProjectionData{Scale: 1}, 640, 360)

	// The camera position always projects to screen center.
	x, y := view.Apply(100, -50)
	assert.InDelta(t, 640.0, x, 1e-9)
	assert.InDelta(t, 360.0, y, 1e-9)
}

func TestViewMatrixCounterRotates(t *testing.T) {
	camera := &component.TransformData{Scale: 1, Rotation: math.Pi / 2}

	view := viewMatrix(camera, &component.ProjectionData{Scale: 1}, 0, 0)

	// A quarter-turn camera sees the world's +X axis as its own +Y.
	x, y := view.Apply(10, 0)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)
}
