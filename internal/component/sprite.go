package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData is the render transform shared by sprites and the camera.
// Rotation is in radians, counter-clockwise positive in a Y-up world.
// Depth only orders draws; it is not a third spatial axis.
type TransformData struct {
	Translation dmath.Vec2
	Depth       float64
	Rotation    float64
	Scale       float64
}

// SpriteData holds the image handle a sprite is drawn with. Every sprite in
// the field shares the same handle; Size is the logical edge length in world
// pixels the image is fitted to.
type SpriteData struct {
	Image *ebiten.Image
	Size  float64
}

// SpinDirection selects which way a sprite's rotation advances.
type SpinDirection int

const (
	Clockwise SpinDirection = iota
	CounterClockwise
)

// Sign returns the factor applied to a rotation rate: +1 for clockwise,
// -1 for counter-clockwise.
func (d SpinDirection) Sign() float64 {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// RotationRateData is a sprite's rotation speed in radians per second.
type RotationRateData struct {
	RadiansPerSec float64
}

var (
	Transform    = donburi.NewComponentType[TransformData]()
	Sprite       = donburi.NewComponentType[SpriteData]()
	Direction    = donburi.NewComponentType[SpinDirection]()
	RotationRate = donburi.NewComponentType[RotationRateData]()
)
