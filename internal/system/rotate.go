package system

import (
	"math"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

// RotateEntity advances every sprite's rotation by its assigned rate and
// direction, wrapped to a full turn.
type RotateEntity struct {
	sprites *donburi.Query
}

func NewRotateEntity() *RotateEntity {
	return &RotateEntity{
		sprites: donburi.NewQuery(filter.Contains(
			component.Transform,
			component.Direction,
			component.RotationRate,
		)),
	}
}

func (r *RotateEntity) Update(e *decs.ECS) {
	r.advance(e.World, e.Time.DeltaTime().Seconds())
}

func (r *RotateEntity) advance(w donburi.World, dt float64) {
	r.sprites.Each(w, func(entry *donburi.Entry) {
		tf := component.Transform.Get(entry)
		sign := component.Direction.GetValue(entry).Sign()
		rate := component.RotationRate.Get(entry).RadiansPerSec

		tf.Rotation = math.Mod(tf.Rotation+sign*rate*dt, 2*math.Pi)
	})
}
