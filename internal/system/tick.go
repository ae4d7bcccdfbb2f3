package system

import (
	"log"
	"time"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

const tickInterval = time.Second

// Tick advances the repeating one-second timer and logs the live sprite
// count each time it fires.
type Tick struct {
	timers  *donburi.Query
	sprites *donburi.Query
	logf    func(format string, args ...any)
}

func NewTick() *Tick {
	return &Tick{
		timers:  donburi.NewQuery(filter.Contains(component.TickTimer)),
		sprites: donburi.NewQuery(filter.Contains(component.Sprite)),
		logf:    log.Printf,
	}
}

func (t *Tick) Update(e *decs.ECS) {
	t.advance(e.World, e.Time.DeltaTime())
}

func (t *Tick) advance(w donburi.World, dt time.Duration) {
	t.timers.Each(w, func(entry *donburi.Entry) {
		timer := component.TickTimer.Get(entry)
		timer.Timer.Tick(dt)
		if timer.Timer.JustFinished() {
			t.logf("Sprites: %d", t.sprites.Count(w))
		}
	})
}
