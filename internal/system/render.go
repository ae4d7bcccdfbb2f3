package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
	"github.com/zshift/aw-geez/internal/event"
)

// 40% gray backdrop.
var clearColor = color.RGBA{R: 102, G: 102, B: 102, A: 255}

type drawItem struct {
	tf     *component.TransformData
	sprite *component.SpriteData
}

// Render draws the sprite field through the camera. World space is Y-up with
// the camera transform and projection scale defining the view; sprites are
// drawn back to front by depth.
type Render struct {
	cameras  *donburi.Query
	sprites  *donburi.Query
	displays *donburi.Query

	items []drawItem

	// Screen center in logical pixels, recomputed after resize events.
	centerX, centerY float64
	centerValid      bool
}

// NewRender subscribes the system to window-resized events on w.
func NewRender(w donburi.World) *Render {
	r := &Render{
		cameras: donburi.NewQuery(filter.Contains(
			component.CameraTag,
			component.Transform,
			component.Projection,
		)),
		sprites:  donburi.NewQuery(filter.Contains(component.Transform, component.Sprite)),
		displays: donburi.NewQuery(filter.Contains(component.Display)),
	}
	event.WindowResized.Subscribe(w, r.onResize)
	return r
}

func (r *Render) onResize(w donburi.World, ev event.WindowResizedData) {
	r.centerValid = false
}

func (r *Render) Draw(e *decs.ECS, screen *ebiten.Image) {
	screen.Fill(clearColor)

	camera, ok := r.cameras.First(e.World)
	if !ok {
		return
	}

	if !r.centerValid {
		if display, ok := r.displays.First(e.World); ok {
			d := component.Display.Get(display)
			r.centerX = float64(d.Width) / 2
			r.centerY = float64(d.Height) / 2
			r.centerValid = true
		}
	}

	view := viewMatrix(
		component.Transform.Get(camera),
		component.Projection.Get(camera),
		r.centerX, r.centerY,
	)

	r.items = r.items[:0]
	r.sprites.Each(e.World, func(entry *donburi.Entry) {
		r.items = append(r.items, drawItem{
			tf:     component.Transform.Get(entry),
			sprite: component.Sprite.Get(entry),
		})
	})
	sort.Slice(r.items, func(i, j int) bool {
		return r.items[i].tf.Depth < r.items[j].tf.Depth
	})

	for _, item := range r.items {
		if item.sprite.Image == nil {
			continue
		}
		bounds := item.sprite.Image.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		fit := item.sprite.Size / float64(bounds.Dx())
		op.GeoM.Scale(fit*item.tf.Scale, fit*item.tf.Scale)
		op.GeoM.Rotate(item.tf.Rotation)
		op.GeoM.Translate(item.tf.Translation.X, item.tf.Translation.Y)
		op.GeoM.Concat(view)

		screen.DrawImage(item.sprite.Image, op)
	}
}

// viewMatrix maps world space to screen space: inverse camera translation
// and rotation, zoom by the reciprocal projection scale, Y flip from world
// up to screen down, then centering.
func viewMatrix(camera *component.TransformData, proj *component.ProjectionData, centerX, centerY float64) ebiten.GeoM {
	zoom := 1 / proj.Scale

	var view ebiten.GeoM
	view.Translate(-camera.Translation.X, -camera.Translation.Y)
	view.Rotate(-camera.Rotation)
	view.Scale(zoom, -zoom)
	view.Translate(centerX, centerY)
	return view
}
