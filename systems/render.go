package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps y-up world coordinates onto the screen around the camera.
type view struct {
	camX, camY    float64
	halfW, halfH  float64
	width, height float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		camX:   camera.Position.X,
		camY:   camera.Position.Y,
		halfW:  width / 2,
		halfH:  height / 2,
		width:  width,
		height: height,
	}, true
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return x - v.camX + v.halfW, v.camY - y + v.halfH
}

// visible reports whether a box centred on the screen point with the given
// half-extent overlaps the screen.
func (v view) visible(sx, sy, half float64) bool {
	const padding = 64.0
	return sx+half >= -padding && sx-half <= v.width+padding &&
		sy+half >= -padding && sy-half <= v.height+padding
}

// DrawBackground fills the screen with the background color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
}

// DrawLevel renders every platform as a square centred on its position.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	half := cfg.Level.PlatformSize / 2

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		sx, sy := v.toScreen(pos.X, pos.Y)

		// Viewport Culling
		if !v.visible(sx, sy, half) {
			return
		}

		vector.FillRect(screen,
			float32(sx-half), float32(sy-half),
			float32(cfg.Level.PlatformSize), float32(cfg.Level.PlatformSize),
			cfg.Colors.Platform, false)
	})
}

// DrawDot renders the dot as a filled circle.
func DrawDot(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	dotEntry, ok := tags.Dot.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Position.Get(dotEntry)
	sx, sy := v.toScreen(pos.X, pos.Y)
	if !v.visible(sx, sy, cfg.Dot.Radius) {
		return
	}

	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(cfg.Dot.Radius), cfg.Colors.Dot, true) //nolint:staticcheck
}
