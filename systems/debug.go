package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/fonts"
	"github.com/automoto/dotjump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		// Draw all collision proxies in the space
		for _, obj := range space.Objects() {
			// Proxy boxes are stored flipped; recover the world top-left corner.
			sx, sy := v.toScreen(obj.X+space.OriginX, space.OriginY-obj.Y)
			if sx+obj.W < 0 || sx > v.width || sy+obj.H < 0 || sy > v.height {
				continue
			}

			c := cfg.Colors.Proxy
			if obj.HasTags(tags.ResolvDot) {
				c = cfg.Colors.ProxyDot
			}
			outline(screen, sx, sy, obj.W, obj.H, c)
		}
	}

	drawStateReadout(ecs, screen)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func drawStateReadout(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	lines := debugLines(ecs)
	for i, line := range lines {
		text.Draw(screen, line, face, 10, 20+i*14, cfg.Colors.HUDText)
	}
}

// debugLines describes the dot for the overlay.
func debugLines(ecs *ecs.ECS) []string {
	round := getRound(ecs)
	tick := uint64(0)
	if round != nil {
		tick = round.Tick
	}

	dotEntry, ok := tags.Dot.First(ecs.World)
	if !ok {
		return []string{fmt.Sprintf("tick %d  no dot", tick)}
	}
	pos := components.Position.Get(dotEntry)
	phys := components.Physics.Get(dotEntry)
	state := components.State.Get(dotEntry)

	return []string{
		fmt.Sprintf("tick %d  fps %.0f", tick, ebiten.ActualFPS()),
		fmt.Sprintf("pos %.1f, %.1f", pos.X, pos.Y),
		fmt.Sprintf("vel %.2f, %.2f  resting %t", phys.SpeedX, phys.SpeedY, phys.Resting),
		fmt.Sprintf("%s / %s", state.Vertical, state.Jump),
	}
}
