package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates the dot's position. Vertical motion is skipped
// while resting; horizontal motion always applies, signed by facing. There is
// no collision re-check here, so a large enough step can tunnel through a
// platform.
func UpdateMovement(ecs *ecs.ECS, tick Tick) {
	tags.Dot.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		pos := components.Position.Get(e)
		dot := components.Dot.Get(e)

		if !physics.Resting {
			pos.Y += physics.SpeedY * cfg.Physics.VerticalSpeedScale * tick.Delta * cfg.Physics.VerticalDistanceScale
		}
		pos.X += dot.FacingX * physics.SpeedX * tick.Delta * cfg.Physics.HorizontalScale

		syncObject(ecs, e, pos)
	})
}

// syncObject keeps the collision proxy on top of the entity position.
func syncObject(ecs *ecs.ECS, e *donburi.Entry, pos *components.PositionData) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Place(obj.Object, pos.X, pos.Y, obj.Half)
}
