package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity accelerates every airborne entity downward and derives its
// vertical motion state from the sign of the clamped speed.
func UpdateGravity(ecs *ecs.ECS, tick Tick) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Resting {
			return
		}

		physics.SpeedY = gamemath.ClampSpeed(
			physics.SpeedY-cfg.Physics.Gravity*tick.Delta,
			cfg.Physics.MaxVerticalSpeed,
		)

		if !e.HasComponent(components.State) {
			return
		}
		state := components.State.Get(e)
		if physics.SpeedY < 0 {
			state.Vertical = components.Falling
		} else {
			state.Vertical = components.Jumping
		}
	})
}
