package systems

import (
	"github.com/automoto/dotjump/components"
	"github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/gamemath"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the dot. It only observes the dot;
// nothing here feeds back into the simulation.
func UpdateCamera(e *ecs.ECS) {
	followDot(e, FrameDelta())
}

func followDot(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	dotEntry, ok := tags.Dot.First(e.World)
	if !ok {
		return // no dot (the round is over), camera holds
	}
	pos := components.Position.Get(dotEntry)

	camera.Position.X = gamemath.Approach(camera.Position.X, pos.X, config.Camera.Threshold, config.Camera.Gain, dt)
	camera.Position.Y = gamemath.Approach(camera.Position.Y, pos.Y, config.Camera.Threshold, config.Camera.Gain, dt)
}
