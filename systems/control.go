package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControl applies the tick's intent to the dot: horizontal speed and
// facing, and jump authorization against the current motion state.
func UpdateControl(ecs *ecs.ECS, tick Tick) {
	tags.Dot.Each(ecs.World, func(e *donburi.Entry) {
		applyIntent(e, tick.Intent)
	})
}

func applyIntent(e *donburi.Entry, intent components.Intent) {
	physics := components.Physics.Get(e)
	dot := components.Dot.Get(e)
	state := components.State.Get(e)

	// Right is processed last and wins when both are held.
	if intent.MoveLeft {
		dot.FacingX = cfg.DirectionLeft
		physics.SpeedX = cfg.Physics.MoveSpeed
	}
	if intent.MoveRight {
		dot.FacingX = cfg.DirectionRight
		physics.SpeedX = cfg.Physics.MoveSpeed
	}

	if intent.Jump && canJump(state) {
		dot.FacingY = cfg.DirectionUp
		physics.SpeedY = cfg.Physics.JumpSpeed

		// Walked off an edge without jumping: one air jump only, and the
		// rest of this tick's intent is dropped.
		if state.Vertical == components.Falling && state.Jump == components.NoJump {
			state.Jump = components.DoubleJump
			return
		}

		state.Vertical = components.Jumping
		state.Jump = nextJump(state.Jump)
	}

	if intent.ReleasedLeft || intent.ReleasedRight {
		physics.SpeedX = 0
	}
}

func canJump(state *components.StateData) bool {
	return state.Vertical == components.Standing || state.Jump != components.DoubleJump
}

func nextJump(j components.JumpState) components.JumpState {
	switch j {
	case components.NoJump:
		return components.SingleJump
	default:
		return components.DoubleJump
	}
}
