package factory

import (
	"github.com/automoto/dotjump/archetypes"
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDot spawns the controllable dot at (x, y), airborne and facing down-right.
func CreateDot(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	dot := archetypes.Dot.Spawn(ecs)

	components.Position.SetValue(dot, components.PositionData{X: x, Y: y, Z: cfg.Dot.Z})
	components.Physics.SetValue(dot, components.PhysicsData{})
	components.State.SetValue(dot, components.StateData{
		Vertical: components.Falling,
		Jump:     components.NoJump,
	})
	components.Dot.SetValue(dot, components.DotData{
		FacingX: cfg.DirectionRight,
		FacingY: cfg.DirectionDown,
	})

	// The proxy spans the contact tolerance so the space query returns every
	// platform the exact test could accept.
	half := cfg.Physics.ContactTolerance
	obj := resolv.NewObject(0, 0, 2*half, 2*half, tags.ResolvDot)
	obj.Data = dot
	components.Object.SetValue(dot, components.ObjectData{Object: obj, Half: half})
	addToSpace(ecs, components.Position.Get(dot), components.Object.Get(dot))

	return dot
}
