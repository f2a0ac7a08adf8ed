package archetypes

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Dot = newArchetype(
		tags.Dot,
		components.Dot,
		components.Position,
		components.Physics,
		components.State,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Position,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Round = newArchetype(
		components.Round,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
