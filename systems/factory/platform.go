package factory

import (
	"github.com/automoto/dotjump/archetypes"
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/automoto/dotjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, p leveldata.Point) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Position.SetValue(platform, components.PositionData{X: p.X, Y: p.Y, Z: p.Z})

	half := cfg.Level.PlatformSize / 2
	obj := resolv.NewObject(0, 0, 2*half, 2*half, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj, Half: half})
	addToSpace(ecs, components.Position.Get(platform), components.Object.Get(platform))

	return platform
}
