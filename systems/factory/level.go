package factory

import (
	"github.com/automoto/dotjump/archetypes"
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}

func CreateRound(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(entry, components.RoundData{})
	return entry
}

// CreateWorld populates an empty world with a level: the level and round
// singletons, the collision space, the camera, every platform and the dot.
// The space is created first so platforms and the dot register with it.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	CreateLevel(ecs, level)
	CreateRound(ecs)
	CreateSpace(ecs, level)
	CreateCamera(ecs, 0, 0)

	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}

	return CreateDot(ecs, cfg.Dot.SpawnX, cfg.Dot.SpawnY)
}
