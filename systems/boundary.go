package systems

import (
	"log"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoundary ends the round when the dot drops below the world floor:
// the dot and every platform are destroyed and nothing is respawned.
// Entities are collected first and removed after the queries finish.
func UpdateBoundary(ecs *ecs.ECS, _ Tick) {
	var doomed []donburi.Entity
	tags.Dot.Each(ecs.World, func(e *donburi.Entry) {
		if components.Position.Get(e).Y >= cfg.Physics.WorldFloor {
			return
		}
		doomed = append(doomed, e.Entity())
	})
	if len(doomed) == 0 {
		return
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})

	destroyEntities(ecs, doomed)
	endRound(ecs)
	log.Printf("Dot fell below %.0f: level cleared (%d entities destroyed)", cfg.Physics.WorldFloor, len(doomed))
}

// destroyEntities removes entities from the world and their proxies from the space.
func destroyEntities(ecs *ecs.ECS, entities []donburi.Entity) {
	spaceEntry, hasSpace := components.Space.First(ecs.World)

	for _, entity := range entities {
		if !ecs.World.Valid(entity) {
			continue
		}
		e := ecs.World.Entry(entity)
		if hasSpace && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		ecs.World.Remove(entity)
	}
}
