package factory

import (
	"math"

	"github.com/automoto/dotjump/archetypes"
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering every platform of the
// level and the dot's spawn point, plus padding. It returns nil for a level
// without platforms.
func CreateSpace(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	minX, minY, maxX, maxY, ok := level.Bounds()
	if !ok {
		return nil
	}
	minX, maxX = math.Min(minX, cfg.Dot.SpawnX), math.Max(maxX, cfg.Dot.SpawnX)
	minY, maxY = math.Min(minY, cfg.Dot.SpawnY), math.Max(maxY, cfg.Dot.SpawnY)

	pad := cfg.Level.SpacePadding
	cell := cfg.Level.SpaceCellSize
	// resolv sizes the grid in whole cells, rounding down
	width := cellCeil(maxX-minX+2*pad, cell)
	height := cellCeil(maxY-minY+2*pad, cell)

	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cell, cell),
		OriginX: minX - pad,
		OriginY: maxY + pad,
	})
	return space
}

// addToSpace registers the proxy with the collision space, if the world has one.
func addToSpace(ecs *ecs.ECS, pos *components.PositionData, obj *components.ObjectData) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj.Object)
	space.Place(obj.Object, pos.X, pos.Y, obj.Half)
}

func cellCeil(extent float64, cell int) int {
	return (int(math.Ceil(extent))/cell + 1) * cell
}
