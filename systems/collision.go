package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/shared/gamemath"
	"github.com/automoto/dotjump/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollision recomputes the dot's resting flag against every platform
// and resolves a landing when the flag turns on.
//
// The contact test is a symmetric box of ContactTolerance around the dot on
// all three axes, gated only on the dot moving down. It also accepts contacts
// from the side or from below; that coarseness is intended.
func UpdateCollision(ecs *ecs.ECS, _ Tick) {
	tags.Dot.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		pos := components.Position.Get(e)

		wasResting := physics.Resting
		contactY, resting := findPlatformContact(ecs, e, physics, pos)
		physics.Resting = resting

		if resting && !wasResting {
			land(e, physics, pos, contactY)
		}
	})
}

// findPlatformContact returns the height of the first platform, in query
// order, the dot is touching.
func findPlatformContact(ecs *ecs.ECS, e *donburi.Entry, physics *components.PhysicsData, pos *components.PositionData) (float64, bool) {
	if physics.SpeedY >= 0 {
		return 0, false
	}
	if !platformsNearby(ecs, e, pos) {
		return 0, false
	}

	tol := cfg.Physics.ContactTolerance
	var contactY float64
	found := false
	tags.Platform.Each(ecs.World, func(p *donburi.Entry) {
		if found {
			return
		}
		pp := components.Position.Get(p)
		if gamemath.WithinTolerance(pos.X, pos.Y, pos.Z, pp.X, pp.Y, pp.Z, tol) {
			contactY = pp.Y
			found = true
		}
	})
	return contactY, found
}

// platformsNearby is the broadphase: it asks the resolv space whether any
// platform proxy shares a cell with the dot's proxy. Without a space every
// platform is a candidate.
func platformsNearby(ecs *ecs.ECS, e *donburi.Entry, pos *components.PositionData) bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok || !e.HasComponent(components.Object) {
		return true
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return true
	}

	space.Place(obj.Object, pos.X, pos.Y, obj.Half)
	return obj.Check(0, 0, tags.ResolvPlatform) != nil
}

func land(e *donburi.Entry, physics *components.PhysicsData, pos *components.PositionData, platformY float64) {
	pos.Y = platformY + cfg.Physics.LandingOffset
	physics.SpeedY = 0

	state := components.State.Get(e)
	state.Vertical = components.Standing
	state.Jump = components.NoJump
}
