package components

import (
	"github.com/yohamta/donburi"
)

// PositionData is a world position. Y grows upward; Z only orders drawing.
type PositionData struct {
	X, Y, Z float64
}

var Position = donburi.NewComponentType[PositionData]()

// PhysicsData carries the velocity and platform contact of a moving entity.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	// Resting is true while the entity touches a platform this tick. The
	// collision resolver compares it with the previous tick to detect landings.
	Resting bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
