package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the resolv space. Resolv cells start at (0,0) and grow
// downward, so world positions are shifted by the origin and flipped on Y.
type SpaceData struct {
	*resolv.Space
	OriginX float64 // world X of the space's left edge
	OriginY float64 // world Y of the space's top edge
}

var Space = donburi.NewComponentType[SpaceData]()

// Place moves obj so its box of half-extent half is centred on the world
// position (x, y), then refreshes its cell membership.
func (s *SpaceData) Place(obj *resolv.Object, x, y, half float64) {
	obj.X = x - half - s.OriginX
	obj.Y = s.OriginY - (y + half)
	obj.Update()
}
