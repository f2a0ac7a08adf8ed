package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision proxy of an entity inside the resolv space.
// Half is the half-extent of the proxy box around the entity position.
type ObjectData struct {
	*resolv.Object
	Half float64
}

var Object = donburi.NewComponentType[ObjectData]()
