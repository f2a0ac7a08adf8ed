package components

import (
	"github.com/yohamta/donburi"
)

// DotData holds the last intended directions of the dot. FacingX signs
// horizontal displacement; FacingY only orients presentation.
type DotData struct {
	FacingX float64 // config.DirectionLeft or config.DirectionRight
	FacingY float64 // config.DirectionDown or config.DirectionUp
}

var Dot = donburi.NewComponentType[DotData]()
