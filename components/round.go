package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RoundData records the end of the round. Once Over is set the world holds
// no dot and no platforms; nothing is respawned.
type RoundData struct {
	Over        bool
	Tick        uint64 // simulation ticks stepped so far
	OverAtTick  uint64
	Fade        *gween.Tween
	FadeOpacity float32
}

var Round = donburi.NewComponentType[RoundData]()
