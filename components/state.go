package components

import (
	"github.com/yohamta/donburi"
)

// VerticalState is the vertical motion of the dot.
type VerticalState int

const (
	Jumping VerticalState = iota
	Standing
	Falling
)

func (s VerticalState) String() string {
	switch s {
	case Jumping:
		return "Jumping"
	case Standing:
		return "Standing"
	case Falling:
		return "Falling"
	}
	return "Unknown"
}

// JumpState counts the jumps taken since the last landing.
type JumpState int

const (
	NoJump JumpState = iota
	SingleJump
	DoubleJump
)

func (s JumpState) String() string {
	switch s {
	case NoJump:
		return "NoJump"
	case SingleJump:
		return "SingleJump"
	case DoubleJump:
		return "DoubleJump"
	}
	return "Unknown"
}

type StateData struct {
	Vertical VerticalState
	Jump     JumpState
}

var State = donburi.NewComponentType[StateData]()
