package components

import (
	cfg "github.com/automoto/dotjump/config"
	"github.com/yohamta/donburi"
)

// ActionState is one action's held state and its edges this tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData keeps two ticks of held actions so edges can be derived.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Advance shifts the current tick into the previous one and installs held.
func (in *InputData) Advance(held [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = held
}

// Action returns the state of one action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Intent is the immutable per-tick snapshot the movement state machine reads.
type Intent struct {
	MoveLeft      bool // held
	MoveRight     bool // held
	Jump          bool // rising edge
	ReleasedLeft  bool // falling edge
	ReleasedRight bool // falling edge
}

// Intent snapshots the movement actions of the current tick.
func (in *InputData) Intent() Intent {
	left := in.Action(cfg.ActionMoveLeft)
	right := in.Action(cfg.ActionMoveRight)
	return Intent{
		MoveLeft:      left.Pressed,
		MoveRight:     right.Pressed,
		Jump:          in.Action(cfg.ActionJump).JustPressed,
		ReleasedLeft:  left.JustReleased,
		ReleasedRight: right.JustReleased,
	}
}
