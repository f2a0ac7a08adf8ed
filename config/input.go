package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionToggleDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// StickDirection selects one half of the left stick's horizontal axis.
type StickDirection int

const (
	StickNone StickDirection = iota
	StickLeft
	StickRight
)

// Binding lists every physical input that holds an action down.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
	Stick   StickDirection
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings [ActionCount]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	StickDeadzone float64
	// PauseHint is printed under the pause menu
	PauseHint string
}

// Input is the global input configuration
var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		StickDeadzone: 0.25,
		PauseHint:     "Up/Down  Enter  Esc resumes",
	}

	b := &Input.Bindings
	b[ActionMoveLeft] = Binding{
		Keys:    keys(ebiten.KeyA, ebiten.KeyLeft),
		Buttons: buttons(ebiten.StandardGamepadButtonLeftLeft),
		Stick:   StickLeft,
	}
	b[ActionMoveRight] = Binding{
		Keys:    keys(ebiten.KeyD, ebiten.KeyRight),
		Buttons: buttons(ebiten.StandardGamepadButtonLeftRight),
		Stick:   StickRight,
	}
	// Jump shares W/Up with menu navigation; the menu only reads input while
	// the simulation is frozen.
	b[ActionJump] = Binding{
		Keys:    keys(ebiten.KeyW, ebiten.KeyUp, ebiten.KeySpace),
		Buttons: buttons(ebiten.StandardGamepadButtonRightBottom),
	}
	b[ActionPause] = Binding{
		Keys:    keys(ebiten.KeyEscape, ebiten.KeyP),
		Buttons: buttons(ebiten.StandardGamepadButtonCenterRight),
	}
	b[ActionToggleDebug] = Binding{
		Keys: keys(ebiten.KeyF3),
	}
	b[ActionMenuUp] = Binding{
		Keys:    keys(ebiten.KeyUp, ebiten.KeyW),
		Buttons: buttons(ebiten.StandardGamepadButtonLeftTop),
	}
	b[ActionMenuDown] = Binding{
		Keys:    keys(ebiten.KeyDown, ebiten.KeyS),
		Buttons: buttons(ebiten.StandardGamepadButtonLeftBottom),
	}
	b[ActionMenuSelect] = Binding{
		Keys:    keys(ebiten.KeyEnter),
		Buttons: buttons(ebiten.StandardGamepadButtonRightBottom),
	}
}
