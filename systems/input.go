package systems

import (
	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the bound devices into the input buffer.
// Must run BEFORE UpdatePause and UpdateSimulation.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var held [cfg.ActionCount]bool
	for id := range cfg.Input.Bindings {
		held[id] = bindingHeld(&cfg.Input.Bindings[id], gamepadIDs)
	}
	getOrCreateInput(ecs).Advance(held)
}

func bindingHeld(b *cfg.Binding, pads []ebiten.GamepadID) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
				return true
			}
		}
		if b.Stick != cfg.StickNone {
			axis := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
			if stickHeld(b.Stick, axis, cfg.Input.StickDeadzone) {
				return true
			}
		}
	}
	return false
}

// stickHeld reports whether a horizontal axis value leans past the deadzone
// in the bound direction.
func stickHeld(dir cfg.StickDirection, axis, deadzone float64) bool {
	switch dir {
	case cfg.StickLeft:
		return axis < -deadzone
	case cfg.StickRight:
		return axis > deadzone
	}
	return false
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
