package systems

import (
	"image/color"
	"os"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/automoto/dotjump/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var defaultExit = os.Exit

// exit is swapped out by tests.
var exit = defaultExit

// UpdatePause freezes and resumes the simulation. The overlay has two
// entries, so moving the cursor either way toggles between them.
// Once the round is over there is nothing to resume and Esc leaves.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pause := GetOrCreatePause(ecs)

	switch {
	case input.Action(cfg.ActionPause).JustPressed:
		if IsRoundOver(ecs) {
			exit(0)
			return
		}
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume

	case !pause.IsPaused:

	case input.Action(cfg.ActionMenuUp).JustPressed, input.Action(cfg.ActionMenuDown).JustPressed:
		if pause.SelectedOption == components.MenuResume {
			pause.SelectedOption = components.MenuExit
		} else {
			pause.SelectedOption = components.MenuResume
		}

	case input.Action(cfg.ActionMenuSelect).JustPressed:
		if pause.SelectedOption == components.MenuExit {
			exit(0)
			return
		}
		pause.IsPaused = false
	}
}

// DrawPause dims the frozen world and lists the menu entries centred.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	pitch := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	y := (float64(height) - pitch*float64(len(cfg.Pause.MenuOptions))) / 2

	face := fonts.Bold.Get()
	for i, label := range cfg.Pause.MenuOptions {
		c := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			c = cfg.Pause.TextColorSelected
		}
		y += pitch
		drawCentered(screen, face, label, int(y), c)
	}

	drawCentered(screen, fonts.Small.Get(), cfg.Input.PauseHint, height-12, cfg.Pause.TextColorNormal)
}

// drawCentered draws one line of text centred horizontally on baseline y.
func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, c color.Color) {
	x := (screen.Bounds().Dx() - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, c)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
