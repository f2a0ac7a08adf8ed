package systems

import (
	"log"

	"github.com/automoto/dotjump/components"
	cfg "github.com/automoto/dotjump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var ebitenIsFullscreen = ebiten.IsFullscreen

// isFullscreen is swapped out by tests.
var isFullscreen = ebitenIsFullscreen

// NewUpdateSettings creates the system that toggles the debug overlay on F3
// and hands every change to saver. With a nil saver the toggle lasts for the
// session only. A failed save keeps the toggle and is logged.
func NewUpdateSettings(saver SettingsSaver) ecs.System {
	return func(e *ecs.ECS) {
		if !getOrCreateInput(e).Action(cfg.ActionToggleDebug).JustPressed {
			return
		}

		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
		settings.Fullscreen = isFullscreen()

		if saver == nil {
			return
		}
		if err := saver.Save(SavedSettings{Debug: settings.Debug, Fullscreen: settings.Fullscreen}); err != nil {
			log.Printf("Warning: settings not saved: %v", err)
		}
	}
}

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts from the -debug flag.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowOverlay,
		})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings applies stored settings before any scene exists.
func ApplySavedSettings(saved SavedSettings) {
	if saved.Debug {
		cfg.Debug.ShowOverlay = true
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
