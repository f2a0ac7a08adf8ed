package components

import "github.com/yohamta/donburi"

// SettingsData stores presentation toggles that survive restarts.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
