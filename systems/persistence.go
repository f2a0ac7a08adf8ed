package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsItem = "settings"

// SavedSettings are the presentation toggles kept between runs. Simulation
// state is never saved.
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

// SettingsSaver persists settings after they change.
type SettingsSaver interface {
	Save(SavedSettings) error
}

// SettingsStore keeps SavedSettings in the per-user gdata directory.
type SettingsStore struct {
	m *gdata.Manager
}

func OpenSettingsStore(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &SettingsStore{m: m}, nil
}

// Load returns the stored settings; ok is false when nothing was saved yet.
func (s *SettingsStore) Load() (saved SavedSettings, ok bool, err error) {
	data, err := s.m.LoadItem(settingsItem)
	if err != nil {
		return SavedSettings{}, false, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return SavedSettings{}, false, nil
	}
	saved, err = decodeSettings(data)
	if err != nil {
		return SavedSettings{}, false, err
	}
	return saved, true, nil
}

func (s *SettingsStore) Save(saved SavedSettings) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.m.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func decodeSettings(data []byte) (SavedSettings, error) {
	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return SavedSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return saved, nil
}
