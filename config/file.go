package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides maps the sections of a config file onto the global instances.
// Fields absent from the file keep their current values.
type overrides struct {
	Window  *Config        `yaml:"window"`
	Physics *PhysicsConfig `yaml:"physics"`
	Dot     *DotConfig     `yaml:"dot"`
	Level   *LevelConfig   `yaml:"level"`
	Camera  *CameraConfig  `yaml:"camera"`
}

// LoadFile applies a YAML override file to the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides onto the global configuration. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Apply(data []byte) error {
	doc := overrides{
		Window:  C,
		Physics: &Physics,
		Dot:     &Dot,
		Level:   &Level,
		Camera:  &Camera,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
