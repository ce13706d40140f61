package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the optional preview/mission settings loaded from a YAML file.
// Zero values fall back to the constants in screen.go.
type Settings struct {
	Width    int    `yaml:"width"`    // battlefield width in pixels
	Height   int    `yaml:"height"`   // battlefield height in pixels
	TileSize int    `yaml:"tileSize"` // tile size in pixels
	Seed     int64  `yaml:"seed"`     // 0 means time-based seeding
	Mission  string `yaml:"mission"`  // mission type passed to the generator
}

// DefaultSettings returns settings matching the battlefield constants
func DefaultSettings() Settings {
	return Settings{
		Width:    FieldWidth,
		Height:   FieldHeight,
		TileSize: TileSize,
	}
}

// LoadSettings reads settings from a YAML file, filling in defaults for
// any field left at its zero value
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if settings.Width <= 0 {
		settings.Width = FieldWidth
	}
	if settings.Height <= 0 {
		settings.Height = FieldHeight
	}
	if settings.TileSize <= 0 {
		settings.TileSize = TileSize
	}

	return settings, nil
}
