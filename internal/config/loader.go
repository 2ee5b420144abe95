package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the settings document at customPath, falling back to the
// embedded default when customPath is empty. Any missing key in the
// document keeps its documented default value; any structural parse
// error yields Default() with an empty wall list rather than a startup
// crash. An explicitly named file that cannot be read at all is the one
// startup-fatal case, returned as an error for main to log and exit on.
func Load(customPath string) (Settings, error) {
	cfg := Default()

	if customPath == "" {
		if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
			return Default(), nil
		}
		return cfg, nil
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings document: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		d := Default()
		d.Walls = nil
		return d, nil
	}
	return cfg, nil
}
