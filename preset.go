package dump2png

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named group of render settings loaded from a YAML preset
// file. Zero-valued fields leave the corresponding setting alone, so a
// preset only has to name what it changes.
type Preset struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Zoom    int    `yaml:"zoom"`
	Skip    int    `yaml:"skip"`
	Palette string `yaml:"palette"`
	Colors  int    `yaml:"colors"`
	Mask    *bool  `yaml:"mask"`
}

// LoadPresets reads a map of named presets from the YAML file at path.
func LoadPresets(path string) (map[string]Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	presets := make(map[string]Preset)
	if err := yaml.Unmarshal(b, &presets); err != nil {
		return nil, err
	}

	return presets, nil
}
