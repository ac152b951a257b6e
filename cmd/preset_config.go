package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type PresetsConfig struct {
	Presets map[string]RunPreset `yaml:"presets"`
}

type RunPreset struct {
	Count int64 `yaml:"count"`
	Print bool  `yaml:"print"`
	Stats bool  `yaml:"stats"`
	Naive bool  `yaml:"naive"`
}

// GetRunPreset loads the named run preset from the YAML presets file, or
// returns nil when the name is not present.
func GetRunPreset(presetsFilePath string, presetType string) *RunPreset {
	// Read YAML file
	data, err := os.ReadFile(presetsFilePath)
	if err != nil {
		panic(err)
	}

	// Parse YAML
	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(err)
	}

	if preset, presetExists := cfg.Presets[presetType]; presetExists {
		logrus.Infof("Using preset run %v\n", presetType)
		return &preset
	}
	return nil
}
