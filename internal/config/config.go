// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration for a tuicore application.
type Settings struct {
	TickRate  float64 `yaml:"tick_rate,omitempty"`
	FrameRate float64 `yaml:"frame_rate,omitempty"`
	Mouse     bool    `yaml:"mouse,omitempty"`
	Paste     bool    `yaml:"paste,omitempty"`
	LogLevel  string  `yaml:"log_level,omitempty"`
	LogFile   string  `yaml:"log_file,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// LoadFile reads settings from one explicit YAML file.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return s, nil
}

// loadFile reads a Settings from a YAML file. Returns zero Settings if
// the file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.TickRate != 0 {
		result.TickRate = project.TickRate
	}
	if project.FrameRate != 0 {
		result.FrameRate = project.FrameRate
	}
	if project.Mouse {
		result.Mouse = true
	}
	if project.Paste {
		result.Paste = true
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}

	return &result
}
