// ABOUTME: Standard filesystem paths for tuicore configuration
// ABOUTME: Resolves ~/.tuicore/ for global and .tuicore/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".tuicore"
	projectDirName = ".tuicore"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.tuicore/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.tuicore/ under projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
