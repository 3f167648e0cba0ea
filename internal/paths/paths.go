// Package paths resolves where human keeps its files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HumanHomeEnvVar overrides the home directory
	HumanHomeEnvVar = "HUMAN_HOME"
	// DefaultHumanHome is the directory name under the user's home
	DefaultHumanHome = ".human"
	// ConfigFileName is the name of the config file inside the home
	ConfigFileName = "config.toml"
	// HistoryFileName is the name of the history database inside the home
	HistoryFileName = "history.db"
)

// GetHumanHome returns $HUMAN_HOME or ~/.human
func GetHumanHome() (string, error) {
	if env := os.Getenv(HumanHomeEnvVar); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultHumanHome), nil
}

// GetConfigPath returns the default config file location
func GetConfigPath() (string, error) {
	dir, err := GetHumanHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// GetHistoryDBPath returns the default history database location
func GetHistoryDBPath() (string, error) {
	dir, err := GetHumanHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HistoryFileName), nil
}
